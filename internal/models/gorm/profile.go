package gorm

import "time"

type Profile struct {
	ID                   string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	CPF                  string    `gorm:"column:cpf;uniqueIndex"`
	Name                 string    `gorm:"column:name"`
	Age                  *int      `gorm:"column:age"`
	Sex                  *string   `gorm:"column:sex"`
	Objective            *string   `gorm:"column:objective"`
	CurrentWeight        *float64  `gorm:"column:current_weight"`
	TargetWeight         *float64  `gorm:"column:target_weight"`
	Height               *float64  `gorm:"column:height"`
	ClinicalRestrictions *string   `gorm:"column:clinical_restrictions"`
	IsAdmin              bool      `gorm:"column:is_admin;default:false"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	TrainingDays []TrainingDay `gorm:"foreignKey:ProfileID"`
}

func (Profile) TableName() string {
	return "profiles"
}

type TrainingDay struct {
	ID           string  `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	ProfileID    string  `gorm:"column:profile_id;type:uuid;index"`
	UnitID       *string `gorm:"column:unit_id;type:uuid"`
	Position     int     `gorm:"column:position"`
	Day          string  `gorm:"column:day"`
	Focus        string  `gorm:"column:focus"`
	MuscleGroups string  `gorm:"column:muscle_groups"`
	Intensity    string  `gorm:"column:intensity"`

	Exercises []Exercise `gorm:"foreignKey:TrainingDayID"`
}

func (TrainingDay) TableName() string {
	return "training_days"
}

type Exercise struct {
	ID            string  `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	TrainingDayID string  `gorm:"column:training_day_id;type:uuid;index"`
	Position      int     `gorm:"column:position"`
	Name          string  `gorm:"column:name"`
	Sets          string  `gorm:"column:sets"`
	Technique     *string `gorm:"column:technique"`
	CoachNote     *string `gorm:"column:coach_note"`
}

func (Exercise) TableName() string {
	return "exercises"
}
