package dtos

type LoginRequest struct {
	CPF string `json:"cpf"`
}

type UnitRef struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	PrimaryColor string `json:"primaryColor,omitempty"`
	LogoURL      string `json:"logoUrl,omitempty"`
}

type Membership struct {
	ID     string  `json:"id"`
	Role   string  `json:"role"`
	Status string  `json:"status"`
	Unit   UnitRef `json:"unit"`
}

type Profile struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	CPF                  string   `json:"cpf"`
	Age                  *int     `json:"age,omitempty"`
	Sex                  *string  `json:"sex,omitempty"`
	Objective            *string  `json:"objective,omitempty"`
	CurrentWeight        *float64 `json:"currentWeight,omitempty"`
	TargetWeight         *float64 `json:"targetWeight,omitempty"`
	Height               *float64 `json:"height,omitempty"`
	ClinicalRestrictions []string `json:"clinicalRestrictions,omitempty"`
}

type Exercise struct {
	Name      string `json:"name"`
	Sets      string `json:"sets"`
	Technique string `json:"technique,omitempty"`
	CoachNote string `json:"coachNote,omitempty"`
}

type TrainingDay struct {
	Day          string     `json:"day"`
	Focus        string     `json:"focus"`
	MuscleGroups string     `json:"groups"`
	Intensity    string     `json:"intensity"`
	Exercises    []Exercise `json:"exercises"`
}

type CheckIn struct {
	ID       string  `json:"id,omitempty"`
	Date     string  `json:"date"`
	Weight   float64 `json:"weight"`
	DayIndex int     `json:"dayIndex"`
}

// CompositeProfile is the merged view returned on single-unit login. It is
// assembled per request and never persisted.
type CompositeProfile struct {
	Profile
	WeeklySchedule []TrainingDay `json:"weeklySchedule"`
	CheckIns       []CheckIn     `json:"checkIns"`
}

// SingleUnitLogin is the 200 body when exactly one active membership exists.
type SingleUnitLogin struct {
	MultipleUnits bool             `json:"multipleUnits"`
	Unit          Membership       `json:"unit"`
	Profile       CompositeProfile `json:"profile"`
}

// MultiUnitLogin is the 200 body when the member must pick a unit first.
// No plan data is included at this point.
type MultiUnitLogin struct {
	MultipleUnits bool         `json:"multipleUnits"`
	Units         []Membership `json:"units"`
	Profile       Profile      `json:"profile"`
}

type LoginErrorBody struct {
	Error string `json:"error"`
}
