package entities

import "time"

type Profile struct {
	ID            string   `db:"id"`
	CPF           string   `db:"cpf"`
	Name          string   `db:"name"`
	Age           *int     `db:"age"`
	Sex           *string  `db:"sex"`
	Objective     *string  `db:"objective"`
	CurrentWeight *float64 `db:"current_weight"`
	TargetWeight  *float64 `db:"target_weight"`
	Height        *float64 `db:"height"`
	// Comma-separated list, e.g. "hérnia L5-S1,condromalácia"
	ClinicalRestrictions *string   `db:"clinical_restrictions"`
	IsAdmin              bool      `db:"is_admin"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}
