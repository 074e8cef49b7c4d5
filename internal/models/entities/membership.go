package entities

// MembershipRow is the flat projection produced by the membership join
// (membership + unit + network branding). The repository converts it into
// the typed DTO before it crosses the service boundary.
type MembershipRow struct {
	ID               string  `db:"id"`
	Role             string  `db:"role"`
	Status           string  `db:"status"`
	UnitID           string  `db:"unit_id"`
	UnitName         string  `db:"unit_name"`
	UnitSlug         string  `db:"unit_slug"`
	UnitPrimaryColor *string `db:"unit_primary_color"`
	UnitLogoURL      *string `db:"unit_logo_url"`
}
