package constants

const (
	GetProfileByCPF = `
	SELECT id, cpf, name, age, sex, objective, current_weight, target_weight,
	       height, clinical_restrictions, is_admin, created_at, updated_at
	FROM profiles WHERE cpf = $1
	`

	GetProfileByID = `
	SELECT id, cpf, name, age, sex, objective, current_weight, target_weight,
	       height, clinical_restrictions, is_admin, created_at, updated_at
	FROM profiles WHERE id = $1
	`

	GetActiveMembershipsByCPF = `
	SELECT m.id, m.role, m.status,
	       u.id AS unit_id, u.name AS unit_name, u.slug AS unit_slug,
	       n.primary_color AS unit_primary_color, n.logo_url AS unit_logo_url
	FROM memberships m
	JOIN units u ON u.id = m.unit_id
	JOIN networks n ON n.id = u.network_id
	WHERE m.profile_cpf = $1 AND m.status = $2
	`

	GetScheduleByProfile = `
	SELECT td.id, td.day, td.focus, td.muscle_groups, td.intensity,
	       e.name AS exercise_name, e.sets AS exercise_sets,
	       e.technique AS exercise_technique, e.coach_note AS exercise_coach_note
	FROM training_days td
	LEFT JOIN exercises e ON e.training_day_id = td.id
	WHERE td.profile_id = $1
	ORDER BY td.position, e.position
	`

	GetCheckInsByProfile = `
	SELECT id, day_index, date, weight
	FROM check_ins WHERE profile_id = $1
	ORDER BY date, created_at
	`

	InsertCheckIn = `
	INSERT INTO check_ins (id, profile_id, day_index, date, weight)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at
	`
)
