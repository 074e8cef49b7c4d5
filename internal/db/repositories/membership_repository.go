package repositories

import (
	"context"
	"time"

	"elite-hub/treinador/internal/constants"
	"elite-hub/treinador/internal/metrics"
	"elite-hub/treinador/internal/models/dtos"
	"elite-hub/treinador/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type MembershipRepository struct {
	db      *sqlx.DB
	metrics *metrics.MetricsRegistry
}

func NewMembershipRepository(db *sqlx.DB, reg *metrics.MetricsRegistry) *MembershipRepository {
	return &MembershipRepository{db: db, metrics: reg}
}

// ListActiveByCPF returns every active membership for the CPF, with unit and
// network branding resolved, in store-return order.
func (r *MembershipRepository) ListActiveByCPF(ctx context.Context, cpf string) ([]dtos.Membership, error) {
	start := time.Now()

	var rows []entities.MembershipRow
	err := r.db.SelectContext(ctx, &rows, constants.GetActiveMembershipsByCPF, cpf, constants.MembershipStatusActive)
	record(r.metrics, "memberships_by_cpf", start, err)
	if err != nil {
		return nil, err
	}

	memberships := make([]dtos.Membership, 0, len(rows))
	for _, row := range rows {
		memberships = append(memberships, toMembershipDTO(row))
	}
	return memberships, nil
}

func toMembershipDTO(row entities.MembershipRow) dtos.Membership {
	m := dtos.Membership{
		ID:     row.ID,
		Role:   row.Role,
		Status: row.Status,
		Unit: dtos.UnitRef{
			ID:   row.UnitID,
			Name: row.UnitName,
			Slug: row.UnitSlug,
		},
	}
	if row.UnitPrimaryColor != nil {
		m.Unit.PrimaryColor = *row.UnitPrimaryColor
	}
	if row.UnitLogoURL != nil {
		m.Unit.LogoURL = *row.UnitLogoURL
	}
	return m
}
