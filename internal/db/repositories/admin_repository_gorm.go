package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"elite-hub/treinador/internal/models/dtos"
	gormModels "elite-hub/treinador/internal/models/gorm"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminRepositoryGORM backs the admin panel write path. The athlete-facing
// read path stays on sqlx; administrative edits go through GORM like the
// rest of our tooling.
type AdminRepositoryGORM struct {
	db *gorm.DB
}

func NewAdminRepositoryGORM(db *gorm.DB) *AdminRepositoryGORM {
	return &AdminRepositoryGORM{db: db}
}

func (r *AdminRepositoryGORM) ListProfiles(ctx context.Context) ([]gormModels.Profile, error) {
	var profiles []gormModels.Profile

	err := r.db.WithContext(ctx).
		Order("name").
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	return profiles, nil
}

func (r *AdminRepositoryGORM) GetProfile(ctx context.Context, profileID string) (*gormModels.Profile, error) {
	var profile gormModels.Profile

	err := r.db.WithContext(ctx).
		Where("id = ?", profileID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile not found: %s", profileID)
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	return &profile, nil
}

// UpdateProfile applies the non-nil fields of the request and returns the
// updated record.
func (r *AdminRepositoryGORM) UpdateProfile(ctx context.Context, profileID string, req *dtos.UpdateProfileReq) (*gormModels.Profile, error) {
	updates := map[string]interface{}{}

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Age != nil {
		updates["age"] = *req.Age
	}
	if req.Sex != nil {
		updates["sex"] = *req.Sex
	}
	if req.Objective != nil {
		updates["objective"] = *req.Objective
	}
	if req.CurrentWeight != nil {
		updates["current_weight"] = *req.CurrentWeight
	}
	if req.TargetWeight != nil {
		updates["target_weight"] = *req.TargetWeight
	}
	if req.Height != nil {
		updates["height"] = *req.Height
	}
	if req.ClinicalRestrictions != nil {
		updates["clinical_restrictions"] = strings.Join(req.ClinicalRestrictions, ",")
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).
			Model(&gormModels.Profile{}).
			Where("id = ?", profileID).
			Updates(updates)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update profile: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("profile not found: %s", profileID)
		}
	}

	return r.GetProfile(ctx, profileID)
}

// ReplaceSchedule swaps the whole weekly schedule for the profile in one
// transaction. Day and exercise order follow the request order.
func (r *AdminRepositoryGORM) ReplaceSchedule(ctx context.Context, profileID string, req *dtos.ReplaceScheduleReq) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var dayIDs []string
		if err := tx.Model(&gormModels.TrainingDay{}).
			Where("profile_id = ?", profileID).
			Pluck("id", &dayIDs).Error; err != nil {
			return fmt.Errorf("failed to load existing schedule: %w", err)
		}

		if len(dayIDs) > 0 {
			if err := tx.Where("training_day_id IN ?", dayIDs).
				Delete(&gormModels.Exercise{}).Error; err != nil {
				return fmt.Errorf("failed to clear exercises: %w", err)
			}
			if err := tx.Where("profile_id = ?", profileID).
				Delete(&gormModels.TrainingDay{}).Error; err != nil {
				return fmt.Errorf("failed to clear schedule: %w", err)
			}
		}

		for dayPos, day := range req.Days {
			dayModel := gormModels.TrainingDay{
				ID:           uuid.NewString(),
				ProfileID:    profileID,
				Position:     dayPos,
				Day:          day.Day,
				Focus:        day.Focus,
				MuscleGroups: day.MuscleGroups,
				Intensity:    day.Intensity,
			}
			if req.UnitID != "" {
				unitID := req.UnitID
				dayModel.UnitID = &unitID
			}
			if err := tx.Create(&dayModel).Error; err != nil {
				return fmt.Errorf("failed to insert training day: %w", err)
			}

			for exPos, ex := range day.Exercises {
				exModel := gormModels.Exercise{
					ID:            uuid.NewString(),
					TrainingDayID: dayModel.ID,
					Position:      exPos,
					Name:          ex.Name,
					Sets:          ex.Sets,
				}
				if ex.Technique != "" {
					technique := ex.Technique
					exModel.Technique = &technique
				}
				if ex.CoachNote != "" {
					note := ex.CoachNote
					exModel.CoachNote = &note
				}
				if err := tx.Create(&exModel).Error; err != nil {
					return fmt.Errorf("failed to insert exercise: %w", err)
				}
			}
		}

		return nil
	})
}
