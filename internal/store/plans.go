package store

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"pagehelm/models"
)

// Plans lists every plan in its stable insertion order.
func (s *Store) Plans(ctx context.Context) ([]models.Plan, error) {
	var plans []models.Plan
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

// Plan loads one plan by key.
func (s *Store) Plan(ctx context.Context, key string) (*models.Plan, error) {
	var plan models.Plan
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&plan).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &plan, nil
}

// UpdatePlan applies one field edit to a plan while holding the plan
// invariants: at most one plan is popular, the popular plan is always
// active, and the popular plan cannot be deactivated directly.
func (s *Store) UpdatePlan(ctx context.Context, key, field string, value any) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plan models.Plan
		if err := tx.Where("key = ?", key).First(&plan).Error; err != nil {
			return translateNotFound(err)
		}

		switch field {
		case "name", "price", "period", "description", "color":
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("update plan: field %q expects a string, got %T", field, value)
			}
			return tx.Model(&plan).Update(field, s).Error
		case "popular":
			b, ok := value.(bool)
			if !ok {
				return fmt.Errorf("update plan: field %q expects a bool, got %T", field, value)
			}
			if !b {
				return tx.Model(&plan).Update("popular", false).Error
			}
			// Popularity is exclusive: electing one plan clears all
			// others and forces the elected plan active.
			if err := tx.Model(&models.Plan{}).
				Where("key <> ?", key).
				Update("popular", false).Error; err != nil {
				return err
			}
			return tx.Model(&plan).
				Updates(map[string]any{"popular": true, "active": true}).Error
		case "active":
			b, ok := value.(bool)
			if !ok {
				return fmt.Errorf("update plan: field %q expects a bool, got %T", field, value)
			}
			if !b && plan.Popular {
				return ErrInvariantViolation
			}
			return tx.Model(&plan).Update("active", b).Error
		default:
			return fmt.Errorf("update plan: unknown field %q", field)
		}
	})
}

// SetPlanFeatures replaces a plan's ordered feature list from raw textarea
// input. Lines are preserved verbatim, empty lines included, so an edit in
// progress round-trips losslessly; rendering filters blanks.
func (s *Store) SetPlanFeatures(ctx context.Context, key, rawText string) error {
	normalized := strings.ReplaceAll(rawText, "\r\n", "\n")
	result := s.db.WithContext(ctx).Model(&models.Plan{}).
		Where("key = ?", key).
		Update("features", normalized)
	if result.Error != nil {
		return fmt.Errorf("set plan features: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SeedDefaultPlans creates the three launch plans when the plan table is
// empty.
func (s *Store) SeedDefaultPlans(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Plan{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed plans: %w", err)
	}
	if count > 0 {
		return nil
	}

	plans := []models.Plan{
		{
			Key:         "weekly",
			Name:        "Deckhand",
			Price:       "$9",
			Period:      "/week",
			Description: "For quick tests and one-off launches.",
			Color:       "bg-blue-500",
			Popular:     false,
			Active:      true,
		},
		{
			Key:         "monthly",
			Name:        "Captain",
			Price:       "$29",
			Period:      "/month",
			Description: "The crowd favorite. Full power for a growing business.",
			Color:       "bg-indigo-600",
			Popular:     true,
			Active:      true,
		},
		{
			Key:         "annual",
			Name:        "Admiral",
			Price:       "$290",
			Period:      "/year",
			Description: "Maximum savings and lifetime access to new features.",
			Color:       "bg-slate-800",
			Popular:     false,
			Active:      true,
		},
	}
	plans[0].SetFeatureList([]string{"1 active landing page", "Basic visual editor", "Hosting included", "Email support"})
	plans[1].SetFeatureList([]string{"5 active landing pages", "AI copy generator", "Advanced editor", "Custom domain", "Priority support"})
	plans[2].SetFeatureList([]string{"Unlimited pages", "Unlimited AI", "Conversion consulting", "Beta feature access", "Account manager"})

	if err := s.db.WithContext(ctx).Create(&plans).Error; err != nil {
		return fmt.Errorf("seed plans: %w", err)
	}
	return nil
}
