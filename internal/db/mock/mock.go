// Package mock provides a seeded in-memory database for tests and local
// development.
package mock

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "pagehelm/internal/log"
	"pagehelm/internal/store"
	"pagehelm/models"
)

// Password shared by every seeded account.
const Password = "ahoy"

// New returns an in-memory sqlite database seeded with representative
// builder data: one account per role, the home page, and the launch plans.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	dsn := fmt.Sprintf("file:pagehelm-mock-%d?mode=memory&cache=shared", time.Now().UnixNano())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(
		&models.User{},
		&models.Page{},
		&models.Plan{},
	); err != nil {
		return nil, err
	}

	if err := seed(ctx, database); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return database, nil
}

func seed(ctx context.Context, database *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	hashed, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{Email: "captain@pagehelm.test", Name: "The Captain", PasswordHash: string(hashed), Role: models.RoleAdmin},
		{Email: "sailor@pagehelm.test", Name: "First Mate", PasswordHash: string(hashed), Role: models.RoleUser},
		{Email: "stowaway@pagehelm.test", Name: "Stowaway", PasswordHash: string(hashed), Role: models.RoleFreeUser, Phone: "+1 555 0100"},
	}
	if err := database.WithContext(ctx).Create(&users).Error; err != nil {
		return err
	}

	st := store.New(database)
	if _, err := st.SeedHomePage(ctx); err != nil {
		return err
	}
	return st.SeedDefaultPlans(ctx)
}
