package mock

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"pagehelm/internal/store"
	"pagehelm/models"
)

func TestNewSeedsRepresentativeData(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database, err := New(ctx)
	if err != nil {
		t.Fatalf("new mock database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			sqlDB.Close()
		}
	})

	st := store.New(database)

	user, err := st.UserByEmail(ctx, "captain@pagehelm.test")
	if err != nil {
		t.Fatalf("seeded admin missing: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Fatalf("role = %q, want ADMIN", user.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(Password)); err != nil {
		t.Fatal("seeded password does not match the shared constant")
	}

	home, err := st.HomePage(ctx)
	if err != nil {
		t.Fatalf("home page missing: %v", err)
	}
	if !home.Published() {
		t.Fatal("home page not published")
	}

	plans, err := st.Plans(ctx)
	if err != nil {
		t.Fatalf("plans missing: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("plans = %d, want 3", len(plans))
	}
	popular := 0
	for _, plan := range plans {
		if plan.Popular {
			popular++
		}
	}
	if popular != 1 {
		t.Fatalf("popular plans = %d, want exactly 1", popular)
	}
}
