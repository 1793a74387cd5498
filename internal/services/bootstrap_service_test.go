package services

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/fieldopshq/fieldops/internal/db"
	"github.com/fieldopshq/fieldops/internal/models"
)

func newBootstrapTestRepositories(t *testing.T) *db.Repositories {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "fieldops-bootstrap-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db.NewRepositories(database)
}

func TestEnsureSuperAdminFailsFastWithoutPassword(t *testing.T) {
	t.Parallel()

	repos := newBootstrapTestRepositories(t)
	service := NewBootstrapService(repos.Companies, repos.Users)

	err := service.EnsureSuperAdmin("FieldOps HQ", "fieldops_owner", "")
	if !errors.Is(err, ErrSuperAdminPasswordUnset) {
		t.Fatalf("expected ErrSuperAdminPasswordUnset, got %v", err)
	}
}

func TestEnsureSuperAdminCreatesOwnerCompanyAndUserOnce(t *testing.T) {
	t.Parallel()

	repos := newBootstrapTestRepositories(t)
	service := NewBootstrapService(repos.Companies, repos.Users)

	if err := service.EnsureSuperAdmin("FieldOps HQ", "fieldops_owner", "bootstrap-secret"); err != nil {
		t.Fatalf("first bootstrap failed: %v", err)
	}

	company, err := repos.Companies.FindByName("FieldOps HQ")
	if err != nil {
		t.Fatalf("owner company not created: %v", err)
	}

	owner, err := repos.Users.FindByUsername("fieldops_owner")
	if err != nil {
		t.Fatalf("super admin not created: %v", err)
	}
	if owner.Role != models.RoleSuperAdmin {
		t.Fatalf("expected role %q, got %q", models.RoleSuperAdmin, owner.Role)
	}
	if owner.CompanyID != company.ID {
		t.Fatalf("expected super admin to belong to owner company %d, got %d", company.ID, owner.CompanyID)
	}

	// A rerun must not touch the existing super admin, even without a
	// password in the environment.
	if err := service.EnsureSuperAdmin("FieldOps HQ", "fieldops_owner", ""); err != nil {
		t.Fatalf("idempotent rerun failed: %v", err)
	}

	unchanged, err := repos.Users.FindByUsername("fieldops_owner")
	if err != nil {
		t.Fatalf("super admin vanished after rerun: %v", err)
	}
	if unchanged.PasswordHash != owner.PasswordHash {
		t.Fatal("expected rerun to leave the super admin password untouched")
	}

	count, err := repos.Users.CountUsers()
	if err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one user after reruns, got %d", count)
	}
}
