package services

import (
	"strings"

	"github.com/fieldopshq/fieldops/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type SetupUserRepository interface {
	CountUsers() (int64, error)
	CreateTenantWithAdmin(companyName string, username string, passwordHash string, backfillOrphans bool) (models.User, error)
}

// SetupService backs the one-time /setup route. The route is open only
// while zero users exist anywhere; once anyone has an account it is
// permanently closed.
type SetupService struct {
	users SetupUserRepository
}

func NewSetupService(users SetupUserRepository) *SetupService {
	return &SetupService{users: users}
}

func (service *SetupService) RequiresInitialSetup() (bool, error) {
	usersCount, err := service.users.CountUsers()
	if err != nil {
		return false, err
	}
	return usersCount == 0, nil
}

// CreateFirstTenant creates the first company and its admin user, and
// claims any rows written before tenant scoping existed.
func (service *SetupService) CreateFirstTenant(companyName string, username string, password string) (models.User, error) {
	companyName = strings.TrimSpace(companyName)
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if companyName == "" || username == "" || password == "" {
		return models.User{}, ErrAllFieldsRequired
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	return service.users.CreateTenantWithAdmin(companyName, username, string(passwordHash), true)
}
