package services

import (
	"strings"

	"github.com/fieldopshq/fieldops/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type AuthUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByUsername(username string) (models.User, error)
	ExistsByUsername(username string) (bool, error)
	CreateTenantWithAdmin(companyName string, username string, passwordHash string, backfillOrphans bool) (models.User, error)
}

type AuthService struct {
	users            AuthUserRepository
	reservedUsername string
}

func NewAuthService(users AuthUserRepository, reservedUsername string) *AuthService {
	return &AuthService{users: users, reservedUsername: reservedUsername}
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, asNotFound(err)
	}
	return user, nil
}

// Authenticate verifies a username/password pair. A missing user and a
// wrong password produce the same error.
func (service *AuthService) Authenticate(username string, password string) (models.User, error) {
	user, err := service.users.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Signup creates a new company and its first admin user in one
// transaction. The bootstrap owner's username is reserved.
func (service *AuthService) Signup(companyName string, username string, password string) (models.User, error) {
	companyName = strings.TrimSpace(companyName)
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if companyName == "" || username == "" || password == "" {
		return models.User{}, ErrAllFieldsRequired
	}

	if strings.EqualFold(username, service.reservedUsername) {
		return models.User{}, ErrUsernameReserved
	}

	taken, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrUsernameTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user, err := service.users.CreateTenantWithAdmin(companyName, username, string(passwordHash), false)
	if err != nil {
		// Unique index race on username surfaces here.
		return models.User{}, ErrUsernameTaken
	}
	return user, nil
}
