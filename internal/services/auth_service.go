package services

import (
	"errors"
	"strings"

	"github.com/lunora-app/lunora/internal/models"
	"github.com/lunora-app/lunora/internal/security"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 8

	recoveryCodeLength   = 12
	recoveryCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrRecoveryCodeNotFound = errors.New("recovery code not found")
	ErrInvalidEmail         = errors.New("invalid email")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
	ListWithRecoveryCodeHash() ([]models.User, error)
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateRegistrationInput(email string, password string) error {
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// RegisterUser creates the account and returns the one-time recovery code in
// plain text. Only its bcrypt hash is stored; losing the returned value means
// generating a new one.
func (service *AuthService) RegisterUser(email string, password string) (models.User, string, error) {
	if err := ValidateRegistrationInput(email, password); err != nil {
		return models.User{}, "", err
	}
	email = NormalizeEmail(email)

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, "", err
	}
	if exists {
		return models.User{}, "", ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", err
	}

	recoveryCode, err := security.RandomString(recoveryCodeLength, recoveryCodeAlphabet)
	if err != nil {
		return models.User{}, "", err
	}
	recoveryHash, err := bcrypt.GenerateFromPassword([]byte(recoveryCode), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		Email:            email,
		PasswordHash:     string(passwordHash),
		RecoveryCodeHash: string(recoveryHash),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, "", err
	}
	return user, recoveryCode, nil
}

func (service *AuthService) Authenticate(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) FindUserByRecoveryCode(code string) (*models.User, error) {
	users, err := service.users.ListWithRecoveryCodeHash()
	if err != nil {
		return nil, err
	}

	code = strings.TrimSpace(code)
	for index := range users {
		hash := strings.TrimSpace(users[index].RecoveryCodeHash)
		if hash == "" {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil {
			return &users[index], nil
		}
	}
	return nil, ErrRecoveryCodeNotFound
}

// ResetPassword sets a new password and rotates the recovery code, returning
// the fresh plain-text code.
func (service *AuthService) ResetPassword(user *models.User, newPassword string) (string, error) {
	if len(newPassword) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	recoveryCode, err := security.RandomString(recoveryCodeLength, recoveryCodeAlphabet)
	if err != nil {
		return "", err
	}
	recoveryHash, err := bcrypt.GenerateFromPassword([]byte(recoveryCode), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user.PasswordHash = string(passwordHash)
	user.RecoveryCodeHash = string(recoveryHash)
	if err := service.users.Save(user); err != nil {
		return "", err
	}
	return recoveryCode, nil
}
