package services

import (
	"github.com/haydenmontgomery/Warbler/internal/models"
	"github.com/haydenmontgomery/Warbler/internal/repository"
	"github.com/haydenmontgomery/Warbler/pkg/utils"
)

// AccountService owns the signup/authenticate rules. Uniqueness violations
// are the store's to detect and flow back to the caller untranslated.
type AccountService struct {
	Users repository.UserRepository
}

func NewAccountService(users repository.UserRepository) *AccountService {
	return &AccountService{Users: users}
}

// Signup hashes the password and creates the user. An empty password fails
// before anything touches the store. Duplicate username/email comes back as
// gorm.ErrDuplicatedKey from the repository.
func (s *AccountService) Signup(username, email, password, imageURL string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		ImageURL: imageURL,
	}

	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate looks the user up by username and verifies the password.
// Unknown username and wrong password are indistinguishable: both return
// (nil, false).
func (s *AccountService) Authenticate(username, password string) (*models.User, bool) {
	user, err := s.Users.GetByUsername(username)
	if err != nil {
		return nil, false
	}
	if !utils.CheckPassword(password, user.Password) {
		return nil, false
	}
	return user, true
}
