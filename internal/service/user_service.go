package service

import (
	"strings"
	"time"

	"travelmate/internal/model"
	"travelmate/internal/repository"
	"travelmate/pkg/apperr"
	"travelmate/pkg/jwt"
	"travelmate/pkg/password"

	"go.uber.org/zap"
)

// UserService is the user directory: registration with duplicate-identity
// checks and credential verification for login.
type UserService struct {
	users      repository.UserStore
	jwtService *jwt.JWTService
	log        *zap.Logger
}

func NewUserService(users repository.UserStore, jwtService *jwt.JWTService) *UserService {
	return &UserService{users: users, jwtService: jwtService, log: zap.L()}
}

// Register creates an account and issues an access token. The plaintext
// password is hashed immediately and never stored or logged.
func (s *UserService) Register(username, email, firstName, lastName, plainPassword, confirmPassword string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if username == "" || email == "" || plainPassword == "" {
		return nil, "", apperr.New(apperr.KindValidation, "username, email and password are required")
	}
	if firstName == "" || lastName == "" {
		return nil, "", apperr.New(apperr.KindValidation, "first and last name are required")
	}
	if plainPassword != confirmPassword {
		return nil, "", apperr.New(apperr.KindValidation, "passwords do not match")
	}

	if _, err := s.users.GetByUsername(username); err == nil {
		return nil, "", apperr.New(apperr.KindDuplicateIdentity, "username is already taken")
	} else if !repository.IsNotFound(err) {
		return nil, "", apperr.Wrap(err, apperr.KindInternal, "registration failed")
	}
	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, "", apperr.New(apperr.KindDuplicateIdentity, "email is already registered")
	} else if !repository.IsNotFound(err) {
		return nil, "", apperr.Wrap(err, apperr.KindInternal, "registration failed")
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, "", apperr.Wrap(err, apperr.KindInternal, "registration failed")
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(user); err != nil {
		// unique index is the backstop for a concurrent registration
		if repository.IsDuplicateKey(err) {
			return nil, "", apperr.New(apperr.KindDuplicateIdentity, "username or email is already taken")
		}
		return nil, "", apperr.Wrap(err, apperr.KindInternal, "registration failed")
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", apperr.Wrap(err, apperr.KindInternal, "registration failed")
	}

	s.log.Info("user registered", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	return user, token, nil
}

// Authenticate verifies credentials. The identifier matches the username
// or the email; bcrypt does the constant-time hash comparison.
func (s *UserService) Authenticate(identifier, plainPassword string) (*model.User, string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || plainPassword == "" {
		return nil, "", apperr.New(apperr.KindInvalidCredentials, "invalid credentials")
	}

	u, err := s.users.GetByUsernameOrEmail(identifier)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, "", apperr.New(apperr.KindInvalidCredentials, "invalid credentials")
		}
		return nil, "", apperr.Wrap(err, apperr.KindInternal, "login failed")
	}
	if !u.IsActive {
		return nil, "", apperr.New(apperr.KindInvalidCredentials, "invalid credentials")
	}
	if !password.Verify(plainPassword, u.PasswordHash) {
		return nil, "", apperr.New(apperr.KindInvalidCredentials, "invalid credentials")
	}

	token, err := s.jwtService.GenerateToken(u.ID, u.Username)
	if err != nil {
		return nil, "", apperr.Wrap(err, apperr.KindInternal, "login failed")
	}
	return u, token, nil
}

// GetProfile loads a user by id.
func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	u, err := s.users.GetByID(userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.New(apperr.KindNotFound, "user not found")
		}
		return nil, apperr.Wrap(err, apperr.KindInternal, "load profile failed")
	}
	return u, nil
}

// Search finds users by username prefix for the add-friend flow.
func (s *UserService) Search(query string) ([]*model.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.New(apperr.KindValidation, "search query is required")
	}
	users, err := s.users.Search(query, 20)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "search failed")
	}
	return users, nil
}
