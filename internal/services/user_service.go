package services

import (
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"blogapi/internal/models"
	"blogapi/internal/repositories"
	"blogapi/internal/schemas"
)

// EventPublisher publishes entity lifecycle events. Satisfied by
// *rabbitmq.Client; a nil publisher disables publication.
type EventPublisher interface {
	PublishEvent(eventType string, payload interface{}) error
}

// UserService handles business logic for users: password hashing before
// persistence and pagination assembly.
type UserService struct {
	repo      repositories.UserRepository
	publisher EventPublisher
}

// NewUserService creates a new UserService. publisher may be nil.
func NewUserService(repo repositories.UserRepository, publisher EventPublisher) *UserService {
	return &UserService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateUser hashes the plaintext password and persists a new user.
// Returns ErrEmailTaken when the email is already registered.
func (s *UserService) CreateUser(req *schemas.CreateUserRequest) (*models.User, error) {
	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		IsActive:     true,
	}

	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.publish("user.created", schemas.ToUserResponse(user))

	return user, nil
}

// ListUsers returns one page of users together with the pagination
// metadata. Defaults (page=1, limit=10) are applied here.
func (s *UserService) ListUsers(params schemas.PaginationParams) (*schemas.Paginated, error) {
	params.Normalize()

	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}

	users, err := s.repo.GetAll(params.Page, params.Limit)
	if err != nil {
		return nil, err
	}

	paginated := schemas.NewPaginated(schemas.ToUserResponses(users), params.Page, params.Limit, total)
	return &paginated, nil
}

// GetUser retrieves a single user by ID.
func (s *UserService) GetUser(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

// UpdateUser applies a partial update to a user.
func (s *UserService) UpdateUser(id uint, req *schemas.UpdateUserRequest) (*models.User, error) {
	user, err := s.repo.Update(id, req)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user by ID. The boolean reports whether the user
// existed; owned posts are removed by the store's cascade.
func (s *UserService) DeleteUser(id uint) (bool, error) {
	return s.repo.Delete(id)
}

// GetUserByEmail retrieves a user by email. Used by the login flow.
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	return s.repo.GetByEmail(email)
}

func (s *UserService) publish(eventType string, payload interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
