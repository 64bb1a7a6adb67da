// Package auth implements login, logout, session lookup and registration on
// top of the users collection and the session key.
package auth

import (
	"context"
	"log"
	"sync"
	"time"

	"medicab-server/internal/models"
	"medicab-server/internal/storage"
	"medicab-server/internal/utils"
)

// Messages returned to the caller in failed results.
const (
	ErrInvalidCredentials = "Email ou mot de passe incorrect"
	ErrAccountSuspended   = "Votre compte a été suspendu"
	ErrEmailInUse         = "Cet email est déjà utilisé"
	ErrRegistration       = "Erreur lors de l'inscription"
	ErrSessionWrite       = "Impossible d'ouvrir la session"
)

// Result is the outcome of Login and Register.
type Result struct {
	Success bool                  `json:"success"`
	User    *models.UserSanitized `json:"user,omitempty"`
	Error   string                `json:"error,omitempty"`
}

func failure(msg string) Result {
	return Result{Success: false, Error: msg}
}

func success(u *models.User) Result {
	sanitized := u.Sanitize()
	return Result{Success: true, User: &sanitized}
}

// RegisterInput holds the fields accepted by Register.
type RegisterInput struct {
	Email            string      `json:"email" validate:"required,email"`
	Password         string      `json:"password" validate:"required"`
	Name             string      `json:"name" validate:"required"`
	Role             models.Role `json:"role" validate:"required,oneof=admin doctor secretary"`
	Phone            string      `json:"phone"`
	Address          string      `json:"address"`
	Specialty        string      `json:"specialty"`
	AssignedDoctorID string      `json:"assignedDoctorId"`
}

// Service owns every read-modify-write of the users collection. Callers
// sharing a Store must share one Service.
type Service struct {
	store *storage.Store
	mu    sync.Mutex
	now   func() time.Time
}

// NewService creates a Service over store.
func NewService(store *storage.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// users reads the users collection. An absent collection is empty; a read
// fault or an undecodable value is an error so that callers never write a
// list built from a partial view back over the stored one.
func (s *Service) users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := s.store.Lookup(ctx, storage.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Login authenticates email and password and opens the session.
func (s *Service) Login(ctx context.Context, email, password string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.users(ctx)
	if err != nil {
		log.Printf("auth: login: reading users: %v", err)
		return failure(ErrInvalidCredentials)
	}
	idx := -1
	for i := range users {
		if users[i].Email == email && users[i].CheckPassword(password) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return failure(ErrInvalidCredentials)
	}

	user := &users[idx]
	if user.IsSuspended() {
		return failure(ErrAccountSuspended)
	}

	if user.HasLegacyPassword() {
		if err := user.SetPassword(password); err != nil {
			log.Printf("auth: rehashing password of %s: %v", user.ID, err)
		} else if !s.store.Set(ctx, storage.KeyUsers, users) {
			log.Printf("auth: could not save rehashed password of %s", user.ID)
		}
	}

	session := models.NewSession(user, models.Timestamp(s.now()))
	if !s.store.Set(ctx, storage.KeySession, session) {
		return failure(ErrSessionWrite)
	}
	return success(user)
}

// Logout closes the session. It is a no-op when no session is open.
func (s *Service) Logout(ctx context.Context) bool {
	return s.store.Remove(ctx, storage.KeySession)
}

// CurrentSession returns the open session, or nil.
func (s *Service) CurrentSession(ctx context.Context) *models.Session {
	var session models.Session
	if !s.store.Get(ctx, storage.KeySession, &session) {
		return nil
	}
	return &session
}

// Register appends a new account. Doctors start suspended until an
// administrator activates them; other roles start active.
func (s *Service) Register(ctx context.Context, input RegisterInput) Result {
	if err := utils.Validate(input); err != nil {
		return failure(utils.FormatValidationError(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.users(ctx)
	if err != nil {
		log.Printf("auth: register: reading users: %v", err)
		return failure(ErrRegistration)
	}
	for i := range users {
		if users[i].Email == input.Email {
			return failure(ErrEmailInUse)
		}
	}

	user := models.User{
		Email:            input.Email,
		Name:             input.Name,
		Role:             input.Role,
		Phone:            input.Phone,
		Address:          input.Address,
		Specialty:        input.Specialty,
		AssignedDoctorID: input.AssignedDoctorID,
		Status:           models.UserStatusActive,
		CreatedAt:        models.Timestamp(s.now()),
	}
	if input.Role == models.RoleDoctor {
		user.Status = models.UserStatusSuspended
	}
	user.EnsureID()
	if err := user.SetPassword(input.Password); err != nil {
		log.Printf("auth: hashing password: %v", err)
		return failure(ErrRegistration)
	}

	users = append(users, user)
	if !s.store.Set(ctx, storage.KeyUsers, users) {
		return failure(ErrRegistration)
	}
	return success(&user)
}
