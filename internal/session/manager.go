// Package session manages the authentication lifecycle: registration,
// login, logout, and restoring the persisted active session.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jyoti0525/habitflow/internal/constants"
	"github.com/Jyoti0525/habitflow/internal/habits"
	"github.com/Jyoti0525/habitflow/internal/logger"
	"github.com/Jyoti0525/habitflow/internal/models"
	"github.com/Jyoti0525/habitflow/internal/notifications"
	"github.com/Jyoti0525/habitflow/internal/storage"
)

// State is the session lifecycle position. A manager starts in
// StateLoading until Restore resolves the persisted record.
type State int

const (
	StateLoading State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

type Manager struct {
	store   storage.Provider
	state   State
	current models.Session
	now     func() time.Time
}

func NewManager(store storage.Provider) *Manager {
	return &Manager{
		store: store,
		state: StateLoading,
		now:   time.Now,
	}
}

func (m *Manager) State() State {
	return m.state
}

// Current returns the active session, or ErrNotAuthenticated when none.
func (m *Manager) Current() (models.Session, error) {
	if m.state != StateAuthenticated {
		return models.Session{}, models.ErrNotAuthenticated
	}
	return m.current, nil
}

// Restore resolves the persisted session record, moving out of the
// loading state. A stale record pointing at a deleted user is cleared.
func (m *Manager) Restore() error {
	sess, err := m.store.GetSession()
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			m.state = StateAnonymous
			return nil
		}
		return err
	}

	if _, err := m.store.GetUser(sess.UserID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			logger.Warn("Clearing session for missing user", "userId", sess.UserID)
			if err := m.store.ClearSession(); err != nil {
				return err
			}
			m.state = StateAnonymous
			return nil
		}
		return err
	}

	m.current = sess
	m.state = StateAuthenticated
	return nil
}

// Register creates a user and signs them in. The first authentication
// of a fresh account seeds the starter habit set.
func (m *Manager) Register(name, email, password string) (models.Session, error) {
	user := models.User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		CreatedAt: m.now(),
	}
	if err := user.Validate(); err != nil {
		return models.Session{}, err
	}
	if len(password) < 6 {
		return models.Session{}, &models.ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := m.store.AddUser(user); err != nil {
		return models.Session{}, err
	}

	if err := m.signIn(user); err != nil {
		return models.Session{}, err
	}

	log := notifications.NewLog(m.store, user.ID)
	if _, err := log.Append(fmt.Sprintf("Welcome to HabitFlow, %s!", user.Name), constants.NotificationSuccess); err != nil {
		return models.Session{}, err
	}
	return m.current, nil
}

// Login authenticates against the user directory. Unknown email and
// wrong password fail identically.
func (m *Manager) Login(email, password string) (models.Session, error) {
	user, err := m.store.GetUserByEmail(strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.Session{}, models.ErrInvalidCredentials
		}
		return models.Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.Session{}, models.ErrInvalidCredentials
	}

	if err := m.signIn(user); err != nil {
		return models.Session{}, err
	}

	log := notifications.NewLog(m.store, user.ID)
	if _, err := log.Append(fmt.Sprintf("Welcome back, %s!", user.Name), constants.NotificationInfo); err != nil {
		return models.Session{}, err
	}
	return m.current, nil
}

// signIn persists the session record and seeds the starter habits if
// this identity has never been seeded.
func (m *Manager) signIn(user models.User) error {
	sess := models.Session{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}
	if err := m.store.SaveSession(sess); err != nil {
		return err
	}

	if !user.Seeded {
		log := notifications.NewLog(m.store, user.ID)
		svc := habits.NewService(m.store, log, user.ID)
		if err := svc.Seed(); err != nil {
			return err
		}
		user.Seeded = true
		if err := m.store.UpdateUser(user); err != nil {
			return err
		}
		logger.Info("Seeded starter habits", "userId", user.ID)
	}

	m.current = sess
	m.state = StateAuthenticated
	return nil
}

// Logout clears the persisted session. Always succeeds from the
// caller's perspective; the identity's data stays persisted and is
// rebound on the next login.
func (m *Manager) Logout() error {
	if err := m.store.ClearSession(); err != nil {
		return err
	}
	m.current = models.Session{}
	m.state = StateAnonymous
	return nil
}

// UpdateProfile changes the signed-in user's name and/or email and
// refreshes the session record to match. Empty arguments leave the
// field unchanged.
func (m *Manager) UpdateProfile(name, email string) (models.Session, error) {
	if m.state != StateAuthenticated {
		return models.Session{}, models.ErrNotAuthenticated
	}

	user, err := m.store.GetUser(m.current.UserID)
	if err != nil {
		return models.Session{}, err
	}

	if name != "" {
		user.Name = strings.TrimSpace(name)
	}
	if email != "" {
		email = strings.TrimSpace(email)
		if existing, err := m.store.GetUserByEmail(email); err == nil && existing.ID != user.ID {
			return models.Session{}, models.ErrDuplicateEmail
		}
		user.Email = email
	}
	if err := user.Validate(); err != nil {
		return models.Session{}, err
	}
	if err := m.store.UpdateUser(user); err != nil {
		return models.Session{}, err
	}

	m.current.Name = user.Name
	m.current.Email = user.Email
	if err := m.store.SaveSession(m.current); err != nil {
		return models.Session{}, err
	}
	return m.current, nil
}
