package storage

import "github.com/Jyoti0525/habitflow/internal/models"

// Provider is the persistence port. Every mutation is all-or-nothing
// for the persisted state: a failed write leaves the stored document
// untouched. An in-memory implementation may hold the new value ahead
// of disk until the next Load.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// User directory
	AddUser(models.User) error
	GetUser(id string) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	UpdateUser(models.User) error

	// Active session record
	SaveSession(models.Session) error
	GetSession() (models.Session, error)
	ClearSession() error

	// Habits. Collections are owner-scoped and insertion-ordered.
	AddHabit(models.Habit) error
	GetHabit(ownerID, id string) (models.Habit, error)
	GetHabits(ownerID string) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(ownerID, id string) error

	// Completion history
	AddEntry(models.CompletionEntry) error
	DeleteEntry(ownerID, habitID, day string) error
	GetEntriesForDay(ownerID, day string) ([]models.CompletionEntry, error)
	GetEntriesForRange(ownerID, startDay, endDay string) ([]models.CompletionEntry, error)

	// Notification log, stored most-recent-first and overwritten whole.
	GetNotifications(ownerID string) ([]models.Notification, error)
	SaveNotifications(ownerID string, log []models.Notification) error

	// Utils
	GetConfigPath() string
}
