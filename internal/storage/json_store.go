package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Jyoti0525/habitflow/internal/logger"
	"github.com/Jyoti0525/habitflow/internal/models"
)

// Store is the full JSON document. Every mutation rewrites it whole,
// which keeps individual writes all-or-nothing.
type Store struct {
	Version       int                                 `json:"version"`
	Users         []models.User                       `json:"users"`
	Session       *models.Session                     `json:"session,omitempty"`
	Habits        map[string][]models.Habit           `json:"habits"`        // ownerID -> insertion-ordered habits
	Entries       map[string][]models.CompletionEntry `json:"entries"`       // ownerID -> completion history
	Notifications map[string][]models.Notification    `json:"notifications"` // ownerID -> newest-first log
}

// JSONStore persists the whole document to a single file. Simple and
// portable; fine for the small collections this app keeps.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func emptyStore() *Store {
	return &Store{
		Version:       1,
		Habits:        make(map[string][]models.Habit),
		Entries:       make(map[string][]models.CompletionEntry),
		Notifications: make(map[string][]models.Notification),
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = emptyStore()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitflow init' first")
		}
		return &models.StorageError{Op: "read", Err: err}
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// Corrupt records are dropped rather than crashing: start from an
		// empty document and let the next write replace the bad file.
		logger.Warn("Dropping corrupt storage file", "path", s.path, "error", err)
		s.store = emptyStore()
		return nil
	}

	if s.store.Habits == nil {
		s.store.Habits = make(map[string][]models.Habit)
	}
	if s.store.Entries == nil {
		s.store.Entries = make(map[string][]models.CompletionEntry)
	}
	if s.store.Notifications == nil {
		s.store.Notifications = make(map[string][]models.Notification)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return &models.StorageError{Op: "serialize", Err: err}
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return &models.StorageError{Op: "write", Err: err}
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) AddUser(user models.User) error {
	if err := s.loaded(); err != nil {
		return err
	}

	for _, u := range s.store.Users {
		if strings.EqualFold(u.Email, user.Email) {
			return models.ErrDuplicateEmail
		}
	}

	s.store.Users = append(s.store.Users, user)
	return s.save()
}

func (s *JSONStore) GetUser(id string) (models.User, error) {
	if err := s.loaded(); err != nil {
		return models.User{}, err
	}

	for _, u := range s.store.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("%w: user %s", models.ErrNotFound, id)
}

func (s *JSONStore) GetUserByEmail(email string) (models.User, error) {
	if err := s.loaded(); err != nil {
		return models.User{}, err
	}

	for _, u := range s.store.Users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("%w: no user with email %s", models.ErrNotFound, email)
}

func (s *JSONStore) UpdateUser(user models.User) error {
	if err := s.loaded(); err != nil {
		return err
	}

	for i, u := range s.store.Users {
		if u.ID == user.ID {
			s.store.Users[i] = user
			return s.save()
		}
	}
	return fmt.Errorf("%w: user %s", models.ErrNotFound, user.ID)
}

func (s *JSONStore) SaveSession(session models.Session) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.store.Session = &session
	return s.save()
}

func (s *JSONStore) GetSession() (models.Session, error) {
	if err := s.loaded(); err != nil {
		return models.Session{}, err
	}

	if s.store.Session == nil {
		return models.Session{}, fmt.Errorf("%w: no active session", models.ErrNotFound)
	}
	return *s.store.Session, nil
}

func (s *JSONStore) ClearSession() error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.store.Session = nil
	return s.save()
}

func (s *JSONStore) AddHabit(habit models.Habit) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.store.Habits[habit.OwnerID] = append(s.store.Habits[habit.OwnerID], habit)
	return s.save()
}

func (s *JSONStore) GetHabit(ownerID, id string) (models.Habit, error) {
	if err := s.loaded(); err != nil {
		return models.Habit{}, err
	}

	for _, h := range s.store.Habits[ownerID] {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("%w: habit %s", models.ErrNotFound, id)
}

func (s *JSONStore) GetHabits(ownerID string) ([]models.Habit, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	habits := make([]models.Habit, len(s.store.Habits[ownerID]))
	copy(habits, s.store.Habits[ownerID])
	return habits, nil
}

func (s *JSONStore) UpdateHabit(habit models.Habit) error {
	if err := s.loaded(); err != nil {
		return err
	}

	owned := s.store.Habits[habit.OwnerID]
	for i, h := range owned {
		if h.ID == habit.ID {
			owned[i] = habit
			return s.save()
		}
	}
	return fmt.Errorf("%w: habit %s", models.ErrNotFound, habit.ID)
}

func (s *JSONStore) DeleteHabit(ownerID, id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	owned := s.store.Habits[ownerID]
	for i, h := range owned {
		if h.ID == id {
			s.store.Habits[ownerID] = append(owned[:i:i], owned[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("%w: habit %s", models.ErrNotFound, id)
}

func (s *JSONStore) AddEntry(entry models.CompletionEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.store.Entries[entry.OwnerID] = append(s.store.Entries[entry.OwnerID], entry)
	return s.save()
}

func (s *JSONStore) DeleteEntry(ownerID, habitID, day string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	entries := s.store.Entries[ownerID]
	for i, e := range entries {
		if e.HabitID == habitID && e.Day == day {
			s.store.Entries[ownerID] = append(entries[:i:i], entries[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("%w: entry for habit %s on %s", models.ErrNotFound, habitID, day)
}

func (s *JSONStore) GetEntriesForDay(ownerID, day string) ([]models.CompletionEntry, error) {
	return s.entriesWhere(ownerID, func(e models.CompletionEntry) bool {
		return e.Day == day
	})
}

func (s *JSONStore) GetEntriesForRange(ownerID, startDay, endDay string) ([]models.CompletionEntry, error) {
	return s.entriesWhere(ownerID, func(e models.CompletionEntry) bool {
		return e.Day >= startDay && e.Day <= endDay
	})
}

func (s *JSONStore) entriesWhere(ownerID string, keep func(models.CompletionEntry) bool) ([]models.CompletionEntry, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	var entries []models.CompletionEntry
	for _, e := range s.store.Entries[ownerID] {
		if keep(e) {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (s *JSONStore) GetNotifications(ownerID string) ([]models.Notification, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	log := make([]models.Notification, len(s.store.Notifications[ownerID]))
	copy(log, s.store.Notifications[ownerID])
	return log, nil
}

func (s *JSONStore) SaveNotifications(ownerID string, log []models.Notification) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.store.Notifications[ownerID] = log
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
