package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Jyoti0525/habitflow/internal/models"
	"github.com/Jyoti0525/habitflow/internal/notifications"
	"github.com/Jyoti0525/habitflow/internal/storage"
)

func newTestManager(t *testing.T) (*Manager, storage.Provider) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "habitflow.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	return NewManager(store), store
}

func TestManager_Register(t *testing.T) {
	m, store := newTestManager(t)

	sess, err := m.Register("Alex", "alex@example.com", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.State() != StateAuthenticated {
		t.Errorf("expected authenticated state, got %v", m.State())
	}
	if sess.Name != "Alex" || sess.Email != "alex@example.com" {
		t.Errorf("unexpected session: %+v", sess)
	}

	// Password must be stored hashed, never verbatim.
	user, err := store.GetUserByEmail("alex@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if user.PasswordHash == "hunter22" || user.PasswordHash == "" {
		t.Error("password stored incorrectly")
	}

	// Starter habits are seeded on first authentication.
	habits, err := store.GetHabits(sess.UserID)
	if err != nil {
		t.Fatal(err)
	}
	if len(habits) != 3 {
		t.Errorf("expected 3 starter habits, got %d", len(habits))
	}

	// And a welcome notification is logged.
	log, err := notifications.NewLog(store, sess.UserID).All()
	if err != nil {
		t.Fatal(err)
	}
	if len(log) == 0 {
		t.Error("expected a welcome notification")
	}
}

func TestManager_RegisterDuplicateEmail(t *testing.T) {
	m, _ := newTestManager(t)
	if _, err := m.Register("Alex", "alex@example.com", "hunter22"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Register("Other", "ALEX@example.com", "password"); !errors.Is(err, models.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestManager_RegisterValidation(t *testing.T) {
	m, _ := newTestManager(t)

	if _, err := m.Register("", "alex@example.com", "hunter22"); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := m.Register("Alex", "not-an-email", "hunter22"); err == nil {
		t.Error("expected error for invalid email")
	}
	if _, err := m.Register("Alex", "alex@example.com", "abc"); err == nil {
		t.Error("expected error for short password")
	}
}

func TestManager_Login(t *testing.T) {
	m, store := newTestManager(t)
	sess, err := m.Register("Alex", "alex@example.com", "hunter22")
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Logout(); err != nil {
		t.Fatal(err)
	}
	if m.State() != StateAnonymous {
		t.Errorf("expected anonymous after logout, got %v", m.State())
	}

	back, err := m.Login("alex@example.com", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.UserID != sess.UserID {
		t.Errorf("expected same identity, got %s vs %s", back.UserID, sess.UserID)
	}

	// Seeding happens once: the collection is unchanged on re-login.
	habits, err := store.GetHabits(sess.UserID)
	if err != nil {
		t.Fatal(err)
	}
	if len(habits) != 3 {
		t.Errorf("expected 3 habits after re-login, got %d", len(habits))
	}
}

func TestManager_LoginInvalidCredentials(t *testing.T) {
	m, _ := newTestManager(t)
	if _, err := m.Register("Alex", "alex@example.com", "hunter22"); err != nil {
		t.Fatal(err)
	}

	if _, err := m.Login("alex@example.com", "wrong"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := m.Login("nobody@example.com", "hunter22"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestManager_Restore(t *testing.T) {
	m, store := newTestManager(t)
	sess, err := m.Register("Alex", "alex@example.com", "hunter22")
	if err != nil {
		t.Fatal(err)
	}

	// A fresh manager over the same store resumes the session.
	fresh := NewManager(store)
	if fresh.State() != StateLoading {
		t.Errorf("expected loading state before restore, got %v", fresh.State())
	}
	if err := fresh.Restore(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fresh.State() != StateAuthenticated {
		t.Errorf("expected authenticated after restore, got %v", fresh.State())
	}
	got, err := fresh.Current()
	if err != nil {
		t.Fatal(err)
	}
	if got.UserID != sess.UserID {
		t.Errorf("restored wrong identity: %s", got.UserID)
	}
}

func TestManager_RestoreNoSession(t *testing.T) {
	m, _ := newTestManager(t)
	if err := m.Restore(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.State() != StateAnonymous {
		t.Errorf("expected anonymous state, got %v", m.State())
	}
	if _, err := m.Current(); !errors.Is(err, models.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestManager_DataSurvivesLogout(t *testing.T) {
	m, store := newTestManager(t)
	sess, err := m.Register("Alex", "alex@example.com", "hunter22")
	if err != nil {
		t.Fatal(err)
	}

	extra := models.Habit{ID: "h9", Name: "Swim", Category: "Fitness", OwnerID: sess.UserID}
	if err := store.AddHabit(extra); err != nil {
		t.Fatal(err)
	}

	if err := m.Logout(); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Login("alex@example.com", "hunter22"); err != nil {
		t.Fatal(err)
	}

	habits, err := store.GetHabits(sess.UserID)
	if err != nil {
		t.Fatal(err)
	}
	if len(habits) != 4 {
		t.Errorf("expected collection recovered across logins, got %d habits", len(habits))
	}
}

func TestManager_UpdateProfile(t *testing.T) {
	m, _ := newTestManager(t)

	if _, err := m.UpdateProfile("New Name", ""); !errors.Is(err, models.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}

	if _, err := m.Register("Alex", "alex@example.com", "hunter22"); err != nil {
		t.Fatal(err)
	}
	sess, err := m.UpdateProfile("Alexandra", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Name != "Alexandra" {
		t.Errorf("expected updated name, got %s", sess.Name)
	}
	if sess.Email != "alex@example.com" {
		t.Errorf("email should be unchanged, got %s", sess.Email)
	}

	sess, err = m.UpdateProfile("", "alexandra@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Email != "alexandra@example.com" {
		t.Errorf("expected updated email, got %s", sess.Email)
	}
}

func TestManager_UpdateProfileEmailTaken(t *testing.T) {
	m, _ := newTestManager(t)
	if _, err := m.Register("Other", "taken@example.com", "hunter22"); err != nil {
		t.Fatal(err)
	}
	if err := m.Logout(); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Register("Alex", "alex@example.com", "hunter22"); err != nil {
		t.Fatal(err)
	}

	if _, err := m.UpdateProfile("", "taken@example.com"); !errors.Is(err, models.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}
