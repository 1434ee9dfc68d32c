// Package notifications maintains the per-user notification log: a
// capped, newest-first list of readable event records.
package notifications

import (
	"time"

	"github.com/google/uuid"

	"github.com/Jyoti0525/habitflow/internal/constants"
	"github.com/Jyoti0525/habitflow/internal/models"
	"github.com/Jyoti0525/habitflow/internal/storage"
)

// Log wraps the persisted notification list for one user. Appends
// prepend and evict from the tail once the cap is reached.
type Log struct {
	store   storage.Provider
	ownerID string
	now     func() time.Time
}

func NewLog(store storage.Provider, ownerID string) *Log {
	return &Log{
		store:   store,
		ownerID: ownerID,
		now:     time.Now,
	}
}

// Append records a new unread notification at the head of the log and
// returns it. The oldest entries are dropped beyond the cap.
func (l *Log) Append(message string, kind constants.NotificationType) (models.Notification, error) {
	n := models.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Type:      kind,
		Read:      false,
		Timestamp: l.now(),
	}
	if err := n.Validate(); err != nil {
		return models.Notification{}, err
	}

	log, err := l.store.GetNotifications(l.ownerID)
	if err != nil {
		return models.Notification{}, err
	}

	log = append([]models.Notification{n}, log...)
	if len(log) > constants.MaxNotifications {
		log = log[:constants.MaxNotifications]
	}

	if err := l.store.SaveNotifications(l.ownerID, log); err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

// All returns the log newest first.
func (l *Log) All() ([]models.Notification, error) {
	return l.store.GetNotifications(l.ownerID)
}

// MarkRead marks a single notification read. Unknown ids and already
// read entries are a no-op.
func (l *Log) MarkRead(id string) error {
	log, err := l.store.GetNotifications(l.ownerID)
	if err != nil {
		return err
	}

	for i := range log {
		if log[i].ID == id {
			if log[i].Read {
				return nil
			}
			log[i].Read = true
			return l.store.SaveNotifications(l.ownerID, log)
		}
	}
	return nil
}

// MarkAllRead marks every notification read. Idempotent.
func (l *Log) MarkAllRead() error {
	log, err := l.store.GetNotifications(l.ownerID)
	if err != nil {
		return err
	}

	changed := false
	for i := range log {
		if !log[i].Read {
			log[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return l.store.SaveNotifications(l.ownerID, log)
}

// Clear removes every notification from the log.
func (l *Log) Clear() error {
	return l.store.SaveNotifications(l.ownerID, nil)
}

// UnreadCount counts unread entries without mutating anything.
func UnreadCount(log []models.Notification) int {
	count := 0
	for _, n := range log {
		if !n.Read {
			count++
		}
	}
	return count
}
