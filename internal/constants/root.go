package constants

// NotificationType classifies a user-facing notification.
type NotificationType string

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "habitflow"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/habitflow/habitflow.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MaxNotifications caps the per-user notification log. Appending beyond
	// the cap evicts the oldest entry.
	MaxNotifications = 20

	// Notify constants
	NotifierLockfileName   = "habitflow-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.habitflow.tray"

	// Notification types
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"

	// CategoryAll is the sentinel filter value that disables category
	// filtering in habit listings.
	CategoryAll = "All"
)

// TUI session states
const (
	StateHabits SessionState = iota
	StateNotifications
	StateConfirmDelete
)

// MilestoneStreaks are the fixed streak values that trigger a milestone
// notification, in addition to every positive multiple of ten.
var MilestoneStreaks = []int{3, 7, 30}
