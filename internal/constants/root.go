package constants

// Frequency represents how often an activity recurs
type Frequency string

// TaskStatus represents the workflow state of a task
type TaskStatus string

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

// SessionKind distinguishes focus work from breaks
type SessionKind string

const (
	AppName            = "secondbrain"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/secondbrain/secondbrain.db"
	Version            = "v0.3.0"

	// Frequency constants
	FrequencyDaily        Frequency = "daily"
	FrequencySpecificDays Frequency = "specific_days"

	// Task status constants
	TaskStatusInbox   TaskStatus = "inbox"
	TaskStatusNext    TaskStatus = "next"
	TaskStatusSomeday TaskStatus = "someday"
	TaskStatusDone    TaskStatus = "done"

	// Project status constants
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"

	// Layout defaults (minutes)
	DefaultCoreMin   = 30
	DefaultTotalMin  = 60
	DefaultEventMin  = 60
	ConnectorGapMin  = 5
	DefaultEventHour = 12

	// Focus session kinds
	SessionFocus SessionKind = "focus"
	SessionBreak SessionKind = "break"

	// Pomodoro defaults (minutes)
	DefaultFocusMin      = 25
	DefaultShortBreakMin = 5
	DefaultLongBreakMin  = 15

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "secondbrain-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "secondbrain-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "dev.acampos.secondbrain"
)
