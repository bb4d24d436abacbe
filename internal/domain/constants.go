package domain

// Business validation constants
const (
	MaxGuestNameLength  = 255
	MaxGuestPhoneLength = 32
	MaxNotesLength      = 1000
	MaxTitleLength      = 255
)

// Time format constants
const (
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // для логов
)
