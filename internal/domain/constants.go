package domain

// Default configuration values
const (
	DefaultAvailabilityWindowDays = 60
)

// Business validation constants
const (
	MinNameLength  = 3
	MaxNameLength  = 50
	MaxPhoneLength = 20
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
