package domain

// Slot fitting defaults
const (
	// DefaultSlotDurationMinutes is used when the first slot of a day has a
	// non-positive or unparseable length.
	DefaultSlotDurationMinutes = 30
)

// Period boundaries (start hour of the slot, 24h clock)
const (
	AfternoonStartHour = 12
	EveningStartHour   = 17
)

// Service validation bounds, inclusive
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MinServicePrice           = 0
	MaxServicePrice           = 10000
	MaxServiceNameLength      = 255
	MaxSelectedServices       = 20
	MaxImportRows             = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
