package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxThemeLength    = 255
	MaxPhotoRefLength = 255
	MaxServiceLines   = 50
)
