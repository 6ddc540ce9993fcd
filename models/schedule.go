package models

// OpeningInterval represents one contiguous opening-hours range for a weekday.
// A day with a split lunch/dinner service carries two intervals.
type OpeningInterval struct {
	DayOfWeek   int    `json:"dayOfWeek"`   // 0 = Sunday .. 6 = Saturday
	OpeningTime string `json:"openingTime"` // "HH:MM" or "HH:MM:SS"
	ClosingTime string `json:"closingTime"` // "HH:MM" or "HH:MM:SS"
	IsActive    bool   `json:"isActive"`
}

// ShiftGroup is a bucket of generated slots that belong to one opening
// interval, labeled for the guest slot picker ("comida", "cena").
type ShiftGroup struct {
	IntervalIndex int      `json:"intervalIndex"`
	Label         string   `json:"label"`
	Slots         []string `json:"slots"` // "HH:MM", sorted
}
