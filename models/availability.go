package models

// AvailabilitySlot is one result row from the platform availability query,
// carrying zone metadata for downstream grouping. Ephemeral: re-fetched per
// query, never cached across date/guest-count changes.
type AvailabilitySlot struct {
	Time         string `json:"time"` // "HH:MM"
	Capacity     int    `json:"capacity"`
	ZoneID       string `json:"zoneId,omitempty"`
	ZoneName     string `json:"zoneName,omitempty"`
	ZoneColor    string `json:"zoneColor,omitempty"`
	ZonePriority *int   `json:"zonePriority,omitempty"` // ascending = higher priority
}

// AvailabilityResult is the committed outcome of one availability check.
type AvailabilityResult struct {
	Date            string             `json:"date"` // local calendar date
	Guests          int                `json:"guests"`
	DurationMinutes int                `json:"durationMinutes"`
	Slots           []AvailabilitySlot `json:"slots"`
}
