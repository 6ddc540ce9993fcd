package schedule

import "errors"

// ErrInvalidSchedule marks a malformed opening interval (closing before
// opening, unparseable times). Callers render an explicit degraded state so
// "bad schedule" is never confused with "no schedule".
var ErrInvalidSchedule = errors.New("invalid schedule")
