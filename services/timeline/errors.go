package timeline

import "errors"

// ErrFetchFailed wraps any failure to reload the timeline's underlying data
// (network, timeout, non-2xx). The failed reload leaves an explicit empty
// state rather than stale data.
var ErrFetchFailed = errors.New("timeline: fetch failed")
