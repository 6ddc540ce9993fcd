package availability

import "errors"

// ErrFetchFailed wraps any failed availability query (network, timeout,
// non-2xx). The failed check leaves an explicit empty result, never stale
// slots.
var ErrFetchFailed = errors.New("availability: fetch failed")
