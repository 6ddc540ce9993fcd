// File: utils/constants.go
package utils

// DateLayout is the local calendar date format used across the platform RPC.
const DateLayout = "2006-01-02"

// ScheduleCachePrefix is the prefix used for Redis schedule cache keys.
const ScheduleCachePrefix = "schedule:day:"
