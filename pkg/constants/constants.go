// Package constants provides shared constants used throughout the strmsync
// codebase. This includes timeouts, limits, file permissions, and other
// configuration values that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to upstream sources
	DefaultHTTPTimeout = 30 * time.Second

	// RunTimeout is the timeout applied to each reconciliation pass
	RunTimeout = 5 * time.Minute

	// DefaultSyncInterval is the default interval between scheduled reconciliation passes
	DefaultSyncInterval = 1 * time.Hour

	// RetryBackoff is the base backoff duration for fetch retries
	RetryBackoff = 1 * time.Second

	// MaxRetryBackoff is the maximum backoff duration for fetch retries
	MaxRetryBackoff = 30 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created pointer files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// MaxFetchRetries is the number of retry attempts for transient source fetch failures
	MaxFetchRetries = 3

	// MaxResponseBody is the largest source response body read into memory, in bytes
	MaxResponseBody = 32 << 20
)

// Pointer-file layout constants
const (
	// PointerSuffix is the file extension every pointer file carries
	PointerSuffix = ".strm"

	// CredentialParam is the query parameter the upstream expects the token in
	CredentialParam = "api_key"

	// DefaultMediaRoot is the media tree location when none is configured
	DefaultMediaRoot = "./media"
)
