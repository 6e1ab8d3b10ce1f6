package strmsync

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/strmsync/strmsync/pkg/constants"
)

// options holds the client configuration assembled from Option values.
type options struct {
	mediaRoot   string
	upstreamURL string
	token       string
	libraries   []string
	interval    time.Duration
	httpClient  *http.Client
	logger      *zerolog.Logger
}

// defaultOptions returns the baseline configuration.
func defaultOptions() *options {
	return &options{
		mediaRoot: constants.DefaultMediaRoot,
		libraries: []string{"movies", "shows"},
		interval:  constants.DefaultSyncInterval,
	}
}

// Option configures a Client.
type Option func(*options)

// WithMediaRoot sets the root directory pointer files are written under.
func WithMediaRoot(root string) Option {
	return func(o *options) {
		if root != "" {
			o.mediaRoot = root
		}
	}
}

// WithUpstream sets the upstream base URL and credential token.
func WithUpstream(baseURL, token string) Option {
	return func(o *options) {
		o.upstreamURL = baseURL
		o.token = token
	}
}

// WithLibraries sets the library endpoints queried each run, in merge
// precedence order (later wins on key collisions).
func WithLibraries(libraries ...string) Option {
	return func(o *options) {
		if len(libraries) > 0 {
			o.libraries = libraries
		}
	}
}

// WithInterval sets the scheduling interval for ScheduleOn.
func WithInterval(interval time.Duration) Option {
	return func(o *options) {
		if interval > 0 {
			o.interval = interval
		}
	}
}

// WithHTTPClient replaces the HTTP client used for source fetches.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithLogger sets the logger attached to every run context.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
