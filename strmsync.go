// Package strmsync reconciles a local tree of .strm pointer files against
// remote authoritative mappings of logical media names to stream URLs.
//
// A Client fetches one flat JSON mapping per configured library endpoint,
// merges them with deterministic source precedence, and writes each entry to
// <media root>/<normalized path> only when the on-disk content differs.
// Reconciliation can be invoked directly with Run or on a fixed interval
// with ScheduleOn.
package strmsync

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/strmsync/strmsync/internal/reconcile"
	"github.com/strmsync/strmsync/internal/sources"
	"github.com/strmsync/strmsync/internal/transport"
	"github.com/strmsync/strmsync/pkg/constants"
	"github.com/strmsync/strmsync/pkg/errors"
	"github.com/strmsync/strmsync/pkg/logging"
)

// Compile-time interface check to ensure proper implementation.
var _ Strmsync = (*client)(nil)

// Strmsync is the top-level interface of the reconciliation service.
type Strmsync interface {
	// Run executes one reconciliation pass and returns its report. A pass
	// already in flight yields ErrRunInProgress instead of overlapping it.
	Run(ctx context.Context) (*reconcile.Report, error)

	Scheduler
}

// Scheduler provides controls for interval-driven reconciliation.
type Scheduler interface {
	// ScheduleOn begins periodic reconciliation at the configured interval.
	ScheduleOn() error

	// ScheduleOff stops periodic reconciliation.
	ScheduleOff() error
}

// client implements Strmsync.
type client struct {
	options *options
	runner  *reconcile.Runner

	// inProgress guards against overlapping passes when a trigger fires
	// while the previous run is still executing.
	inProgress atomic.Bool

	mu       sync.Mutex
	ticker   *time.Ticker
	stopCh   chan struct{}
	cancelFn context.CancelFunc
}

// New creates a Strmsync client. The upstream URL and token are required;
// everything else has defaults (see Option).
func New(opts ...Option) (Strmsync, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if options.upstreamURL == "" {
		return nil, errors.NewConfigError("upstream", "upstream URL is required", nil)
	}
	if options.token == "" {
		return nil, errors.NewConfigError("upstream", "upstream token is required", errors.ErrTokenRequired)
	}

	transportClient := transport.New(&transport.QueryAuth{Param: constants.CredentialParam}, options.token)
	if options.httpClient != nil {
		transportClient = transportClient.WithHTTPClient(options.httpClient)
	}

	srcs := sources.Build(options.upstreamURL, options.libraries)
	runner := reconcile.NewRunner(options.mediaRoot, srcs, sources.NewFetcherWithClient(transportClient))

	return &client{
		options: options,
		runner:  runner,
		stopCh:  make(chan struct{}),
	}, nil
}

// Run executes one reconciliation pass.
func (c *client) Run(ctx context.Context) (*reconcile.Report, error) {
	if !c.inProgress.CompareAndSwap(false, true) {
		return nil, errors.ErrRunInProgress
	}
	defer c.inProgress.Store(false)

	if c.options.logger != nil {
		ctx = logging.WithLogger(ctx, c.options.logger)
	}

	return c.runner.Run(ctx), nil
}
