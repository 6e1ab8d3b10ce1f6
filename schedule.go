package strmsync

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/strmsync/strmsync/pkg/constants"
	"github.com/strmsync/strmsync/pkg/errors"
	"github.com/strmsync/strmsync/pkg/logging"
)

// ScheduleOn begins periodic reconciliation at the configured interval.
// A trigger that fires while the previous pass is still running is skipped
// and logged, never queued or overlapped.
func (c *client) ScheduleOn() error {
	if c.options.interval <= 0 {
		return &errors.ValidationError{
			Field:   "interval",
			Value:   c.options.interval,
			Message: "schedule interval must be positive",
		}
	}

	// Stop any existing schedule to prevent ticker leaks
	if err := c.ScheduleOff(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Recreate stopCh since it was closed in ScheduleOff
	c.stopCh = make(chan struct{})
	c.ticker = time.NewTicker(c.options.interval)

	ctx, cancel := context.WithCancel(context.Background())
	c.cancelFn = cancel
	if c.options.logger != nil {
		ctx = logging.WithLogger(ctx, c.options.logger)
	}

	go c.scheduleLoop(ctx, c.ticker, c.stopCh)

	return nil
}

// ScheduleOff stops periodic reconciliation.
func (c *client) ScheduleOff() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	if c.cancelFn != nil {
		c.cancelFn()
		c.cancelFn = nil
	}
	select {
	case <-c.stopCh:
		// Already closed
	default:
		close(c.stopCh)
	}
	return nil
}

// scheduleLoop runs passes on ticks until stopped.
func (c *client) scheduleLoop(parentCtx context.Context, ticker *time.Ticker, stopCh chan struct{}) {
	for {
		select {
		case <-ticker.C:
			runCtx, cancel := context.WithTimeout(parentCtx, constants.RunTimeout)
			_, err := c.Run(runCtx)
			cancel()

			switch {
			case err == nil:
			case stderrors.Is(err, errors.ErrRunInProgress):
				logging.Ctx(parentCtx).Warn().Msg("Previous pass still running, skipping trigger")
			case stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded):
				return
			default:
				logging.Ctx(parentCtx).Error().Err(err).Msg("Scheduled pass failed")
			}
		case <-parentCtx.Done():
			return
		case <-stopCh:
			return
		}
	}
}
