package sources

import (
	"context"
	stderrors "errors"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	"github.com/strmsync/strmsync/internal/transport"
	"github.com/strmsync/strmsync/pkg/constants"
	"github.com/strmsync/strmsync/pkg/errors"
	"github.com/strmsync/strmsync/pkg/logging"
)

// Fetcher retrieves mapping documents from upstream sources.
type Fetcher struct {
	client *transport.Client
}

// NewFetcher creates a fetcher that authenticates with the given token as a
// query parameter.
func NewFetcher(token string) *Fetcher {
	return &Fetcher{
		client: transport.New(&transport.QueryAuth{Param: constants.CredentialParam}, token),
	}
}

// NewFetcherWithClient creates a fetcher around an existing transport client.
func NewFetcherWithClient(client *transport.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch retrieves and decodes the mapping of a single source. Transient
// failures (transport errors, 5xx) are retried with bounded exponential
// backoff; 4xx statuses and malformed bodies are permanent.
func (f *Fetcher) Fetch(ctx context.Context, src Source) (map[string]string, error) {
	var mapping map[string]string

	operation := func() error {
		resp, err := f.client.Get(ctx, src.URL)
		if err != nil {
			if errors.IsValidationError(err) {
				return backoff.Permanent(err)
			}
			return err
		}

		mapping, err = transport.DecodeMapping(resp, src.Name)
		if err != nil {
			var apiErr *errors.APIError
			if stderrors.As(err, &apiErr) && apiErr.StatusCode >= 500 {
				return err
			}
			return backoff.Permanent(err)
		}
		return nil
	}

	policy := backoff.WithContext(retryPolicy(), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, errors.WrapFetch(src.Name, src.URL, err)
	}

	return mapping, nil
}

// FetchAll fetches every source concurrently and returns one Result per
// source in the configured order, regardless of completion order. A source
// failure never fails the call; it is recorded on its Result slot.
func (f *Fetcher) FetchAll(ctx context.Context, srcs []Source) []Result {
	results := make([]Result, len(srcs))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range srcs {
		i, src := i, src
		results[i].Source = src
		g.Go(func() error {
			mapping, err := f.Fetch(gctx, src)
			if err != nil {
				logging.Ctx(ctx).Error().
					Err(err).
					Str("source", src.Name).
					Msg("Source fetch failed")
				results[i].Err = err
				return nil
			}
			results[i].Mapping = mapping
			logging.Ctx(ctx).Debug().
				Str("source", src.Name).
				Int("entries", len(mapping)).
				Msg("Source fetch complete")
			return nil
		})
	}

	// Goroutines record failures instead of returning them.
	_ = g.Wait()

	return results
}

// retryPolicy returns the backoff policy for transient fetch failures.
// Variable so tests can substitute a zero-interval policy.
var retryPolicy = func() backoff.BackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = constants.RetryBackoff
	policy.MaxInterval = constants.MaxRetryBackoff
	return backoff.WithMaxRetries(policy, constants.MaxFetchRetries)
}
