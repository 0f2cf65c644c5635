package report

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Atlegapeople/exec-wellness-sub003/internal/domain/records"
)

// Resolver fetches the latest record of every registered clinical domain
// for one employee. Fetches fan out concurrently and join before assembly;
// a fetch that errors or times out resolves to "no record for this domain"
// so that sparse data still yields a complete report.
type Resolver struct {
	store   records.Store
	timeout time.Duration
	logger  zerolog.Logger
}

func NewResolver(store records.Store, timeout time.Duration, logger zerolog.Logger) *Resolver {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Resolver{store: store, timeout: timeout, logger: logger}
}

// Resolve returns a map keyed by domain name. Absent domains are simply not
// in the map. The only error returned is cancellation of the parent
// context, which also cancels every in-flight fetch.
func (r *Resolver) Resolve(ctx context.Context, employeeID uuid.UUID) (map[string]*records.Record, error) {
	g, gctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	resolved := make(map[string]*records.Record, len(records.Domains()))

	for _, domain := range records.Domains() {
		domain := domain
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(gctx, r.timeout)
			defer cancel()

			rec, err := r.store.Latest(fctx, domain, employeeID)
			if err != nil {
				// Absorbed: a failed or slow domain defaults its
				// section rather than failing the report.
				r.logger.Warn().
					Err(err).
					Str("domain", domain).
					Str("employee_id", employeeID.String()).
					Msg("domain fetch failed, defaulting section")
				return nil
			}
			if rec == nil {
				return nil
			}

			mu.Lock()
			resolved[domain] = rec
			mu.Unlock()
			return nil
		})
	}

	// Goroutines never return errors, so Wait only joins.
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return resolved, nil
}
