package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
)

const defaultExpiryCheckInterval = 30 * time.Second

// ExpiryWatcher periodically asks the session gate whether the credential
// is still valid. The gate itself purges an expired token and broadcasts,
// so the UI falls back to sign-in even when the user is idle.
type ExpiryWatcher struct {
	checker  SessionChecker
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewExpiryWatcher returns an idle watcher. A non-positive interval falls
// back to 30 seconds.
func NewExpiryWatcher(checker SessionChecker, interval time.Duration, logger *logger.Logger) *ExpiryWatcher {
	if interval <= 0 {
		interval = defaultExpiryCheckInterval
	}
	return &ExpiryWatcher{checker: checker, interval: interval, logger: logger}
}

func (w *ExpiryWatcher) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if !w.checker.IsSessionValid(jobCtx) {
					w.logger.Debug().Msg("no valid session on expiry check")
				}
			}
		}
	}()
}

func (w *ExpiryWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
