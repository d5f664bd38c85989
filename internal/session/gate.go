package session

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// CredentialStore is the persisted single credential slot.
// Read reports ok == false when the slot is empty.
type CredentialStore interface {
	Read(ctx context.Context) (credential string, ok bool, err error)
	Write(ctx context.Context, credential string) error
	Clear(ctx context.Context) error
}

// Option configures a [Gate].
type Option func(*Gate)

// WithDecoder replaces the default [JWTDecoder].
func WithDecoder(d Decoder) Option {
	return func(g *Gate) { g.decoder = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

type observer struct {
	fn func()
}

// Gate is the single owner of the client credential.
type Gate struct {
	store   CredentialStore
	decoder Decoder
	now     func() time.Time
	logger  *logger.Logger

	// mu serializes credential access so a check-then-clear is atomic.
	mu sync.Mutex

	obsMu     sync.Mutex
	observers []*observer
}

// NewGate builds a Gate over store.
func NewGate(store CredentialStore, logger *logger.Logger, opts ...Option) *Gate {
	g := &Gate{
		store:   store,
		decoder: JWTDecoder{},
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// IsSessionValid reports whether a present, well-formed, unexpired
// credential is stored. An expired or malformed credential is cleared and
// observers are notified. Store read errors count as absence.
func (g *Gate) IsSessionValid(ctx context.Context) bool {
	_, _, ok := g.current(ctx)
	return ok
}

// Identity returns the identity decoded from the current valid credential.
func (g *Gate) Identity(ctx context.Context) (models.Identity, bool) {
	_, identity, ok := g.current(ctx)
	return identity, ok
}

// Token returns the current valid credential for authorising requests.
func (g *Gate) Token(ctx context.Context) (string, bool) {
	credential, _, ok := g.current(ctx)
	return credential, ok
}

// SignIn stores credential and notifies observers.
func (g *Gate) SignIn(ctx context.Context, credential string) error {
	g.mu.Lock()
	err := g.store.Write(ctx, credential)
	g.mu.Unlock()

	if err != nil {
		g.logger.Err(err).Str("func", "*Gate.SignIn").Msg("failed to store credential")
		return err
	}

	g.broadcast()
	return nil
}

// SignOut clears the credential and notifies observers.
func (g *Gate) SignOut(ctx context.Context) error {
	g.mu.Lock()
	err := g.store.Clear(ctx)
	g.mu.Unlock()

	if err != nil {
		g.logger.Err(err).Str("func", "*Gate.SignOut").Msg("failed to clear credential")
		return err
	}

	g.broadcast()
	return nil
}

// Subscribe registers fn to run after every credential change. The returned
// function removes the registration; calling it more than once is a no-op.
func (g *Gate) Subscribe(fn func()) (unsubscribe func()) {
	o := &observer{fn: fn}

	g.obsMu.Lock()
	g.observers = append(g.observers, o)
	g.obsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			g.obsMu.Lock()
			defer g.obsMu.Unlock()
			for i, registered := range g.observers {
				if registered == o {
					g.observers = append(g.observers[:i:i], g.observers[i+1:]...)
					return
				}
			}
		})
	}
}

// current reads and checks the credential, purging it when it is expired
// or can not be decoded.
func (g *Gate) current(ctx context.Context) (string, models.Identity, bool) {
	g.mu.Lock()

	credential, ok, err := g.store.Read(ctx)
	if err != nil {
		g.mu.Unlock()
		g.logger.Err(err).Str("func", "*Gate.current").Msg("failed to read credential, treating as absent")
		return "", models.Identity{}, false
	}
	if !ok || credential == "" {
		g.mu.Unlock()
		return "", models.Identity{}, false
	}

	identity, err := g.decoder.Decode(credential)
	switch {
	case err != nil:
		g.logger.Debug().Err(err).Str("func", "*Gate.current").Msg("malformed credential, purging")
	case identity.Expired(g.now()):
		g.logger.Debug().Str("func", "*Gate.current").Time("expires_at", identity.ExpiresAt).Msg("credential expired, purging")
	default:
		g.mu.Unlock()
		return credential, identity, true
	}

	clearErr := g.store.Clear(ctx)
	g.mu.Unlock()

	if clearErr != nil {
		g.logger.Err(clearErr).Str("func", "*Gate.current").Msg("failed to purge credential")
		return "", models.Identity{}, false
	}

	g.broadcast()
	return "", models.Identity{}, false
}

func (g *Gate) broadcast() {
	g.obsMu.Lock()
	snapshot := make([]*observer, len(g.observers))
	copy(snapshot, g.observers)
	g.obsMu.Unlock()

	for _, o := range snapshot {
		o.fn()
	}
}
