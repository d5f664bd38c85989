package session

import (
	"context"
	"strings"
)

// Screen paths known to the router.
const (
	PathSignIn = "/auth/signin"
	PathSignUp = "/auth/signup"
	PathHome   = "/"

	authPrefix = "/auth/"
)

// State is the route-gating state derived from the gate.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Validity is the part of [Gate] the router needs.
type Validity interface {
	IsSessionValid(ctx context.Context) bool
}

// Router resolves requested screen paths against the session state.
type Router struct {
	gate Validity
}

// NewRouter returns a Router over gate.
func NewRouter(gate Validity) *Router {
	return &Router{gate: gate}
}

// State evaluates the gate now.
func (r *Router) State(ctx context.Context) State {
	if r.gate.IsSessionValid(ctx) {
		return Authenticated
	}
	return Unauthenticated
}

// Resolve returns the path that should be shown for a request of path:
// sign-in for any non-auth screen while signed out, home for any auth
// screen while signed in, path itself otherwise.
func (r *Router) Resolve(ctx context.Context, path string) string {
	onAuthScreen := strings.HasPrefix(path, authPrefix)

	switch r.State(ctx) {
	case Authenticated:
		if onAuthScreen {
			return PathHome
		}
	default:
		if !onAuthScreen {
			return PathSignIn
		}
	}

	return path
}
