// Package session decides whether the client is signed in.
//
// The only persisted state is a single bearer credential held by a
// [CredentialStore]. Everything else (validity, the decoded [models.Identity],
// the route a screen request resolves to) is derived from it on every call
// and never cached, so observers can not drift from the stored value.
//
// A [Gate] owns the store and an observer list. Every mutation of the
// credential (sign-in, sign-out, purge of an expired or malformed credential)
// is followed by a synchronous broadcast to the observers in registration
// order. A [Router] maps requested screen paths through the gate.
package session
