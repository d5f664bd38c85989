// Package listing turns a post collection and the user's view criteria into
// what the post list screen renders.
//
// Every function here is pure and total: inputs are never mutated and
// there is no failure path. The screen recomputes [Apply] whenever either
// the collection or the criteria change.
package listing
