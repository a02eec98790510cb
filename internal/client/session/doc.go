// Package session holds the client's authentication state.
//
// A Gate moves between two states. It starts Unauthenticated, becomes
// Authenticated after SignIn (or after Init finds a usable stored credential)
// and returns to Unauthenticated on SignOut or when the stored credential
// cannot be decoded. The credential is persisted under a single storage key;
// the Identity is always re-derived from the access token and never stored.
//
// Authorize guards protected views. By default it only checks that a session
// exists; per-view role checks are applied when the gate is constructed with
// WithRoleEnforcement(true).
package session
