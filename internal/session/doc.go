// Package session owns the login/logout flow and the derived session state.
//
// # State Machine
//
// The controller moves through three states:
//
//	Unauthenticated ──login/resume──▶ Verifying ──probe ok──▶ Authenticated(role)
//	        ▲                            │
//	        └──────probe failed──────────┘
//
// Verification probes the backend with ListVehicles (does the credential
// work?) followed by GetIdentity (who is it, and with which roles?). Any
// failure clears the stored credential and resets to Unauthenticated; there
// is no partial session.
//
// An explicit Logout is valid from any state, always succeeds, and clears the
// credential synchronously.
//
// # Single Probe Discipline
//
// A login or resume attempted while a probe is in flight returns
// ErrVerificationInFlight instead of starting a second probe. Last-write-wins
// would let a stale failure clobber a later success, so concurrent probes are
// refused outright, and a probe that finishes after a logout is discarded via
// a generation counter.
//
// # Role Derivation
//
// Admin capability is granted when the identity's roles contain "ROLE_ADMIN"
// or "ADMIN". Both spellings are deliberate tolerance for backend naming
// drift, not an accident.
//
// # Error Messages
//
// Message maps a verification failure onto exactly one user-facing string per
// error class: no response, rejected credentials (401), or any other HTTP
// status. Callers render that string and nothing else.
package session
