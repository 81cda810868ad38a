package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/julietavg/carfind/internal/api"
)

// State is the controller's position in the login state machine.
type State int

const (
	Unauthenticated State = iota
	Verifying
	Authenticated
)

// Role is the capability level derived from the identity response.
type Role int

const (
	RoleStandard Role = iota
	RoleAdmin
)

// Session is the derived authentication state. A failed verification always
// resets to the zero Session; partial merges are not allowed.
type Session struct {
	State    State
	Role     Role
	Username string
}

// IsAdmin reports whether the session grants create/edit/delete capability.
func (s Session) IsAdmin() bool {
	return s.State == Authenticated && s.Role == RoleAdmin
}

// Credentials is the persisted credential token consumed by the controller.
type Credentials interface {
	Token() string
	Set(username, password string) error
	Clear() error
}

// Outcome is what a successful verification produced. The probe's vehicle
// list doubles as the once-per-session inventory fetch, so it is handed to
// the caller instead of being thrown away and fetched again.
type Outcome struct {
	Session  Session
	Vehicles []api.Vehicle
}

var (
	// ErrVerificationInFlight is returned when a login or resume is attempted
	// while another probe is still running. The attempt is ignored rather
	// than raced: a stale failure must never clobber a later success.
	ErrVerificationInFlight = errors.New("session: verification already in flight")

	// ErrNoStoredCredentials is returned by Resume when nothing is persisted.
	ErrNoStoredCredentials = errors.New("session: no stored credentials")
)

// Controller owns the login/logout flow and the derived Session.
type Controller struct {
	client api.Backend
	creds  Credentials
	log    *logrus.Entry

	mu      sync.Mutex
	session Session
	gen     uint64 // invalidates probes finished after a logout
}

// NewController builds a Controller around the API client and credential
// store. logger may be nil.
func NewController(client api.Backend, creds Credentials, logger *logrus.Logger) *Controller {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Controller{
		client: client,
		creds:  creds,
		log:    logger.WithField("component", "session"),
	}
}

// Current returns the session as of now.
func (c *Controller) Current() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Login stores the credential pair and verifies it against the backend.
// On success the session becomes Authenticated with the derived role; on any
// failure the stored credential is cleared and the session fully resets.
func (c *Controller) Login(ctx context.Context, username, password string) (Outcome, error) {
	gen, err := c.begin()
	if err != nil {
		return Outcome{}, err
	}
	if err := c.creds.Set(username, password); err != nil {
		return Outcome{}, c.fail(gen, fmt.Errorf("store credentials: %w", err))
	}
	return c.probe(ctx, gen)
}

// Resume verifies a previously stored credential on startup. It returns
// ErrNoStoredCredentials without touching the state machine when nothing is
// persisted.
func (c *Controller) Resume(ctx context.Context) (Outcome, error) {
	if c.creds.Token() == "" {
		return Outcome{}, ErrNoStoredCredentials
	}
	gen, err := c.begin()
	if err != nil {
		return Outcome{}, err
	}
	return c.probe(ctx, gen)
}

// Logout clears the stored credential and resets the session. It always
// succeeds.
func (c *Controller) Logout() {
	if err := c.creds.Clear(); err != nil {
		c.log.WithError(err).Warn("clear credentials on logout")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.session = Session{}
}

func (c *Controller) begin() (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.State == Verifying {
		return 0, ErrVerificationInFlight
	}
	c.gen++
	c.session = Session{State: Verifying}
	return c.gen, nil
}

// probe validates the credential by listing the inventory, then derives the
// role from the identity endpoint. Both calls must succeed.
func (c *Controller) probe(ctx context.Context, gen uint64) (Outcome, error) {
	vehicles, err := c.client.ListVehicles(ctx)
	if err != nil {
		return Outcome{}, c.fail(gen, err)
	}
	identity, err := c.client.GetIdentity(ctx)
	if err != nil {
		return Outcome{}, c.fail(gen, err)
	}

	session := Session{
		State:    Authenticated,
		Role:     deriveRole(identity.Roles),
		Username: identity.Username,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		// A logout happened while the probe was in flight; drop the result.
		return Outcome{}, ErrVerificationInFlight
	}
	c.session = session
	c.log.WithFields(logrus.Fields{"username": identity.Username, "admin": session.IsAdmin()}).Info("session established")
	return Outcome{Session: session, Vehicles: vehicles}, nil
}

func (c *Controller) fail(gen uint64, err error) error {
	if clearErr := c.creds.Clear(); clearErr != nil {
		c.log.WithError(clearErr).Warn("clear credentials after failed verification")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen == gen {
		c.session = Session{}
	}
	c.log.WithError(err).Info("verification failed")
	return err
}

// deriveRole grants admin for either marker spelling. Both have been observed
// from the backend depending on how roles were seeded, so both are accepted.
func deriveRole(roles []string) Role {
	for _, role := range roles {
		if role == "ROLE_ADMIN" || role == "ADMIN" {
			return RoleAdmin
		}
	}
	return RoleStandard
}

// Message translates a verification failure into the user-facing text for
// its error class. Raw transport errors never reach a rendered message.
func Message(err error) string {
	var se *api.StatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrVerificationInFlight):
		return "Sign-in already in progress."
	case api.IsUnauthorized(err):
		return "Invalid username or password."
	case errors.As(err, &se):
		return fmt.Sprintf("Sign-in failed (HTTP %d).", se.StatusCode)
	default:
		return "Cannot reach the server. Check your connection and try again."
	}
}
