package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/julietavg/carfind/internal/api"
)

// fakeCreds is an in-memory Credentials implementation.
type fakeCreds struct {
	mu     sync.Mutex
	token  string
	clears int
}

func (f *fakeCreds) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeCreds) Set(username, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = username + ":" + password
	return nil
}

func (f *fakeCreds) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
	f.clears++
	return nil
}

// fakeBackend scripts the two probe calls.
type fakeBackend struct {
	vehicles    []api.Vehicle
	listErr     error
	identity    api.Identity
	identityErr error

	listCalls int
	block     chan struct{} // when set, ListVehicles waits for a signal
}

func (f *fakeBackend) ListVehicles(ctx context.Context) ([]api.Vehicle, error) {
	f.listCalls++
	if f.block != nil {
		<-f.block
	}
	return f.vehicles, f.listErr
}

func (f *fakeBackend) GetIdentity(ctx context.Context) (api.Identity, error) {
	return f.identity, f.identityErr
}

func (f *fakeBackend) CreateVehicle(ctx context.Context, v api.Vehicle) (api.Vehicle, error) {
	return api.Vehicle{}, nil
}

func (f *fakeBackend) UpdateVehicle(ctx context.Context, id int64, v api.Vehicle) (api.Vehicle, error) {
	return api.Vehicle{}, nil
}

func (f *fakeBackend) DeleteVehicle(ctx context.Context, id int64) error { return nil }

func TestLogin_AdminRole(t *testing.T) {
	backend := &fakeBackend{
		vehicles: []api.Vehicle{{ID: 1}},
		identity: api.Identity{Username: "admin", Roles: []string{"ROLE_ADMIN"}},
	}
	creds := &fakeCreds{}
	c := NewController(backend, creds, nil)

	outcome, err := c.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if outcome.Session.State != Authenticated || !outcome.Session.IsAdmin() {
		t.Fatalf("session = %#v, want authenticated admin", outcome.Session)
	}
	if outcome.Session.Username != "admin" {
		t.Fatalf("username = %q, want admin", outcome.Session.Username)
	}
	if len(outcome.Vehicles) != 1 {
		t.Fatalf("probe vehicles = %v, want the listed inventory", outcome.Vehicles)
	}
	if creds.Token() == "" {
		t.Fatalf("credential cleared on successful login")
	}
}

func TestLogin_StandardRoleWithoutMarker(t *testing.T) {
	backend := &fakeBackend{identity: api.Identity{Username: "client", Roles: nil}}
	c := NewController(backend, &fakeCreds{}, nil)

	outcome, err := c.Login(context.Background(), "client", "cliente123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if outcome.Session.IsAdmin() {
		t.Fatalf("empty roles produced admin session")
	}
	if outcome.Session.State != Authenticated {
		t.Fatalf("state = %v, want Authenticated", outcome.Session.State)
	}
}

func TestLogin_AcceptsBothAdminSpellings(t *testing.T) {
	for _, marker := range []string{"ROLE_ADMIN", "ADMIN"} {
		backend := &fakeBackend{identity: api.Identity{Username: "x", Roles: []string{"ROLE_USER", marker}}}
		c := NewController(backend, &fakeCreds{}, nil)
		outcome, err := c.Login(context.Background(), "x", "y")
		if err != nil {
			t.Fatalf("marker %q: %v", marker, err)
		}
		if !outcome.Session.IsAdmin() {
			t.Fatalf("marker %q not recognized as admin", marker)
		}
	}
}

func TestLogin_FailureClearsCredentialAndResets(t *testing.T) {
	backend := &fakeBackend{listErr: &api.StatusError{StatusCode: 401}}
	creds := &fakeCreds{}
	c := NewController(backend, creds, nil)

	_, err := c.Login(context.Background(), "admin", "wrong")
	if err == nil {
		t.Fatalf("Login succeeded against 401 backend")
	}
	if creds.Token() != "" {
		t.Fatalf("credential survived failed verification")
	}
	if got := c.Current(); got != (Session{}) {
		t.Fatalf("session = %#v, want fully reset", got)
	}
	if Message(err) != "Invalid username or password." {
		t.Fatalf("message = %q", Message(err))
	}
}

func TestLogin_IdentityFailureAlsoFails(t *testing.T) {
	backend := &fakeBackend{identityErr: &api.StatusError{StatusCode: 500}}
	c := NewController(backend, &fakeCreds{}, nil)

	_, err := c.Login(context.Background(), "admin", "admin123")
	if err == nil {
		t.Fatalf("Login ignored identity failure")
	}
	if Message(err) != "Sign-in failed (HTTP 500)." {
		t.Fatalf("message = %q", Message(err))
	}
}

func TestLogin_NoResponseMessage(t *testing.T) {
	backend := &fakeBackend{listErr: errors.New("dial tcp: connection refused")}
	c := NewController(backend, &fakeCreds{}, nil)

	_, err := c.Login(context.Background(), "admin", "admin123")
	if Message(err) != "Cannot reach the server. Check your connection and try again." {
		t.Fatalf("message = %q", Message(err))
	}
}

func TestResume_RequiresStoredCredential(t *testing.T) {
	backend := &fakeBackend{identity: api.Identity{Username: "admin", Roles: []string{"ADMIN"}}}
	creds := &fakeCreds{}
	c := NewController(backend, creds, nil)

	if _, err := c.Resume(context.Background()); !errors.Is(err, ErrNoStoredCredentials) {
		t.Fatalf("Resume without token = %v, want ErrNoStoredCredentials", err)
	}
	if backend.listCalls != 0 {
		t.Fatalf("Resume probed without a stored credential")
	}

	_ = creds.Set("admin", "admin123")
	outcome, err := c.Resume(context.Background())
	if err != nil {
		t.Fatalf("Resume returned error: %v", err)
	}
	if !outcome.Session.IsAdmin() {
		t.Fatalf("resumed session = %#v, want admin", outcome.Session)
	}
}

func TestLogin_WhileVerifyingIsIgnored(t *testing.T) {
	backend := &fakeBackend{
		identity: api.Identity{Username: "admin", Roles: []string{"ROLE_ADMIN"}},
		block:    make(chan struct{}),
	}
	c := NewController(backend, &fakeCreds{}, nil)

	done := make(chan error, 1)
	go func() {
		_, err := c.Login(context.Background(), "admin", "admin123")
		done <- err
	}()

	// Wait until the first probe is inside ListVehicles.
	for c.Current().State != Verifying {
	}

	_, err := c.Login(context.Background(), "admin", "admin123")
	if !errors.Is(err, ErrVerificationInFlight) {
		t.Fatalf("second login = %v, want ErrVerificationInFlight", err)
	}

	close(backend.block)
	if err := <-done; err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	if got := c.Current(); got.State != Authenticated {
		t.Fatalf("final state = %v, want Authenticated", got.State)
	}
	if backend.listCalls != 1 {
		t.Fatalf("probe ran %d times, want 1", backend.listCalls)
	}
}

func TestLogout_ClearsCredentialAndDiscardsInFlightProbe(t *testing.T) {
	backend := &fakeBackend{
		identity: api.Identity{Username: "admin", Roles: []string{"ROLE_ADMIN"}},
		block:    make(chan struct{}),
	}
	creds := &fakeCreds{}
	c := NewController(backend, creds, nil)

	done := make(chan error, 1)
	go func() {
		_, err := c.Login(context.Background(), "admin", "admin123")
		done <- err
	}()
	for c.Current().State != Verifying {
	}

	c.Logout()
	if creds.Token() != "" {
		t.Fatalf("credential survived logout")
	}

	close(backend.block)
	if err := <-done; !errors.Is(err, ErrVerificationInFlight) {
		t.Fatalf("stale probe result = %v, want discarded", err)
	}
	if got := c.Current(); got != (Session{}) {
		t.Fatalf("session after logout = %#v, want zero", got)
	}
}
