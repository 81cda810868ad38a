// Package api provides an HTTP client for the CarFinder REST backend.
//
// # Overview
//
// This package defines the API client for the vehicle inventory backend. It
// handles HTTP communication, JSON serialization, request authentication, and
// the translation between UI field names and wire field names.
//
// # Architecture
//
// The package is split into three files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: UI-facing Vehicle plus wire mirrors of the backend schema
//   - errors.go: StatusError and classification helpers
//
// # API Endpoints
//
// The client covers the full CRUD surface plus identity lookup:
//
//   - GET /cars: List all vehicle records (server order preserved)
//   - POST /cars: Create a vehicle, returns {message, car}
//   - PUT /cars/{id}: Update a vehicle, returns {message, car}
//   - DELETE /cars/{id}: Remove a vehicle, returns {message}
//   - GET /auth/me: Username and roles of the authenticated user
//
// # Authentication
//
// Every request carries "Authorization: Basic <token>" where the token comes
// from the injected TokenSource (the credential store). The client never
// decodes or derives tokens itself; a 401 response is surfaced as a
// StatusError for the session controller to act on.
//
// # Field Translation
//
// The backend spells the submodel field "subModel" while every UI surface
// uses "submodel". This package is the single translation point:
//
//   - Outbound payloads: Vehicle.Submodel → wire "subModel"
//   - Inbound records: wire "subModel" → Vehicle.Submodel
//   - 400 error payloads: field key "subModel" → "submodel"
//
// No other package may reference the wire spelling. This rule exists because
// ad hoc translation at call sites caused silent data loss in earlier
// iterations of the product.
//
// # Error Handling
//
// The client distinguishes two failure families:
//
//   - No response received (connection refused, timeout, DNS failure):
//     a wrapped transport error, IsNoResponse(err) == true
//   - HTTP error response: a *StatusError carrying the status code, the
//     backend message, and any per-field validation errors
//
// Classification helpers (IsUnauthorized, IsConflict, IsNotFound,
// FieldErrors, ErrorMessage) keep status-code checks out of calling code.
//
// # Price Coercion
//
// The backend stores price as a decimal; depending on the deployment it has
// been observed on the wire both as a JSON number and as a quoted string.
// wirePrice accepts either and the client always hands callers a float64.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use. The underlying http.Client
// handles connection pooling and concurrent requests internally.
package api
