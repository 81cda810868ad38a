// Package form implements vehicle form input handling: keystroke
// sanitization, submit-time validation, and mapping of server-side
// validation failures back onto the same field set.
//
// # Sanitization vs Validation
//
// The two are deliberately separate:
//
//   - Sanitizers change the value as the user types (VIN forced uppercase
//     with I/O/Q stripped, mileage digits only, price decimal only) and are
//     idempotent.
//   - Validate only flags; it never rewrites input. It runs synchronously on
//     submit and produces a field→message map. A non-empty map aborts the
//     submission before any network call.
//
// # Ruleset
//
// The strictest ruleset observed across the product's drafts is canonical:
// every text field required, year in [1930, 2026], price in [5000, 350000]
// inclusive, mileage non-negative, transmission limited to Automatic/Manual,
// image required and http(s), VIN free of I/O/Q. The year ceiling is the
// backend's fixed constant, not "current year + 1".
//
// # Server Errors
//
// MapServerError folds a failed save into the same shape client validation
// uses: a 400's per-field payload merges into the field map (already in UI
// spelling, courtesy of the API client), a 409 becomes the duplicate-VIN
// banner, anything else becomes a generic banner that includes the HTTP
// status for diagnosability. Field errors clear one at a time as the user
// edits the offending field; that behavior lives in the UI form model.
package form
