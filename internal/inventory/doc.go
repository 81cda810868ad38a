// Package inventory provides the in-session vehicle list and the display
// pipeline that derives what the UI shows.
//
// # Overview
//
// Two halves live here:
//
//   - Store: a mutex-guarded container for the vehicle list fetched when the
//     session is established. It is the single authoritative cache for the
//     session and is mutated only by explicit CRUD results.
//   - Engine: pure functions (Apply, DeriveBounds) that turn the inventory
//     plus the current query into the displayed subset and order.
//
// # Store Semantics
//
// The store is populated exactly once per authenticated session. Mutations
// come only from the responses of mutating API calls:
//
//   - Prepend: the canonical record from a successful create
//   - Replace: the canonical record from a successful update
//   - Remove: after a successful delete, or a 404 that proves the record is
//     already gone server-side
//
// On failure the store is left untouched; the UI surfaces the error instead.
// Snapshot returns a fresh copy each call; callers never hold a reference
// into the cached slice.
//
// # Display Pipeline
//
// Apply runs the fixed five-step pipeline:
//
//  1. Start from the full inventory.
//  2. Free-text query: keep records whose make, model, year, or submodel
//     contains the query, case-insensitively.
//  3. Structured Criteria: inclusive price and year ranges plus optional
//     make/model selection sets.
//  4. Stable sort by the selected SortKey.
//  5. Saved-only view: keep records whose id is in the saved set.
//
// The output is always a fresh slice. Sorting is idempotent and ties retain
// their prior relative order, which keeps the list visually steady across
// recomputations.
//
// # Derived Bounds
//
// DeriveBounds computes the selectable filter space (price range, year range,
// make and model sets) from the live inventory rather than from constants.
// When the inventory changes, the filter panel rebases onto the new bounds:
// numeric ranges snap to the new full span while make/model selections are
// preserved where they still exist (Bounds.FullRange).
package inventory
