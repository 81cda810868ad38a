// Package ui provides the terminal user interface for CarFinder.
//
// # Architecture Overview
//
// The UI is built on Bubble Tea: a single root Model owns all screen state,
// Update handles messages, and View renders the whole frame from scratch.
// Lipgloss supplies styling and layout; text entry uses the Bubbles
// textinput component.
//
// # Package Structure
//
//   - app.go: The root Model, message and command definitions, and Run
//   - login.go: Sign-in card and credential submission
//   - browse.go: Inventory view state, key handling, and the status line
//   - table.go: Vehicle list and detail pane rendering
//   - form.go: Add/edit car modal with keystroke sanitization
//   - confirm.go: Delete confirmation modal
//   - filters.go: Filter panel with range inputs and make/model checklists
//   - header.go: Header line and command bar
//   - help.go: Help overlay
//   - theme.go: Color themes and derived Lipgloss styles
//
// # Views and Modals
//
// Two top-level views exist: the login card and the inventory browser.
// Modals (car form, delete confirmation, filter panel, help) are flags on
// the Model; an active modal captures all keyboard input and is rendered
// centered over a blank backdrop.
//
// # Event Flow
//
//  1. Init issues a session resume probe against stored credentials
//  2. A successful probe delivers the session and the vehicle list together
//  3. Key handling mutates view state; mutations dispatch API commands
//  4. Command results return as messages carrying a sequence number
//  5. Results whose sequence no longer matches the Model are discarded
//
// The sequence guard matters after logout: a probe or save that was in
// flight when the session ended must not repopulate the screen.
//
// # Derived Rendering
//
// The displayed vehicle list is never stored. Every frame recomputes it
// from the inventory snapshot through the search, filter, sort, and
// saved-only pipeline, so list state can never drift from its inputs.
package ui
