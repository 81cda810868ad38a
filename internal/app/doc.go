// Package app provides the orchestration layer for the CarFinder client.
//
// # Overview
//
// This package wires together configuration, logging, stored credentials,
// preferences, favorites, the API client, the session controller, and the
// UI. It is the composition root; every dependency is constructed here and
// handed to ui.Run.
//
// # Architecture
//
// Run follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/carfind/config.toml, .env, and
//     environment variables, then apply command-line overrides
//  2. Open the log file under the configured log directory
//  3. Load stored credentials, preferences, and saved cars (all tolerate
//     missing or corrupt files by falling back to defaults)
//  4. Build the API client against the configured backend base URL
//  5. Create the session controller around the client and credentials
//  6. Start the TUI and block until the user quits or the context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()            Resolve backend settings
//	       ├─────> logging.New()            Open the log file
//	       ├─────> creds.Load()             Stored auth token, if any
//	       ├─────> prefs.Load()             Theme and sort preference
//	       ├─────> favorites.Load()         Saved car IDs
//	       ├─────> api.NewClient()          HTTP client with Basic auth
//	       ├─────> session.NewController()  Login/resume/logout machine
//	       └─────> ui.Run()                 Start TUI (blocks)
//
// # Error Handling
//
// Only two failures are fatal: an unparsable config file and an invalid
// backend base URL. Everything else degrades: a missing credentials file
// just means the user signs in manually, missing preferences mean defaults,
// and an unwritable log directory means log output is discarded.
//
// There is no background refresh. The inventory is fetched once per
// session, by the same request that verifies the credentials, and all
// subsequent changes flow through the user's own create, update, and
// delete actions.
package app
