// Package cli provides the interactive animal sighting command-line client.
//
// It wires configuration, the API services and an interactive REPL. Typical
// flow: prompt for credentials when no session is held, then execute user
// commands until exit.
//
// Key features:
//   - Register / Login
//   - List sightings, remembering the listing for "show #n"
//   - Show a sighting with its photo, optionally saved to disk
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. See App and runREPL for details.
package cli
