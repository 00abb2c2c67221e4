// Package cli provides the interactive emergency15 command-line client.
//
// It wires configuration, the persistent store, the session and locale
// state machines, the backend services and a REPL. Every command belongs to
// a screen, and a command runs only when the navigation gate has mounted the
// tree containing that screen:
//
//   - auth tree:    login, register, verify, forgot, reset-password
//   - welcome:      welcome, onboard (alias skip)
//   - drawer:       report, evidence, history, profile, edit, delete-account, logout
//   - always:       help, status, lang, storage, reset, exit
//
// Transitions of the session are observed through Subscribe, and the new
// route is announced when the gate selects a different tree.
package cli
