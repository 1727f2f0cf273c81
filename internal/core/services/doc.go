// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The SessionManager is the single writer for session state. Every
// other service reads the session through it and observes teardown
// through its hooks.
package services
