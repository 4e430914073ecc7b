// Package cli defines the imageboost command line. Without a subcommand it
// opens the desktop window; the subcommands drive the same services
// headlessly against the backend.
package cli
