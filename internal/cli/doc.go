// Package cli turns the turtlego command line into an app.Config. It owns
// the usage text and flag validation, and reports bad invocations as an
// ExitError carrying the process exit code.
package cli
