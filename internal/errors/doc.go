// Package errors provides error handling conventions for the skillkit CLI.
//
// It re-exports the wrapping, detail and hint helpers from
// github.com/cockroachdb/errors so most packages need a single errors
// import, and adds an ExitError type plus exit code constants for the
// command layer.
//
// # Exit Codes
//
// The package defines standard exit codes for CLI applications:
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, network, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports error unwrapping via [Unwrap] and [As]:
//
//	err := skerrors.NewUserError(cause, "Check your config file")
//	var exitErr *skerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
