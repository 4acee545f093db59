// Package cli provides the vidkeeper command-line front-end.
//
// It wires configuration, the JSON-file catalog, and the catalog service
// into a one-shot command interface: parse a command and its flags, run
// the operation, print the result, and return the process exit code.
//
// Commands:
//   - upload / list / view / delete / search — catalog operations
//   - serve — run the form front-end (also the default without a command)
//   - -demo — reset the catalog and run a scripted walkthrough
//
// Exit codes: 0 success, 1 runtime errors (not found, storage problems),
// 2 usage and validation errors. Regular output goes to stdout, errors to
// stderr, so the output of list and view stays pipe-friendly.
//
// The run starts via App.Run(ctx, args); see App for the wiring.
package cli
