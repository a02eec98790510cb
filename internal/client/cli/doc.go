// Package cli provides the interactive credit-transfer command-line client.
//
// It wires configuration, durable session storage, the REST client, the
// session gate and the review engine into a REPL. Typical flow: restore the
// stored session (or log in), land on the dashboard for the user's role,
// review pending requests, record decisions locally and save the changed
// ones.
//
// Key features:
//   - Login / Logout / Register
//   - Pending list, request detail, per-item decisions, course comparison
//   - Save with partial-failure reporting, results view, history
//   - PDF report download
//   - Student notifications and own requests
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
