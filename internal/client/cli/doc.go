// Package cli provides the interactive Devraha command-line client.
//
// It wires configuration, the API client, the authentication store and the
// content catalogs into a REPL. On start it restores any session the API
// still recognises for either kind, then reads commands until the user
// exits.
//
// Key features:
//   - Site sections (about, philosophy, origins, quotes, faq, contact) in
//     English or Hindi
//   - Register / Login / OTP / Logout for users and admins
//   - Profile, password, two-factor and account management
//   - Email verification and password reset flows
//
// Commands that act on a session take an optional "admin" argument; without
// it they act on the user session. See App.Run and runREPL.
package cli
