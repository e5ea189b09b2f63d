// Package jobhub implements the authentication and session core of a
// job-marketplace backend: JWT issuance, the active-session ledger, and
// the HTTP guards the rest of the API mounts in front of its routes.
//
// Session model:
//   - Every sign-in mints a token and records it in the active_tokens
//     ledger. A token is honored only while its ledger row exists, so
//     logging out or deleting the account invalidates tokens that are
//     still cryptographically valid.
//   - The guard checks signature, then ledger membership, then expiry.
//     A revoked token reports as revoked even when it already expired.
//
// Role gating:
//   - Routes declare an allow-list of roles via RequireRoles. An empty
//     list admits any authenticated identity; role names are compared
//     exactly against the role claim embedded at issue time.
package jobhub
