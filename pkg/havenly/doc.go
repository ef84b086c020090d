// Package havenly is a client SDK for the Havenly API.
//
// It owns the client side of the session lifecycle: a token store, a session
// state machine that verifies the stored token against the server exactly once
// at startup, route guards that turn session state into navigation decisions,
// and per-resource callers that normalise every server response into a single
// Result shape. Callers branch on Result.Success, never on raw HTTP status,
// and no method returns an error for an API-level failure.
package havenly
