package models

import "encoding/json"

// ActionRequest is the inbound envelope of the action protocol. Every call
// carries an action name, a protocol version, and an action-specific
// parameter object that is decoded by the handler registered for the action.
type ActionRequest struct {
	// Action is the externally visible action name (e.g. "deckNames",
	// "addNote", "sync"). Dispatch is keyed by this field.
	Action string `json:"action"`

	// Version is the protocol version the caller speaks. Echoed back in
	// informational results; requests are not rejected on mismatch.
	Version int `json:"version"`

	// Params holds the raw, action-specific parameters. Kept as
	// json.RawMessage so each handler decodes into its own shape and
	// reports malformed input as a bad request rather than a transport
	// failure.
	Params json.RawMessage `json:"params,omitempty"`

	// Key is the optional API key supplied by the caller. Checked at the
	// transport layer when the server is configured with one.
	Key string `json:"key,omitempty"`
}

// ActionResponse is the outbound envelope. Error is nil on success and
// Result is null when an error is set.
type ActionResponse struct {
	Result any     `json:"result"`
	Error  *string `json:"error"`
}

// OKResponse wraps a successful result into a response envelope.
func OKResponse(result any) ActionResponse {
	return ActionResponse{Result: result}
}

// ErrorResponse wraps a failure message into a response envelope.
// The result field stays null, matching the protocol contract.
func ErrorResponse(msg string) ActionResponse {
	return ActionResponse{Error: &msg}
}

// PermissionResult is the fixed object returned by the "requestPermission"
// action. The interactive consent step of the original graphical host is
// replaced by unconditional approval, so Permission is always "granted".
type PermissionResult struct {
	Permission    string `json:"permission"`
	RequireAPIKey bool   `json:"requireApiKey"`
	Version       int    `json:"version"`
}
