// internal/intake/relay/models.go
package relay

// ErrMsgSubmitFailed is the only error text the relay surfaces to callers.
// Upstream failure detail stays in the logs.
const ErrMsgSubmitFailed = "Failed to submit application"
