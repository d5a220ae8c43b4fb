package types

import "encoding/json"

// SignerMode identifies which signing scheme a wallet account was enrolled
// with. Threshold accounts must sign inside the trusted wallet host; local
// accounts can sign wherever their credential is available.
type SignerMode string

const (
	SignerModeThreshold SignerMode = "threshold-signer"
	SignerModeLocal     SignerMode = "local"
)

// RequiresTrustedHost reports whether this mode must execute on the embedded
// wallet host and can never be delegated to a secondary endpoint
// opportunistically.
func (m SignerMode) RequiresTrustedHost() bool {
	return m == SignerModeThreshold
}

// DelegateActionInput describes an unsigned delegate action. SenderID defaults
// to the resolved account identity when absent; the action payload itself is
// opaque to the signing flow and passed through to the signer untouched.
type DelegateActionInput struct {
	SenderID   string          `json:"senderId,omitempty"`
	ReceiverID string          `json:"receiverId,omitempty"`
	Actions    json.RawMessage `json:"actions,omitempty"`
}

// SignedDelegate is the signer's cryptographic output bound to a delegate
// action. Immutable once produced.
type SignedDelegate struct {
	DelegateAction json.RawMessage `json:"delegateAction"`
	Signature      string          `json:"signature"`
}

// SignDelegateActionResult is the durable record of a completed signing
// operation. It exists only when the signer returned successfully; no partial
// result is ever exposed.
type SignDelegateActionResult struct {
	Hash           string          `json:"hash"`
	SignedDelegate *SignedDelegate `json:"signedDelegate"`
	NearAccountID  string          `json:"nearAccountId"`
	Logs           []string        `json:"logs,omitempty"`
}

// RelayDelegateRequest is the wire payload posted to the relayer.
type RelayDelegateRequest struct {
	Hash           string          `json:"hash" binding:"required"`
	SignedDelegate *SignedDelegate `json:"signedDelegate" binding:"required"`
}

// RelayDelegateResponse is the normalized relayer result. Ok defaults to true
// unless the relayer explicitly signals otherwise.
type RelayDelegateResponse struct {
	Ok            bool            `json:"ok"`
	RelayerTxHash string          `json:"relayerTxHash,omitempty"`
	Status        string          `json:"status,omitempty"`
	Outcome       json.RawMessage `json:"outcome,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// LoginSession describes the active login state of a wallet endpoint.
// Read-only input to signing-target resolution.
type LoginSession struct {
	NearAccountID string          `json:"nearAccountId"`
	LoggedIn      bool            `json:"loggedIn"`
	UserData      json.RawMessage `json:"userData,omitempty"`
}

// HasUserData reports whether the session carries materialized user data.
// A session without it is not trusted for identity fallback during readiness
// checks.
func (s *LoginSession) HasUserData() bool {
	return s != nil && len(s.UserData) > 0 && string(s.UserData) != "null"
}
