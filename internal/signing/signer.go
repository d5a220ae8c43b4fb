package signing

import (
	"context"
	"time"

	"github.com/passkeyhq/delegate-relay/internal/events"
	"github.com/passkeyhq/delegate-relay/internal/types"
)

// RPCCall carries the routing context the signer needs to build and hash the
// delegate action.
type RPCCall struct {
	ContractID string
	RPCURL     string
	AccountID  string
}

// SignResult is the raw output of the signer capability.
type SignResult struct {
	Hash           string
	SignedDelegate *types.SignedDelegate
	Logs           []string
}

// Signer is the opaque cryptographic capability that produces a signed
// delegate action. Implementations may prompt the user for a platform
// credential and may emit their own sub-events through onEvent; those pass
// through the orchestration unmodified.
type Signer interface {
	SignDelegate(
		ctx context.Context,
		delegate *types.DelegateActionInput,
		rpc RPCCall,
		confirmation *events.ConfirmationConfig,
		onEvent func(events.ActionSSEEvent),
	) (*SignResult, error)
}

// SecondaryEndpoint is the probe surface of an alternative signing endpoint,
// such as a companion wallet extension reachable over a local bridge.
type SecondaryEndpoint interface {
	// Ping probes liveness within the given soft timeout.
	Ping(ctx context.Context, timeout time.Duration) error
	// HasCredential reports whether the endpoint holds a usable credential
	// for the account.
	HasCredential(ctx context.Context, accountID string) (bool, error)
	// GetSession returns the endpoint's active login session, if any.
	GetSession(ctx context.Context, accountID string) (*types.LoginSession, error)
}
