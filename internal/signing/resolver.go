package signing

import (
	"context"
	"time"

	"github.com/passkeyhq/delegate-relay/internal/logger"
	"github.com/passkeyhq/delegate-relay/internal/types"
	"go.uber.org/zap"
)

// Target identifies which endpoint should perform the signing operation.
type Target string

const (
	TargetPrimary   Target = "primary"
	TargetSecondary Target = "secondary"
)

// DefaultPingTimeout is the soft timeout for the secondary endpoint liveness
// probe.
const DefaultPingTimeout = 750 * time.Millisecond

// ResolveParams are the inputs to signing-target resolution.
type ResolveParams struct {
	Mode      types.SignerMode
	AccountID string

	// PrimaryAvailable reports whether the embedded wallet host is reachable.
	PrimaryAvailable bool
	// SecondaryAvailable reports whether a secondary endpoint exists at all.
	SecondaryAvailable bool
	// Secondary is the probe surface for the secondary endpoint; may be nil.
	Secondary SecondaryEndpoint

	// PingTimeout overrides DefaultPingTimeout when positive.
	PingTimeout time.Duration
}

// ResolveSigningTarget decides which endpoint performs the cryptographic
// operation. The policy is deterministic and never returns an error: any
// failure while probing the secondary endpoint is absorbed into a "not
// ready" outcome.
//
// Threshold signing must execute on the trusted embedded host whenever it is
// available and is never downgraded silently. Locally capable signing prefers
// a ready secondary endpoint; readiness means alive AND authenticated for the
// intended account, because a reachable endpoint signing under the wrong
// identity is worse than an unavailable one.
func ResolveSigningTarget(ctx context.Context, p ResolveParams) Target {
	if p.Mode.RequiresTrustedHost() {
		if p.PrimaryAvailable {
			return TargetPrimary
		}
		// Absence of both endpoints is a caller-level error; last resort.
		return TargetSecondary
	}

	if p.SecondaryAvailable && p.Secondary != nil && secondaryReady(ctx, p) {
		return TargetSecondary
	}

	if p.PrimaryAvailable {
		return TargetPrimary
	}
	return TargetSecondary
}

// secondaryReady runs the two-tier readiness check: liveness first, then
// identity. Probe errors and panics both mean "not ready"; nothing
// propagates.
func secondaryReady(ctx context.Context, p ResolveParams) (ready bool) {
	defer func() {
		if r := recover(); r != nil {
			if logger.Log != nil {
				logger.Warn("secondary endpoint probe panicked", zap.Any("panic", r))
			}
			ready = false
		}
	}()

	timeout := p.PingTimeout
	if timeout <= 0 {
		timeout = DefaultPingTimeout
	}
	if err := p.Secondary.Ping(ctx, timeout); err != nil {
		if logger.Log != nil {
			logger.Debug("secondary endpoint not alive", zap.Error(err))
		}
		return false
	}

	if p.AccountID == "" {
		return true
	}

	has, err := p.Secondary.HasCredential(ctx, p.AccountID)
	if err == nil {
		return has
	}

	// The credential-presence check itself failed; fall back to the session
	// identity heuristic rather than trusting a possibly mismatched endpoint.
	session, sessionErr := p.Secondary.GetSession(ctx, p.AccountID)
	if sessionErr != nil || session == nil {
		return false
	}
	return session.NearAccountID == p.AccountID && session.HasUserData()
}
