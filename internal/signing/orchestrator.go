package signing

import (
	"context"
	"strings"

	"github.com/passkeyhq/delegate-relay/internal/events"
	"github.com/passkeyhq/delegate-relay/internal/logger"
	"github.com/passkeyhq/delegate-relay/internal/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SignDelegateParams are the inputs to a delegate-action signing operation.
type SignDelegateParams struct {
	Signer    Signer
	RPC       RPCCall
	AccountID string
	Delegate  *types.DelegateActionInput
	Hooks     *events.Hooks
}

// SignDelegateAction drives the end-to-end signing flow: it normalizes the
// request, emits phase-progress events, invokes the signer capability, builds
// the immutable result and runs the lifecycle hooks.
//
// The USER_CONFIRMATION event is emitted before the signer is invoked so an
// observer driving a confirmation overlay is already in its confirming state
// when the signer triggers a platform credential prompt. That ordering is a
// correctness requirement, not cosmetic.
//
// On failure the hooks fire in fixed order — OnError, AfterCall(false),
// terminal error event — and the same error is returned to the caller.
func SignDelegateAction(ctx context.Context, p SignDelegateParams) (*types.SignDelegateActionResult, error) {
	hooks := p.Hooks

	accountID := strings.TrimSpace(p.AccountID)
	if accountID == "" {
		return nil, failSigning(hooks, errors.New("account id is required to sign a delegate action"))
	}
	if p.Signer == nil {
		return nil, failSigning(hooks, errors.New("no signer capability provided"))
	}
	if p.Delegate == nil {
		return nil, failSigning(hooks, errors.New("delegate action input is required"))
	}

	// Work on a copy; the caller's input is never mutated and the resolved
	// sender identity is always non-empty from here on.
	delegate := *p.Delegate
	if delegate.SenderID == "" {
		delegate.SenderID = accountID
	}

	hooks.EmitProgress(events.StepPreparation, events.PhasePreparation, "Preparing delegate action", nil)
	hooks.EmitProgress(events.StepUserConfirmation, events.PhaseUserConfirmation, "Awaiting user confirmation", nil)

	rpc := p.RPC
	rpc.AccountID = accountID

	signed, err := p.Signer.SignDelegate(ctx, &delegate, rpc, hooks.ConfirmationConfigOrNil(), hooks.Emit)
	if err != nil {
		return nil, failSigning(hooks, err)
	}
	if signed == nil || signed.SignedDelegate == nil {
		return nil, failSigning(hooks, errors.New("signer returned no signed delegate"))
	}

	result := &types.SignDelegateActionResult{
		Hash:           signed.Hash,
		SignedDelegate: signed.SignedDelegate,
		NearAccountID:  accountID,
		Logs:           signed.Logs,
	}

	if logger.Log != nil {
		logger.Info("delegate action signed",
			zap.String("account_id", accountID),
			zap.String("hash", result.Hash))
	}

	hooks.EmitSuccess(events.StepSigningComplete, "Delegate action signed", map[string]any{"hash": result.Hash})
	hooks.FireAfterCall(true, result)
	return result, nil
}

// failSigning runs the failure hook sequence and hands the original error
// back for the caller. Hook order is fixed so every hook observes the failure
// before the caller's code resumes.
func failSigning(hooks *events.Hooks, err error) error {
	if err == nil {
		err = errors.New("delegate action signing failed")
	}
	hooks.FireError(err)
	hooks.FireAfterCall(false, nil)
	hooks.EmitFailure(err)
	return err
}
