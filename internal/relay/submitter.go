package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/passkeyhq/delegate-relay/internal/client/httpx"
	"github.com/passkeyhq/delegate-relay/internal/events"
	"github.com/passkeyhq/delegate-relay/internal/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config configures a Submitter.
type Config struct {
	// RelayerURL is the full URL the signed delegate is posted to.
	RelayerURL string
	// Timeout bounds the HTTP call. Zero means 30s.
	Timeout time.Duration
	// Logger defaults to a nop logger.
	Logger *zap.Logger
}

// Submitter posts signed delegate actions to a relayer and normalizes the
// relayer's response. Relay-level failures (error status, malformed body,
// business rejection) are reported as {ok:false} values, never as errors;
// only transport failures return an error, after the failure hooks have run.
type Submitter struct {
	http *httpx.Client
	url  string
	log  *zap.Logger
}

// NewSubmitter creates a Submitter. Retries are deliberately not configured
// on the underlying client: a relayer error status is a reportable outcome
// the caller must see, not a transient condition to paper over.
func NewSubmitter(cfg Config) *Submitter {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Submitter{
		http: httpx.New(
			httpx.WithTimeout(timeout),
			httpx.WithLogger(log),
		),
		url: cfg.RelayerURL,
		log: log,
	}
}

// rawRelayResponse mirrors the relayer's wire shape before normalization.
// Historical relayer versions named the transaction hash differently, so all
// known aliases are carried.
type rawRelayResponse struct {
	Ok            *bool           `json:"ok"`
	RelayerTxHash string          `json:"relayerTxHash"`
	TransactionID string          `json:"transactionId"`
	TxHash        string          `json:"txHash"`
	Status        string          `json:"status"`
	Outcome       json.RawMessage `json:"outcome"`
	Error         string          `json:"error"`
}

// Submit posts the signed delegate to the relayer, emitting lifecycle events
// and running the hooks around the outcome. Cancel the context to abort the
// in-flight call; cancellation surfaces as a transport failure.
func (s *Submitter) Submit(ctx context.Context, req *types.RelayDelegateRequest, hooks *events.Hooks) (*types.RelayDelegateResponse, error) {
	hooks.EmitProgress(events.StepBroadcasting, events.PhaseBroadcasting, "Broadcasting delegate action via relayer", nil)

	resp, err := s.http.Post(ctx, s.url, req)
	if err != nil {
		// No response was obtained; this is fatal to the submission.
		err = errors.Wrap(err, "relayer request failed")
		hooks.FireError(err)
		hooks.EmitFailure(err)
		hooks.FireAfterCall(false, nil)
		return nil, err
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = errors.Wrap(readErr, "relayer request failed")
		hooks.FireError(err)
		hooks.EmitFailure(err)
		hooks.FireAfterCall(false, nil)
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		s.log.Warn("relayer returned error status",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)))
		return s.reject(hooks, &types.RelayDelegateResponse{
			Ok:    false,
			Error: fmt.Sprintf("Relayer HTTP %d", resp.StatusCode),
		}), nil
	}

	var raw rawRelayResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		s.log.Warn("relayer returned unparseable body", zap.Error(err))
		return s.reject(hooks, &types.RelayDelegateResponse{
			Ok:    false,
			Error: "Relayer returned non-JSON response",
		}), nil
	}

	normalized := normalizeRelayResponse(raw)
	if !normalized.Ok {
		if normalized.Error == "" {
			normalized.Error = "Relayer rejected delegate action"
		}
		return s.reject(hooks, normalized), nil
	}

	s.log.Info("delegate action relayed",
		zap.String("hash", req.Hash),
		zap.String("relayer_tx_hash", normalized.RelayerTxHash))

	hooks.EmitSuccess(events.StepRelayComplete, "Delegate action relayed", map[string]any{
		"relayerTxHash": normalized.RelayerTxHash,
	})
	hooks.FireAfterCall(true, normalized)
	return normalized, nil
}

// reject runs the failure hook sequence for a non-transport failure and hands
// the response back as a normal, inspectable outcome.
func (s *Submitter) reject(hooks *events.Hooks, resp *types.RelayDelegateResponse) *types.RelayDelegateResponse {
	err := errors.New(resp.Error)
	hooks.FireError(err)
	hooks.EmitFailure(err)
	hooks.FireAfterCall(false, nil)
	return resp
}

// normalizeRelayResponse maps the raw wire shape onto the normalized
// response. Ok defaults to true unless the relayer explicitly set it false.
func normalizeRelayResponse(raw rawRelayResponse) *types.RelayDelegateResponse {
	return &types.RelayDelegateResponse{
		Ok:            raw.Ok == nil || *raw.Ok,
		RelayerTxHash: resolveRelayerTxHash(raw),
		Status:        raw.Status,
		Outcome:       raw.Outcome,
		Error:         raw.Error,
	}
}

// resolveRelayerTxHash picks the first defined alias. The order is the
// deterministic precedence contract, evaluated first-to-last.
func resolveRelayerTxHash(raw rawRelayResponse) string {
	for _, candidate := range []string{raw.RelayerTxHash, raw.TransactionID, raw.TxHash} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}
