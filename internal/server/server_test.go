package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/passkeyhq/delegate-relay/internal/config"
	"github.com/passkeyhq/delegate-relay/internal/events"
	"github.com/passkeyhq/delegate-relay/internal/logger"
	"github.com/passkeyhq/delegate-relay/internal/server"
	"github.com/passkeyhq/delegate-relay/internal/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("test")
}

type fakeSubmitter struct {
	submit func(ctx context.Context, req *types.RelayDelegateRequest, hooks *events.Hooks) (*types.RelayDelegateResponse, error)
}

func (f *fakeSubmitter) Submit(ctx context.Context, req *types.RelayDelegateRequest, hooks *events.Hooks) (*types.RelayDelegateResponse, error) {
	return f.submit(ctx, req, hooks)
}

func newGateway(submit func(ctx context.Context, req *types.RelayDelegateRequest, hooks *events.Hooks) (*types.RelayDelegateResponse, error)) *server.Server {
	return server.New(&config.Config{Stage: "test", Port: "0"}, &fakeSubmitter{submit: submit})
}

const validRelayBody = `{"hash":"6a7b8c","signedDelegate":{"delegateAction":{"senderId":"alice.testnet"},"signature":"ed25519:abcdef"}}`

func TestHealth(t *testing.T) {
	gateway := newGateway(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	gateway.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRelayDelegate_StreamsEventsAndResult(t *testing.T) {
	gateway := newGateway(func(_ context.Context, req *types.RelayDelegateRequest, hooks *events.Hooks) (*types.RelayDelegateResponse, error) {
		assert.Equal(t, "6a7b8c", req.Hash)
		hooks.EmitProgress(events.StepBroadcasting, events.PhaseBroadcasting, "Broadcasting delegate action via relayer", nil)
		return &types.RelayDelegateResponse{Ok: true, RelayerTxHash: "tx-123"}, nil
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/relay", strings.NewReader(validRelayBody))
	req.Header.Set("Content-Type", "application/json")
	gateway.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	body := w.Body.String()
	actionIdx := strings.Index(body, "event:action")
	resultIdx := strings.Index(body, "event:result")
	require.GreaterOrEqual(t, actionIdx, 0, "expected an action event in the stream")
	require.Greater(t, resultIdx, actionIdx, "result must come after lifecycle events")
	assert.Contains(t, body, "BROADCASTING")
	assert.Contains(t, body, "tx-123")
}

func TestRelayDelegate_TransportFailure(t *testing.T) {
	gateway := newGateway(func(context.Context, *types.RelayDelegateRequest, *events.Hooks) (*types.RelayDelegateResponse, error) {
		return nil, errors.New("relayer request failed: connection refused")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/relay", strings.NewReader(validRelayBody))
	req.Header.Set("Content-Type", "application/json")
	gateway.Handler().ServeHTTP(w, req)

	body := w.Body.String()
	assert.Contains(t, body, "event:result")
	assert.Contains(t, body, `"ok":false`)
	assert.Contains(t, body, "connection refused")
}

func TestRelayDelegate_RelayerRejection(t *testing.T) {
	gateway := newGateway(func(_ context.Context, _ *types.RelayDelegateRequest, hooks *events.Hooks) (*types.RelayDelegateResponse, error) {
		hooks.EmitFailure(errors.New("Relayer HTTP 500"))
		return &types.RelayDelegateResponse{Ok: false, Error: "Relayer HTTP 500"}, nil
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/relay", strings.NewReader(validRelayBody))
	req.Header.Set("Content-Type", "application/json")
	gateway.Handler().ServeHTTP(w, req)

	body := w.Body.String()
	assert.Contains(t, body, "ACTION_ERROR")
	assert.Contains(t, body, "Relayer HTTP 500")
}

func TestRelayDelegate_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `not-json`},
		{name: "missing hash", body: `{"signedDelegate":{"delegateAction":{},"signature":"sig"}}`},
		{name: "missing signed delegate", body: `{"hash":"6a7b8c"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := newGateway(func(context.Context, *types.RelayDelegateRequest, *events.Hooks) (*types.RelayDelegateResponse, error) {
				t.Fatal("submitter must not be called for an invalid request")
				return nil, nil
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/relay", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			gateway.Handler().ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "invalid relay request")
		})
	}
}

func TestCorrelationIDEchoed(t *testing.T) {
	gateway := newGateway(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Correlation-ID", "cid-42")
	gateway.Handler().ServeHTTP(w, req)

	assert.Equal(t, "cid-42", w.Header().Get("X-Correlation-ID"))
}
