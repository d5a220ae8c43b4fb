package bridge

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/passkeyhq/delegate-relay/internal/client/httpx"
	"github.com/passkeyhq/delegate-relay/internal/signing"
	"github.com/passkeyhq/delegate-relay/internal/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ signing.SecondaryEndpoint = (*Client)(nil)

// Client talks to a companion wallet's local bridge over HTTP. It implements
// the secondary-endpoint probe surface consumed by signing-target
// resolution: liveness, credential presence, and the active login session.
type Client struct {
	http *httpx.Client
	log  *zap.Logger
}

// Config configures a bridge Client.
type Config struct {
	// BaseURL of the wallet bridge, e.g. http://127.0.0.1:18420.
	BaseURL string
	// RequestTimeout bounds non-ping calls. Zero means 5s.
	RequestTimeout time.Duration
	// Logger defaults to a nop logger.
	Logger *zap.Logger
}

// New creates a bridge client. Probe calls retry transient failures with
// backoff; a bridge momentarily restarting should not look permanently dead.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("wallet bridge base URL is required")
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		http: httpx.New(
			httpx.WithBaseURL(cfg.BaseURL),
			httpx.WithTimeout(timeout),
			httpx.WithHeader("X-Correlation-ID", uuid.New().String()),
			httpx.WithRetryPolicy(httpx.DefaultRetryPolicy()),
		),
		log: log,
	}, nil
}

// Ping probes bridge liveness within the given soft timeout.
func (c *Client) Ping(ctx context.Context, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := c.http.Get(ctx, "/healthz")
	if err != nil {
		return errors.Wrap(err, "wallet bridge unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("wallet bridge unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

type credentialStatus struct {
	Present bool `json:"present"`
}

// HasCredential reports whether the bridge holds a usable passkey credential
// for the account.
func (c *Client) HasCredential(ctx context.Context, accountID string) (bool, error) {
	if accountID == "" {
		return false, errors.New("account id is required")
	}

	resp, err := c.http.Get(ctx, "/v1/credentials/"+url.PathEscape(accountID))
	if err != nil {
		return false, errors.Wrap(err, "credential check failed")
	}
	if resp.StatusCode == http.StatusNotFound {
		defer resp.Body.Close()
		return false, nil
	}

	var status credentialStatus
	if err := c.http.DecodeJSON(resp, &status); err != nil {
		return false, errors.Wrap(err, "credential check failed")
	}
	return status.Present, nil
}

// GetSession returns the bridge's active login session. accountID may be
// empty, in which case whichever session is active comes back.
func (c *Client) GetSession(ctx context.Context, accountID string) (*types.LoginSession, error) {
	path := "/v1/session"
	if accountID != "" {
		path = fmt.Sprintf("/v1/session?accountId=%s", url.QueryEscape(accountID))
	}

	resp, err := c.http.Get(ctx, path)
	if err != nil {
		return nil, errors.Wrap(err, "session lookup failed")
	}

	var session types.LoginSession
	if err := c.http.DecodeJSON(resp, &session); err != nil {
		return nil, errors.Wrap(err, "session lookup failed")
	}

	c.log.Debug("wallet bridge session",
		zap.String("account_id", session.NearAccountID),
		zap.Bool("logged_in", session.LoggedIn))
	return &session, nil
}
