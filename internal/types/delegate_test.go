package types_test

import (
	"encoding/json"
	"testing"

	"github.com/passkeyhq/delegate-relay/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestSignerMode_RequiresTrustedHost(t *testing.T) {
	assert.True(t, types.SignerModeThreshold.RequiresTrustedHost())
	assert.False(t, types.SignerModeLocal.RequiresTrustedHost())
	assert.False(t, types.SignerMode("unknown").RequiresTrustedHost())
}

func TestLoginSession_HasUserData(t *testing.T) {
	tests := []struct {
		name    string
		session *types.LoginSession
		want    bool
	}{
		{
			name:    "nil session",
			session: nil,
			want:    false,
		},
		{
			name:    "no user data",
			session: &types.LoginSession{NearAccountID: "alice.testnet", LoggedIn: true},
			want:    false,
		},
		{
			name: "json null is not materialized",
			session: &types.LoginSession{
				NearAccountID: "alice.testnet",
				LoggedIn:      true,
				UserData:      json.RawMessage(`null`),
			},
			want: false,
		},
		{
			name: "materialized user data",
			session: &types.LoginSession{
				NearAccountID: "alice.testnet",
				LoggedIn:      true,
				UserData:      json.RawMessage(`{"userId":"u-1"}`),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.HasUserData())
		})
	}
}
