package config

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVaultProvider(t *testing.T) {
	tests := map[string]struct {
		server     string
		token      string
		mountPath  string
		secretPath string
		expectErr  string
	}{
		"valid": {
			server: "http://localhost:8200", token: "root", mountPath: "secret", secretPath: "smartread",
		},
		"missing-server": {
			token: "root", mountPath: "secret", secretPath: "smartread", expectErr: "server is required",
		},
		"unset-token": {
			server: "http://localhost:8200", token: "-", mountPath: "secret", secretPath: "smartread", expectErr: "token is required",
		},
		"missing-mount-path": {
			server: "http://localhost:8200", token: "root", secretPath: "smartread", expectErr: "mountPath is required",
		},
		"missing-secret-path": {
			server: "http://localhost:8200", token: "root", mountPath: "secret", expectErr: "secretPath is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewVaultProvider(tt.server, tt.token, tt.mountPath, tt.secretPath, time.Minute)
			if tt.expectErr != "" {
				assert.EqualError(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func newVaultServer(t *testing.T, requests *atomic.Int32) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.URL.Path != "/v1/secret/data/smartread" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"data":{"LLM_MODEL_TOKEN":"s3cr3t","DB_PORT":5432,"LLM_ALLOW_MODEL_PULL":true,"MODELS":{"summarizer":"ai/gemma3"}},"metadata":{"version":1}}}`)) //nolint:errcheck
	}))
	t.Cleanup(server.Close)
	return server
}

func TestVaultProvider_Get(t *testing.T) {
	var requests atomic.Int32
	server := newVaultServer(t, &requests)

	vp, err := NewVaultProvider(server.URL, "root", "secret", "smartread", time.Minute)
	require.NoError(t, err)

	tests := map[string]struct {
		key       string
		expected  string
		expectErr bool
	}{
		"string-value": {key: "LLM_MODEL_TOKEN", expected: "s3cr3t"},
		"number-value": {key: "DB_PORT", expected: "5432"},
		"bool-value":   {key: "LLM_ALLOW_MODEL_PULL", expected: "true"},
		"missing-key":  {key: "DB_PASS", expectErr: true},
		"nested-value": {key: "MODELS", expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := vp.Get(context.Background(), tt.key)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	assert.Equal(t, int32(1), requests.Load())
}

func TestVaultProvider_Get_CacheExpires(t *testing.T) {
	var requests atomic.Int32
	server := newVaultServer(t, &requests)

	vp, err := NewVaultProvider(server.URL, "root", "secret", "smartread", time.Minute)
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	vp.now = func() time.Time { return now }

	_, err = vp.Get(context.Background(), "DB_PORT")
	require.NoError(t, err)
	_, err = vp.Get(context.Background(), "DB_PORT")
	require.NoError(t, err)
	assert.Equal(t, int32(1), requests.Load())

	now = now.Add(2 * time.Minute)
	_, err = vp.Get(context.Background(), "DB_PORT")
	require.NoError(t, err)
	assert.Equal(t, int32(2), requests.Load())
}

func TestVaultProvider_Get_SecretNotFound(t *testing.T) {
	var requests atomic.Int32
	server := newVaultServer(t, &requests)

	vp, err := NewVaultProvider(server.URL, "root", "secret", "other", 0)
	require.NoError(t, err)

	_, err = vp.Get(context.Background(), "DB_PORT")
	assert.Error(t, err)
}

func TestInitVaultProvider_Initialize_WithoutVault(t *testing.T) {
	init := InitVaultProvider{Logger: log.New(io.Discard, "", 0), Server: "-"}
	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)
}

func TestInitVaultProvider_Initialize_InvalidSettings(t *testing.T) {
	init := InitVaultProvider{Logger: log.New(io.Discard, "", 0), Server: "http://localhost:8200", Token: "-"}
	_, err := init.Initialize(context.Background())
	assert.ErrorContains(t, err, "failed to initialize Vault provider")
}
