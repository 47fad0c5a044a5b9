package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider resolves SmartRead settings (database credentials, model runner token)
// from a KV v2 secret in HashiCorp Vault. The secret is read once and kept for the
// cache TTL, so resolving many keys during startup costs a single request.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string
	ttl        time.Duration
	now        func() time.Time
	cache      *secretCache
}

type secretCache struct {
	mu        sync.Mutex
	data      map[string]any
	fetchedAt time.Time
}

// NewVaultProvider creates a new VaultProvider.
//
// The server is the Vault address, e.g. "http://localhost:8200". The mountPath is the
// KV secrets engine mount, e.g. "secret", and secretPath the secret inside it.
// A zero ttl disables caching.
func NewVaultProvider(server, token, mountPath, secretPath string, ttl time.Duration) (VaultProvider, error) {
	switch {
	case server == "":
		return VaultProvider{}, errors.New("server is required")
	case token == "" || token == "-":
		return VaultProvider{}, errors.New("token is required")
	case mountPath == "":
		return VaultProvider{}, errors.New("mountPath is required")
	case secretPath == "":
		return VaultProvider{}, errors.New("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return VaultProvider{}, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
		ttl:        ttl,
		now:        time.Now,
		cache:      &secretCache{},
	}, nil
}

// Get returns the value stored under key. Scalar values are rendered as strings;
// nested objects and lists are rejected.
func (vp VaultProvider) Get(ctx context.Context, key string) (string, error) {
	data, err := vp.secretData(ctx)
	if err != nil {
		return "", err
	}

	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number, bool, float64, int, int64:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("vault secret %s: key %s is not a scalar value", vp.secretPath, key)
	}
}

func (vp VaultProvider) secretData(ctx context.Context) (map[string]any, error) {
	vp.cache.mu.Lock()
	defer vp.cache.mu.Unlock()

	if vp.cache.data != nil && vp.ttl > 0 && vp.now().Sub(vp.cache.fetchedAt) < vp.ttl {
		return vp.cache.data, nil
	}

	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, err
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	vp.cache.data = secret.Data
	vp.cache.fetchedAt = vp.now()
	return secret.Data, nil
}

var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider composes environment variables with HashiCorp Vault. When VAULT_ADDR
// is "-" configuration comes from environment variables only.
type InitVaultProvider struct {
	Logger     *log.Logger   `resolve:""`
	Server     string        `config:"VAULT_ADDR" default:"-"`
	Token      string        `config:"VAULT_TOKEN" default:"-"`
	MountPath  string        `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string        `config:"VAULT_SECRET_PATH" default:"smartread"`
	CacheTTL   time.Duration `config:"VAULT_CACHE_TTL" default:"1m"`
}

// Initialize puts Vault behind environment variables in the global config provider.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Server == "-" {
		ivp.Logger.Println("InitVaultProvider: VAULT_ADDR not set, using environment variables only")
		return ctx, nil
	}

	vaultProvider, err := NewVaultProvider(ivp.Server, ivp.Token, ivp.MountPath, ivp.SecretPath, ivp.CacheTTL)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)
	ivp.Logger.Printf("InitVaultProvider: reading %s/%s from %s", ivp.MountPath, ivp.SecretPath, ivp.Server)

	return ctx, nil
}
