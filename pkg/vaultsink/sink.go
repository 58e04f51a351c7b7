// pkg/vaultsink/sink.go

// Package vaultsink writes a chosen candidate into a HashiCorp Vault KV v2 secret.
package vaultsink

import (
	"context"
	"strings"
	"time"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_err"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/shared"
	cerr "github.com/cockroachdb/errors"
	"github.com/hashicorp/vault/api"
	"go.uber.org/zap"
)

// KVWriter is the slice of the Vault KV v2 API the sink needs.
type KVWriter interface {
	Put(ctx context.Context, mount, path string, data map[string]any) error
}

type vaultKV struct {
	client *api.Client
}

func (v *vaultKV) Put(ctx context.Context, mount, path string, data map[string]any) error {
	_, err := v.client.KVv2(mount).Put(ctx, path, data)
	return err
}

// NewVaultWriter builds a client from VAULT_ADDR, VAULT_TOKEN and the other
// standard Vault environment variables.
func NewVaultWriter() (KVWriter, error) {
	cfg := api.DefaultConfig()
	if cfg.Error != nil {
		return nil, pf_err.NewSystemError("failed to read Vault environment", cfg.Error)
	}

	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, pf_err.NewSystemError("failed to create Vault client", err,
			"Check VAULT_ADDR, e.g. export VAULT_ADDR=https://vault.example.com:8200")
	}
	if client.Token() == "" {
		return nil, pf_err.NewValidationError("no Vault token available", nil,
			"Export VAULT_TOKEN or run: vault login")
	}
	return &vaultKV{client: client}, nil
}

// Sink stores a single password field under a KV v2 path.
type Sink struct {
	kv    KVWriter
	field string
	log   *zap.Logger
	now   func() time.Time
}

func New(kv KVWriter, field string, log *zap.Logger) *Sink {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sink{kv: kv, field: field, log: log, now: time.Now}
}

// SplitPath turns "secret/app/db" into mount "secret" and path "app/db".
// A "data/" segment after the mount is dropped since the KV v2 client adds it.
func SplitPath(full string) (mount, path string, err error) {
	trimmed := strings.Trim(full, "/")
	mount, path, ok := strings.Cut(trimmed, "/")
	path = strings.TrimPrefix(path, "data/")
	if !ok || mount == "" || path == "" {
		return "", "", pf_err.NewValidationError("invalid Vault path "+full, nil,
			"Use <mount>/<path>, for example: secret/myapp/admin")
	}
	return mount, path, nil
}

// Store writes password and returns the "mount/path" it was written to.
func (s *Sink) Store(ctx context.Context, fullPath, password string) (string, error) {
	mount, path, err := SplitPath(fullPath)
	if err != nil {
		return "", err
	}

	data := map[string]any{
		s.field:        password,
		"generated_by": shared.AppID,
		"generated_at": s.now().UTC().Format(time.RFC3339),
	}

	s.log.Info("Writing candidate to Vault",
		zap.String("mount", mount),
		zap.String("path", path),
		zap.String("field", s.field))

	if err := s.kv.Put(ctx, mount, path, data); err != nil {
		s.log.Error("Failed to write candidate to Vault",
			zap.String("mount", mount),
			zap.String("path", path),
			zap.Error(err))
		return "", pf_err.NewSystemError("failed to store password in Vault", cerr.Wrapf(err, "write %s/%s", mount, path),
			"Ensure a KV v2 engine is enabled at '"+mount+"/': vault secrets enable -path="+mount+" kv-v2",
			"Check the token has write permission on "+mount+"/data/"+path,
			"Verify Vault is unsealed: vault status")
	}

	s.log.Info("Candidate stored in Vault", zap.String("mount", mount), zap.String("path", path))
	return mount + "/" + path, nil
}
