package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DANNY1169/resume-role-classifier/internal/errors"

	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vaultTestLogger(t *testing.T) *errors.Logger {
	t.Helper()
	logger, err := errors.New("debug")
	require.NoError(t, err)
	return logger
}

func TestParseVersionValue(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    int64
		wantErr bool
	}{
		{name: "int64", input: int64(7), want: 7},
		{name: "float64", input: float64(7), want: 7},
		{name: "numeric string", input: "7", want: 7},
		{name: "garbage string", input: "seven", wantErr: true},
		{name: "slice", input: []string{"7"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVersionValue(tt.input, "secret/app")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInt64(t *testing.T) {
	for _, tt := range []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "12", want: 12},
		{input: "-3", want: -3},
		{input: "0", want: 0},
		{input: "", wantErr: true},
		{input: "1.5", wantErr: true},
	} {
		got, err := parseInt64(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestApplyGeminiKeyToConfig(t *testing.T) {
	t.Run("fills empty operation keys", func(t *testing.T) {
		cfg := &Config{}
		applyGeminiKeyToConfig(cfg, "vault-key")

		assert.Equal(t, "vault-key", cfg.AI.APIKey)
		assert.Equal(t, "vault-key", cfg.AI.Embedding.APIKey)
		assert.Equal(t, "vault-key", cfg.AI.Summary.APIKey)
	})

	t.Run("keeps explicit operation key", func(t *testing.T) {
		cfg := &Config{}
		cfg.AI.Embedding.APIKey = "embedding-only"
		applyGeminiKeyToConfig(cfg, "vault-key")

		assert.Equal(t, "vault-key", cfg.AI.APIKey)
		assert.Equal(t, "embedding-only", cfg.AI.Embedding.APIKey)
		assert.Equal(t, "vault-key", cfg.AI.Summary.APIKey)
	})
}

func TestResolveVaultToken(t *testing.T) {
	logger := vaultTestLogger(t)

	t.Run("inline token wins", func(t *testing.T) {
		token, err := resolveVaultToken(VaultConfig{Token: "inline"}, logger)
		require.NoError(t, err)
		assert.Equal(t, "inline", token)
	})

	t.Run("token file is trimmed", func(t *testing.T) {
		tokenFile := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(tokenFile, []byte("\t from-file \n"), 0600))

		token, err := resolveVaultToken(VaultConfig{TokenFile: tokenFile}, logger)
		require.NoError(t, err)
		assert.Equal(t, "from-file", token)
	})

	t.Run("unreadable token file", func(t *testing.T) {
		_, err := resolveVaultToken(VaultConfig{TokenFile: filepath.Join(t.TempDir(), "missing")}, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read vault token file")
	})

	t.Run("whitespace-only token file", func(t *testing.T) {
		tokenFile := filepath.Join(t.TempDir(), "blank")
		require.NoError(t, os.WriteFile(tokenFile, []byte(" \n\n"), 0600))

		_, err := resolveVaultToken(VaultConfig{TokenFile: tokenFile}, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vault token is required")
	})

	t.Run("no token at all", func(t *testing.T) {
		_, err := resolveVaultToken(VaultConfig{}, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vault token is required")
	})
}

func TestApplyVaultSecretsDisabled(t *testing.T) {
	cfg := &Config{}
	cfg.Vault.Enabled = false

	assert.NoError(t, ApplyVaultSecrets(cfg, vaultTestLogger(t)))
}

func kvv2Secret(data map[string]any) *api.Secret {
	return &api.Secret{Data: data}
}

func TestExtractSecretData(t *testing.T) {
	vc := &VaultClient{logger: vaultTestLogger(t)}

	t.Run("unwraps the data envelope", func(t *testing.T) {
		secret := kvv2Secret(map[string]any{
			"data": map[string]any{"api_key": "abc"},
		})

		data, err := vc.extractSecretData(secret, "secret/data/rolecolor")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"api_key": "abc"}, data)
	})

	t.Run("rejects KVv1 shape", func(t *testing.T) {
		secret := kvv2Secret(map[string]any{"api_key": "abc"})

		_, err := vc.extractSecretData(secret, "secret/rolecolor")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing 'data' field")
	})

	t.Run("rejects non-map data field", func(t *testing.T) {
		secret := kvv2Secret(map[string]any{"data": "oops"})

		_, err := vc.extractSecretData(secret, "secret/data/rolecolor")
		assert.Error(t, err)
	})
}

func TestExtractSecretVersion(t *testing.T) {
	vc := &VaultClient{logger: vaultTestLogger(t)}

	tests := []struct {
		name    string
		data    map[string]any
		want    int64
		wantErr string
	}{
		{
			name: "int64 version",
			data: map[string]any{"metadata": map[string]any{"version": int64(3)}},
			want: 3,
		},
		{
			name: "json-decoded float version",
			data: map[string]any{"metadata": map[string]any{"version": float64(3)}},
			want: 3,
		},
		{
			name:    "missing metadata",
			data:    map[string]any{"data": map[string]any{}},
			wantErr: "missing 'metadata' field",
		},
		{
			name:    "metadata without version",
			data:    map[string]any{"metadata": map[string]any{"created_time": "now"}},
			wantErr: "missing 'version' field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := vc.extractSecretVersion(kvv2Secret(tt.data), "secret/data/rolecolor")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", maskSecret(""))
	assert.Equal(t, "****", maskSecret("short"))
	assert.Equal(t, "abcd****wxyz", maskSecret("abcdefghstuvwxyz"))
}
