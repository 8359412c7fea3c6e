package app_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nem2/internal/app"
	"nem2/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "home: state\nnode_url: http://node.example:3000\n")
	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "state"), cfg.Home)
	assert.Equal(t, "MIJIN_TEST", cfg.Network)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1<<15, cfg.Scrypt.N)

	n, err := cfg.NetworkType()
	require.NoError(t, err)
	assert.Equal(t, domain.MijinTest, n)
}

func TestLoadConfig_Explicit(t *testing.T) {
	path := writeConfig(t, `
home: /var/lib/nem2
node_url: https://api.example.org
network: MAIN_NET
timeout: 3s
log:
  level: debug
  format: json
scrypt:
  n: 2048
  r: 8
  p: 1
`)
	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/nem2", cfg.Home)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 2048, cfg.ScryptParams().N)
}

func TestLoadConfig_Rejects(t *testing.T) {
	cases := map[string]string{
		"bad network": "home: x\nnetwork: MOON_NET\n",
		"bad url":     "home: x\nnode_url: not a url\n",
		"bad level":   "home: x\nlog:\n  level: loud\n",
		"no home":     "node_url: http://localhost:3000\n",
		"unknown key": "home: x\nrelay_url: http://localhost\n",
		"weak scrypt": "home: x\nscrypt:\n  n: 16\n  r: 1\n  p: 1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := app.LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestNewWire(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chain/height", r.URL.Path)
		_, _ = io.WriteString(w, `{"height":[42,0]}`)
	}))
	defer srv.Close()

	cfg := app.DefaultConfig(t.TempDir())
	cfg.NodeURL = srv.URL
	cfg.Scrypt.N = 1 << 10

	w, err := app.NewWireWithLogger(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, domain.MijinTest, w.Network)

	h, err := w.Chain.GetBlockchainHeight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(42), h.Height)

	a, err := w.Accounts.GenerateAccount("Str0ng-Passphrase", "main")
	require.NoError(t, err)
	got, err := w.AccountStore.LoadAccount("Str0ng-Passphrase", "main")
	require.NoError(t, err)
	assert.Equal(t, a.Address, got.Address)
}
