package app

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"nem2/internal/domain"
	domaintypes "nem2/internal/domain/types"
	"nem2/internal/store"
)

// Config holds runtime wiring options for building the client.
type Config struct {
	Home    string        `yaml:"home" validate:"required"`                 // state directory, e.g. $HOME/.nem2
	NodeURL string        `yaml:"node_url" validate:"required,url"`         // REST gateway, e.g. http://localhost:3000
	Network string        `yaml:"network" validate:"required,network_type"` // MAIN_NET, TEST_NET, MIJIN or MIJIN_TEST
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`

	Log struct {
		Level  string `yaml:"level" validate:"oneof=trace debug info warn error disabled"`
		Format string `yaml:"format" validate:"oneof=plain text json"`
	} `yaml:"log"`

	Scrypt struct {
		N int `yaml:"n" validate:"gte=1024"`
		R int `yaml:"r" validate:"gte=1"`
		P int `yaml:"p" validate:"gte=1"`
	} `yaml:"scrypt"`

	HTTP *http.Client `yaml:"-"` // optional; replaces the transport's client
}

// DefaultConfig returns a config for a local test node with state under home.
func DefaultConfig(home string) Config {
	var cfg Config
	cfg.Home = home
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.NodeURL == "" {
		c.NodeURL = "http://localhost:3000"
	}
	if c.Network == "" {
		c.Network = domain.MijinTest.String()
	}
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "plain"
	}
	if c.Scrypt.N == 0 {
		p := store.DefaultScryptParams()
		c.Scrypt.N, c.Scrypt.R, c.Scrypt.P = p.N, p.R, p.P
	}
}

// LoadConfig reads a YAML config from path, fills defaults and validates it.
// A relative home is resolved against the config file's directory.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Home != "" && !filepath.IsAbs(cfg.Home) {
		cfg.Home = filepath.Join(filepath.Dir(path), cfg.Home)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks cfg against its field rules.
func (c Config) Validate() error {
	return newValidator().Struct(c)
}

// NetworkType returns the parsed network.
func (c Config) NetworkType() (domain.NetworkType, error) {
	return domaintypes.ParseNetworkType(c.Network)
}

// ScryptParams returns the keystore cost parameters.
func (c Config) ScryptParams() store.ScryptParams {
	return store.ScryptParams{N: c.Scrypt.N, R: c.Scrypt.R, P: c.Scrypt.P}
}

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("network_type", func(fl validator.FieldLevel) bool {
		_, err := domaintypes.ParseNetworkType(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(err)
	}
	return v
}
