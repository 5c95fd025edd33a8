package config

import (
	"log"
	"time"

	"github.com/vitistack/resolver-shim/internal/checks"
	"github.com/vitistack/resolver-shim/pkg/loaders"
)

var cfg *Config

func init() {
	var err error
	cfg, err = newConfig()
	if err != nil {
		log.Fatalf("unable to load config: %s", err)
	}
}

func GetInstance() *Config {
	return cfg
}

type Config struct {
	Server Server
	Shim   Shim
	Proxy  Proxy
	API    API
}

// Server configuration
type Server struct {
	Environment string `env:"SRV_ENV"`
}

// Shim configuration. OverridesVar names the variable holding the override
// table; the table's value is deliberately never cached here, only its name.
type Shim struct {
	OverridesVar string `env:"SHIM_OVERRIDES_VAR"`
}

// Proxy configuration
type Proxy struct {
	Listen          string   `env:"PROXY_LISTEN"`
	Upstreams       []string `env:"PROXY_UPSTREAMS"`
	ProbeIntervalMS int      `env:"PROXY_PROBE_INTERVAL_MS"`
	CheckType       string   `env:"PROXY_CHECK_TYPE"`
	ProbeName       string   `env:"PROXY_PROBE_NAME"`
	CheckScript     string   `env:"PROXY_CHECK_SCRIPT"` // Lua source validating probe responses
}

func (p *Proxy) ProbeInterval() time.Duration {
	return time.Duration(p.ProbeIntervalMS) * time.Millisecond
}

// API configuration
type API struct {
	Port      string `env:"API_PORT"`
	JWTSecret string `env:"API_JWT_SECRET"`
}

func newConfig() (*Config, error) {
	loader := loaders.NewChainLoader(
		loaders.NewEnvLoader(),
		loaders.NewFileLoader(".env"),
	)

	// creating default config variables where possible
	serverCfg := Server{
		Environment: "prod",
	}
	shimCfg := Shim{
		OverridesVar: "SHIM_DNS_OVERRIDES",
	}
	proxyCfg := Proxy{
		Listen:          "127.0.0.1:5355",
		Upstreams:       []string{"1.1.1.1:53", "9.9.9.9:53"},
		ProbeIntervalMS: int(checks.DEFAULT_PROBE_INTERVAL.Milliseconds()),
		CheckType:       checks.TCP_FULL,
		ProbeName:       "example.org",
	}
	apiCfg := API{
		Port: ":8080",
	}

	configs := []any{
		&serverCfg,
		&shimCfg,
		&proxyCfg,
		&apiCfg,
	}

	for _, c := range configs {
		if err := loader.Load(c); err != nil {
			return nil, err
		}
	}

	return &Config{
		Server: serverCfg,
		Shim:   shimCfg,
		Proxy:  proxyCfg,
		API:    apiCfg,
	}, nil
}
