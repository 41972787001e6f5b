package cli

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultServer   = "http://localhost:8080"
	defaultStateDir = "~/.daybook"
)

// Config is the resolved CLI configuration. Precedence is flags, then
// DAYBOOK_* environment variables, then a .daybook.{yaml,json,toml} file,
// then defaults.
type Config struct {
	Server   string
	StateDir string
	Verbose  bool
}

func loadConfig(v *viper.Viper) (Config, error) {
	v.SetDefault("server", defaultServer)
	v.SetDefault("state-dir", defaultStateDir)
	v.SetConfigName(".daybook") // extension is implicit
	v.SetEnvPrefix("DAYBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath(".")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	server := strings.TrimRight(strings.TrimSpace(v.GetString("server")), "/")
	u, err := url.Parse(server)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Config{}, fmt.Errorf("server: %q is not an http(s) URL", server)
	}

	stateDir, err := homedir.Expand(v.GetString("state-dir"))
	if err != nil {
		return Config{}, fmt.Errorf("state-dir: %w", err)
	}
	if stateDir == "" {
		return Config{}, errors.New("state-dir: must not be empty")
	}

	return Config{
		Server:   server,
		StateDir: stateDir,
		Verbose:  v.GetBool("verbose"),
	}, nil
}
