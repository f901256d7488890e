package launchConfig

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultPort      = "3004"
	DefaultHost      = "0.0.0.0"
	DefaultTransport = "streamable-http"
	DefaultPath      = "/mcp"
)

// Config holds the bridge settings read from the environment. All fields are
// kept as strings and passed through to the bridge unmodified.
type Config struct {
	Port      string
	Host      string
	Transport string
	Path      string
}

// envBindings maps config keys to the environment variable names the wrapper
// has always honored. Note that PATH doubles as the executable search path
// variable; the flag takes precedence when both are in play.
var envBindings = map[string]string{
	"port":      "PORT",
	"host":      "HOST",
	"transport": "TRANSPORT",
	"path":      "PATH",
}

// Load reads the bridge configuration from the environment, falling back to
// the documented defaults. When a flag set is given, flags that were
// explicitly changed override the environment.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", DefaultHost)
	v.SetDefault("transport", DefaultTransport)
	v.SetDefault("path", DefaultPath)

	for key, envName := range envBindings {
		if err := v.BindEnv(key, envName); err != nil {
			return nil, fmt.Errorf("viper.BindEnv() failed: %w", err)
		}
	}

	if flags != nil {
		if err := bindChangedFlags(v, flags); err != nil {
			return nil, err
		}
	}

	config := &Config{
		Port:      v.GetString("port"),
		Host:      v.GetString("host"),
		Transport: v.GetString("transport"),
		Path:      v.GetString("path"),
	}

	return config, nil
}

// bindChangedFlags applies only flags the user actually set, so that flag
// defaults never shadow environment values.
func bindChangedFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error

	flags.Visit(func(flag *pflag.Flag) {
		if _, ok := envBindings[flag.Name]; !ok {
			return
		}
		if err := v.BindPFlag(flag.Name, flag); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("viper.BindPFlag() failed: %w", err)
		}
	})

	return bindErr
}
