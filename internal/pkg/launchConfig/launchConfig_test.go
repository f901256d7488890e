package launchConfig

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

// clearBridgeEnv blanks the four bridge variables so the host environment
// (notably the real PATH) cannot leak into a test.
func clearBridgeEnv(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("HOST", "")
	t.Setenv("TRANSPORT", "")
	t.Setenv("PATH", "")
}

func TestLoadDefaultsPositive(t *testing.T) {
	clearBridgeEnv(t)

	config, err := Load(nil)
	assert.NoError(t, err)
	assert.Equal(t, "3004", config.Port)
	assert.Equal(t, "0.0.0.0", config.Host)
	assert.Equal(t, "streamable-http", config.Transport)
	assert.Equal(t, "/mcp", config.Path)
}

func TestLoadEnvironmentOverridesPositive(t *testing.T) {
	clearBridgeEnv(t)
	t.Setenv("PORT", "not even a number")
	t.Setenv("HOST", "some-host.internal")
	t.Setenv("TRANSPORT", "sse")
	t.Setenv("PATH", "/anything/goes")

	config, err := Load(nil)
	assert.NoError(t, err)
	assert.Equal(t, "not even a number", config.Port)
	assert.Equal(t, "some-host.internal", config.Host)
	assert.Equal(t, "sse", config.Transport)
	assert.Equal(t, "/anything/goes", config.Path)
}

func TestLoadPartialEnvironmentPositive(t *testing.T) {
	clearBridgeEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("HOST", "127.0.0.1")

	config, err := Load(nil)
	assert.NoError(t, err)
	assert.Equal(t, "8080", config.Port)
	assert.Equal(t, "127.0.0.1", config.Host)
	assert.Equal(t, "streamable-http", config.Transport)
	assert.Equal(t, "/mcp", config.Path)
}

func TestLoadChangedFlagOverridesEnvironmentPositive(t *testing.T) {
	clearBridgeEnv(t)
	t.Setenv("TRANSPORT", "sse")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("transport", DefaultTransport, "")
	err := flags.Set("transport", "streamable-http")
	assert.NoError(t, err)

	config, err := Load(flags)
	assert.NoError(t, err)
	assert.Equal(t, "streamable-http", config.Transport)
}

func TestLoadUnchangedFlagDoesNotShadowEnvironmentPositive(t *testing.T) {
	clearBridgeEnv(t)
	t.Setenv("PORT", "9999")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("port", DefaultPort, "")

	config, err := Load(flags)
	assert.NoError(t, err)
	assert.Equal(t, "9999", config.Port)
}

func TestLoadIgnoresUnrelatedFlagsPositive(t *testing.T) {
	clearBridgeEnv(t)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("bridge-bin", "fastmcp", "")
	err := flags.Set("bridge-bin", "other-bridge")
	assert.NoError(t, err)

	config, err := Load(flags)
	assert.NoError(t, err)
	assert.Equal(t, "3004", config.Port)
	assert.Equal(t, "/mcp", config.Path)
}
