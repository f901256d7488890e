package launcher

import (
	"errors"

	"github.com/rs/zerolog/log"

	"osm-mcp-wrapper/internal/pkg/launchConfig"
)

// DefaultBridgeBin is the bridging executable resolved on the search path.
const DefaultBridgeBin = "fastmcp"

// Spec describes the bridge process the launcher hands control to: the
// bridging executable, the command that starts the wrapped stdio server, and
// the transport settings the bridge listens with.
type Spec struct {
	BridgeBin     string
	ServerCommand []string
	Config        *launchConfig.Config
}

// DefaultServerCommand returns the invocation of the wrapped server through
// the package runner.
func DefaultServerCommand() []string {
	return []string{"uvx", "osm-mcp-server"}
}

func New(config *launchConfig.Config) *Spec {
	return &Spec{
		BridgeBin:     DefaultBridgeBin,
		ServerCommand: DefaultServerCommand(),
		Config:        config,
	}
}

// Args assembles the full argument vector for the bridge executable. The
// configuration values are passed through verbatim.
func (instance *Spec) Args() []string {
	args := []string{
		instance.BridgeBin, "run",
		"--transport", instance.Config.Transport,
		"--host", instance.Config.Host,
		"--port", instance.Config.Port,
		"--path", instance.Config.Path,
	}

	return append(args, instance.ServerCommand...)
}

// Launch logs one diagnostic line and then hands the process over to the
// bridge. On success control never returns here; any returned error means
// the bridge could not be started.
func (instance *Spec) Launch() error {
	if len(instance.ServerCommand) == 0 {
		return errors.New("empty server command")
	}

	serverName := instance.ServerCommand[len(instance.ServerCommand)-1]
	log.Info().Msgf("Starting %s with %s transport on %s:%s%s",
		serverName,
		instance.Config.Transport,
		instance.Config.Host,
		instance.Config.Port,
		instance.Config.Path)

	return replaceProcess(instance.Args())
}
