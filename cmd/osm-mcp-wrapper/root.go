package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"osm-mcp-wrapper/internal/pkg/launchConfig"
	"osm-mcp-wrapper/internal/pkg/launcher"
)

var (
	bridgeBin     string
	serverCommand []string
)

var rootCmd = &cobra.Command{
	Use:   "osm-mcp-wrapper",
	Short: "Expose the stdio osm-mcp-server over an HTTP transport",
	Long: `osm-mcp-wrapper launches the stdio-only osm-mcp-server behind the
fastmcp bridge so it can be reached over HTTP.

Configuration comes from the environment (PORT, HOST, TRANSPORT, PATH) with
flags taking precedence. On success the wrapper process is replaced by the
bridge and never returns.

Examples:
  # Defaults: streamable-http on 0.0.0.0:3004/mcp
  osm-mcp-wrapper

  # Bind locally on another port
  PORT=8080 HOST=127.0.0.1 osm-mcp-wrapper

  # Wrap a different stdio server
  osm-mcp-wrapper --server-command uvx,some-other-mcp-server`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLauncher(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting server: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("port", launchConfig.DefaultPort, "TCP port the bridge listens on")
	flags.String("host", launchConfig.DefaultHost, "bind address for the bridge")
	flags.String("transport", launchConfig.DefaultTransport, "wire transport the bridge exposes")
	flags.String("path", launchConfig.DefaultPath, "HTTP path the bridge serves")
	flags.StringVar(&bridgeBin, "bridge-bin", launcher.DefaultBridgeBin, "bridging executable to hand control to")
	flags.StringSliceVar(&serverCommand, "server-command", launcher.DefaultServerCommand(),
		"command that starts the wrapped stdio server")
}

func runLauncher(cmd *cobra.Command) error {
	config, err := launchConfig.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("launchConfig.Load() failed: %w", err)
	}

	spec := launcher.New(config)
	spec.BridgeBin = bridgeBin
	spec.ServerCommand = serverCommand

	return spec.Launch()
}
