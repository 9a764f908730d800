package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version shown by --version.
func SetVersion(v string) { version = v }

// Execute runs the geograph CLI.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// globals are the persistent flags shared by every command.
type globals struct {
	verbose bool
	network string
	mode    string
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:          "geograph",
		Short:        "Route over spatial networks",
		Long:         `geograph loads a TOML road network and answers shortest-path, reachability, isochrone and nearest-site queries over it.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if g.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&g.network, "network", "n", "network.toml", "network file")
	root.PersistentFlags().StringVarP(&g.mode, "mode", "m", "0", "weight mode, by name or index")

	root.AddCommand(newRouteCmd(g))
	root.AddCommand(newReachCmd(g))
	root.AddCommand(newIsochroneCmd(g))
	root.AddCommand(newNearestCmd(g))

	return root
}

// load reads the network and resolves the mode flag.
func (g *globals) load(cmd *cobra.Command) (*network, int, error) {
	logger := loggerFromContext(cmd.Context())
	p := newProgress(logger)
	net, err := loadNetwork(g.network, logger)
	if err != nil {
		return nil, 0, fmt.Errorf("load %s: %w", g.network, err)
	}
	p.done("network built", "path", g.network)

	mode, err := net.mode(g.mode)
	if err != nil {
		return nil, 0, err
	}
	return net, mode, nil
}
