// Package cli wires the cobra command tree of pointctl: interactive
// authentication, cache management and the sensor/timeline read commands.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dklimov/pointctl/internal/config"
	"github.com/dklimov/pointctl/internal/logging"
	"github.com/dklimov/pointctl/internal/point"
	"github.com/dklimov/pointctl/internal/services"
	"github.com/dklimov/pointctl/internal/store"
)

// App holds the dependencies shared by all subcommands. Commands are
// methods on App so tests can run them against a temp store and a stub
// client.
type App struct {
	cfg    *config.Config
	store  *store.FileStore
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	debug     bool
	storePath string
	newClient func(token string) point.Client
}

// NewApp builds an App over the given runtime config. The persistent store
// path defaults to the per-user config dir and can be overridden with the
// global --config flag.
func NewApp(cfg *config.Config) *App {
	a := &App{
		cfg:    cfg,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	a.newClient = func(token string) point.Client {
		return point.New(cfg.APIURL, token, cfg.HTTPTimeout)
	}
	return a
}

// Execute runs the command tree and returns the process exit code.
func (a *App) Execute(ctx context.Context, args []string) int {
	root := a.newRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func (a *App) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pointctl",
		Short: "Command-line client for the Minut Point home sensor",
		Long: "pointctl talks to the Minut cloud API: authenticate once, then read\n" +
			"temperature, humidity, sound, light and pressure from your Point\n" +
			"devices, or browse the event timeline.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize()
		},
	}

	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "dump raw API responses and enable debug logging")
	root.PersistentFlags().StringVar(&a.storePath, "config", "", "path of the token/device cache file")

	root.AddCommand(
		a.newAuthCmd(),
		a.newLogoutCmd(),
		a.newFetchCmd(),
		a.newDevicesCmd(),
		a.newTimelineCmd(),
	)
	for _, sc := range sensorCommands {
		root.AddCommand(a.newSensorCmd(sc))
	}
	return root
}

// initialize resolves the store path and builds the logger once flags are
// parsed.
func (a *App) initialize() error {
	a.log = logging.NewTextLogger(os.Stderr, a.debug)

	if a.store == nil {
		path := a.storePath
		if path == "" {
			var err error
			path, err = store.DefaultPath()
			if err != nil {
				return err
			}
		}
		a.store = store.New(path)
	}
	return nil
}

// authedClient reads the cached token and returns a client carrying it.
// Without a token it fails with the run-auth guidance; the token stays
// fixed for the rest of the process.
func (a *App) authedClient() (point.Client, error) {
	token, ok, err := a.store.Token()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, services.ErrNotAuthenticated
	}
	return a.newClient(token), nil
}

// dumpRaw pretty-prints a raw API response body for --debug mode.
func (a *App) dumpRaw(raw json.RawMessage) {
	var buf map[string]any
	if err := json.Unmarshal(raw, &buf); err == nil {
		if pretty, err := json.MarshalIndent(buf, "", "  "); err == nil {
			fmt.Fprintln(a.out, string(pretty))
			return
		}
	}
	fmt.Fprintln(a.out, string(raw))
}
