package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dklimov/pointctl/internal/render"
	"github.com/dklimov/pointctl/internal/services"
)

func (a *App) newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Refresh the cached device list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.authedClient()
			if err != nil {
				return err
			}
			devices, err := services.NewDeviceService(client, a.store).Refresh(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, render.FetchSummary(devices))
			return nil
		},
	}
}

func (a *App) newDevicesCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List devices straight from the API",
		Long: "Lists every Point device on the account as reported live by the API,\n" +
			"bypassing the local cache. With --verbose each device also shows its\n" +
			"online/active state and when it was last heard from.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.authedClient()
			if err != nil {
				return err
			}
			result, err := services.NewDeviceService(client, a.store).List(cmd.Context())
			if err != nil {
				return err
			}
			if a.debug {
				a.dumpRaw(result.Raw)
				return nil
			}
			fmt.Fprintln(a.out, render.DeviceList(result.Devices, verbose))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show online/active state and last-seen time")
	return cmd
}
