package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dklimov/pointctl/internal/render"
	"github.com/dklimov/pointctl/internal/services"
)

func (a *App) newTimelineCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the most recent events, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.authedClient()
			if err != nil {
				return err
			}
			result, err := services.NewReadingService(client).Timeline(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if a.debug {
				a.dumpRaw(result.Raw)
				return nil
			}
			fmt.Fprintln(a.out, render.Timeline(result.Events))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of events to fetch")
	return cmd
}
