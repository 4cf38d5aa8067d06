package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newEventsCmd(app *App) *cobra.Command {
	var (
		limit    int
		asJSON   bool
		onlyID   bool
		showTime bool
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List upcoming events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), app.cfg.Timeout)
			defer cancel()
			events, err := app.api.Events(ctx, limit)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(events)
			}

			for _, ev := range events {
				switch {
				case onlyID:
					fmt.Fprintln(cmd.OutOrStdout(), ev.ID)
				case showTime:
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
						ev.ID, ev.StartDate.Format("2006-01-02 15:04"), ev.Title)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", ev.ID, ev.Title)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of events")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the raw event records as JSON")
	cmd.Flags().BoolVar(&onlyID, "id-only", false, "Print only event ids")
	cmd.Flags().BoolVar(&showTime, "times", false, "Include start times")
	return cmd
}
