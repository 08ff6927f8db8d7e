package cmd

import (
	"context"

	"github.com/haulhub/tripops"
	"github.com/spf13/cobra"
)

func (f CommandFactory) CreateLSCommand(flgs *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List all trip records in the trips table",
		Long:  `List all trip records in the trips table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client, _, err := f.CreateTripOpsClient(ctx, flgs)
			if err != nil {
				return err
			}
			out, err := client.ListTrips(ctx, &tripops.ListTripsInput{})
			if err != nil {
				return err
			}
			printMessageWithData("", LSResult{Trips: out.Trips})
			return nil
		},
	}
}

type LSResult struct {
	Trips []*tripops.Trip `json:"trips"`
}

func init() {
	c := defaultCommandFactory.CreateLSCommand(flgs)
	setDefaultFlags(c, flgs)
	root.AddCommand(c)
}
