package cmd

import (
	"context"

	"github.com/haulhub/tripops"
	"github.com/spf13/cobra"
)

func (f CommandFactory) CreateGetCommand(flgs *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Get a trip record from the trips table by trip ID",
		Long:  `Get a trip record from the trips table by trip ID.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client, _, err := f.CreateTripOpsClient(ctx, flgs)
			if err != nil {
				return err
			}
			retrieved, err := client.GetTrip(ctx, &tripops.GetTripInput{
				TripID: flgs.TripID,
			})
			if err != nil {
				return err
			}
			printMessageWithData("", GetResult{Trip: retrieved.Trip})
			return nil
		},
	}
}

type GetResult struct {
	Trip *tripops.Trip `json:"trip"`
}

func init() {
	c := defaultCommandFactory.CreateGetCommand(flgs)
	setDefaultFlags(c, flgs)
	c.Flags().StringVar(&flgs.TripID, flagMap.TripID.Name, flagMap.TripID.Value, flagMap.TripID.Usage)
	root.AddCommand(c)
}
