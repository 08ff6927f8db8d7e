package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/haulhub/tripops"
	"github.com/spf13/cobra"
)

func (f CommandFactory) CreateBackfillCommand(flgs *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "backfill",
		Short: "Backfill broker display names onto trip records",
		Long:  `Backfill broker display names onto trip records by resolving each record's broker ID against the static broker table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			fmt.Println("=========================================")
			fmt.Println("Fixing Broker Names in Trips")
			fmt.Println("=========================================")
			fmt.Println()
			fmt.Printf("AWS Profile: %s\n", flgs.Profile)
			fmt.Printf("Environment: %s\n", flgs.Environment)
			fmt.Printf("Table: %s\n", flgs.ResolvedTableName())
			if flgs.DryRun {
				fmt.Println("Mode: dry run (no writes)")
			}
			fmt.Println()

			client, _, err := f.CreateTripOpsClient(ctx, flgs)
			if err != nil {
				return err
			}

			backfiller := tripops.NewBackfiller(
				client,
				tripops.NewStaticBrokerResolver(tripops.DefaultBrokerNames()),
				tripops.WithWriter(os.Stdout),
				tripops.WithDryRun(flgs.DryRun),
			)
			result, err := backfiller.Run(ctx)
			if err != nil {
				return err
			}

			fmt.Println()
			fmt.Println("=========================================")
			fmt.Println("Update Complete!")
			fmt.Println("=========================================")
			printMessageWithData("", result)
			return nil
		},
	}
}

func init() {
	c := defaultCommandFactory.CreateBackfillCommand(flgs)
	setDefaultFlags(c, flgs)
	c.Flags().BoolVar(&flgs.DryRun, flagMap.DryRun.Name, flagMap.DryRun.Value, flagMap.DryRun.Usage)
	root.AddCommand(c)
}
