package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/haulhub/tripops"
	"github.com/spf13/cobra"
)

type CommandFactory struct {
	CreateTripOpsClient func(ctx context.Context, flags *Flags) (tripops.Client, aws.Config, error)
}

var defaultCommandFactory = CommandFactory{
	CreateTripOpsClient: createTripOpsClient,
}

var root = defaultCommandFactory.CreateRootCommand()

func setDefaultFlags(c *cobra.Command, flgs *Flags) {
	c.Flags().StringVar(&flgs.Environment, flagMap.Environment.Name, flagMap.Environment.Value, flagMap.Environment.Usage)
	c.Flags().StringVar(&flgs.TableName, flagMap.TableName.Name, flagMap.TableName.Value, flagMap.TableName.Usage)
	c.Flags().StringVar(&flgs.Region, flagMap.Region.Name, flagMap.Region.Value, flagMap.Region.Usage)
	c.Flags().StringVar(&flgs.Profile, flagMap.Profile.Name, flagMap.Profile.Value, flagMap.Profile.Usage)
	c.Flags().StringVar(&flgs.EndpointURL, flagMap.EndpointURL.Name, flagMap.EndpointURL.Value, flagMap.EndpointURL.Usage)
}

func (f CommandFactory) CreateRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tripops",
		Short: "tripops is a maintenance tool for the HaulHub trips table in Amazon DynamoDB",
		Long:  `tripops is a maintenance tool for the HaulHub trips table in Amazon DynamoDB.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
}

// ResolvedTableName returns the table name to operate on: the explicit
// override if given, otherwise the name derived from the environment.
func (f *Flags) ResolvedTableName() string {
	if f.TableName != "" {
		return f.TableName
	}
	return tripops.TableNameForEnvironment(f.Environment)
}

func createTripOpsClient(ctx context.Context, flags *Flags) (tripops.Client, aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(flags.Region),
		config.WithSharedConfigProfile(flags.Profile))
	if err != nil {
		return nil, cfg, fmt.Errorf("failed to load aws config: %s", err)
	}
	client, err := tripops.NewFromConfig(cfg,
		tripops.WithTableName(flags.ResolvedTableName()),
		tripops.WithAWSBaseEndpoint(flags.EndpointURL))
	if err != nil {
		return nil, cfg, fmt.Errorf("AWS session could not be established!: %v", err)
	}
	return client, cfg, nil
}

func Execute() {
	if err := root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
