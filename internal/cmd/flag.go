package cmd

import "github.com/haulhub/tripops"

var flgs = &Flags{}

type Flags struct {
	Environment string
	TableName   string
	Region      string
	Profile     string
	EndpointURL string

	TripID string
	DryRun bool
}

var flagMap = FlagMap{
	Environment: FlagSet[string]{
		Name:  "env",
		Usage: "The environment whose trips table is targeted.",
		Value: tripops.DefaultEnvironment,
	},
	TableName: FlagSet[string]{
		Name:  "table-name",
		Usage: "The name of the trips table. Overrides the name derived from --env.",
		Value: "",
	},
	Region: FlagSet[string]{
		Name:  "region",
		Usage: "The AWS region of the trips table.",
		Value: tripops.DefaultAWSRegion,
	},
	Profile: FlagSet[string]{
		Name:  "profile",
		Usage: "The AWS shared credentials profile to use.",
		Value: tripops.DefaultAWSProfile,
	},
	EndpointURL: FlagSet[string]{
		Name:  "endpoint-url",
		Usage: "Override command's default URL with the given URL.",
		Value: "",
	},
	TripID: FlagSet[string]{
		Name:  "id",
		Usage: "Trip ID, without the TRIP# key prefix.",
		Value: "",
	},
	DryRun: FlagSet[bool]{
		Name:  "dry-run",
		Usage: "Classify every trip without writing anything.",
		Value: false,
	},
}

type FlagSet[T any] struct {
	Name  string
	Usage string
	Value T
}

type FlagMap struct {
	Environment FlagSet[string]
	TableName   FlagSet[string]
	Region      FlagSet[string]
	Profile     FlagSet[string]
	EndpointURL FlagSet[string]
	TripID      FlagSet[string]
	DryRun      FlagSet[bool]
}
