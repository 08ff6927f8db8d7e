package cmd_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/haulhub/tripops"
	"github.com/haulhub/tripops/internal/cmd"
	"github.com/haulhub/tripops/internal/mock"
	"github.com/haulhub/tripops/internal/test"
	"github.com/spf13/cobra"
)

func TestLSCommand(t *testing.T) {
	tests := []struct {
		name                string
		createTripOpsClient func(ctx context.Context, flags *cmd.Flags) (tripops.Client, aws.Config, error)
		wantErr             bool
	}{
		{
			name: "should list trips",
			createTripOpsClient: func(ctx context.Context, flags *cmd.Flags) (tripops.Client, aws.Config, error) {
				return mock.Client{
					ListTripsFunc: func(ctx context.Context, params *tripops.ListTripsInput) (*tripops.ListTripsOutput, error) {
						return &tripops.ListTripsOutput{
							Trips: []*tripops.Trip{
								test.NewTrip("T1", "broker-001"),
								test.NewTrip("T2", "broker-002"),
							},
						}, nil
					},
				}, aws.Config{}, nil
			},
			wantErr: false,
		},
		{
			name: "should return error when create tripops client failed",
			createTripOpsClient: func(ctx context.Context, flags *cmd.Flags) (tripops.Client, aws.Config, error) {
				return nil, aws.Config{}, test.ErrorTest
			},
			wantErr: true,
		},
		{
			name: "should return error when scan failed",
			createTripOpsClient: func(ctx context.Context, flags *cmd.Flags) (tripops.Client, aws.Config, error) {
				return mock.Client{}, aws.Config{}, nil
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := cmd.CommandFactory{
				CreateTripOpsClient: tt.createTripOpsClient,
			}
			c := f.CreateLSCommand(&cmd.Flags{})
			if err := c.RunE(&cobra.Command{}, []string{}); (err != nil) != tt.wantErr {
				t.Errorf("LS() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
