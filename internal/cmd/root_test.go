package cmd_test

import (
	"testing"

	"github.com/haulhub/tripops/internal/cmd"
)

func TestResolvedTableName(t *testing.T) {
	tests := []struct {
		name string
		flgs *cmd.Flags
		want string
	}{
		{
			name: "should derive table name from environment",
			flgs: &cmd.Flags{Environment: "dev"},
			want: "HaulHub-TripsTable-dev",
		},
		{
			name: "should prefer explicit table name",
			flgs: &cmd.Flags{Environment: "dev", TableName: "SomeOtherTable"},
			want: "SomeOtherTable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flgs.ResolvedTableName(); got != tt.want {
				t.Errorf("ResolvedTableName() = %v, want %v", got, tt.want)
			}
		})
	}
}
