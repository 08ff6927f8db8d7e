package tripops_test

import (
	"testing"

	"github.com/haulhub/tripops"
)

func TestDefaultBrokerNames(t *testing.T) {
	names := tripops.DefaultBrokerNames()
	if len(names) != 20 {
		t.Errorf("DefaultBrokerNames() has %d entries, want 20", len(names))
	}
	if names["broker-001"] != "C.H. Robinson" {
		t.Errorf("broker-001 = %q, want %q", names["broker-001"], "C.H. Robinson")
	}
	if names["broker-020"] != "Redwood Logistics" {
		t.Errorf("broker-020 = %q, want %q", names["broker-020"], "Redwood Logistics")
	}
}

func TestStaticBrokerResolver(t *testing.T) {
	resolver := tripops.NewStaticBrokerResolver(tripops.DefaultBrokerNames())
	type testCase struct {
		name     string
		brokerID string
		want     string
		wantOK   bool
	}
	tests := []testCase{
		{
			name:     "should resolve known broker ID",
			brokerID: "broker-001",
			want:     "C.H. Robinson",
			wantOK:   true,
		},
		{
			name:     "should not resolve unknown broker ID",
			brokerID: "broker-999",
			want:     "",
			wantOK:   false,
		},
		{
			name:     "should not resolve empty broker ID",
			brokerID: "",
			want:     "",
			wantOK:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolver.ResolveBrokerName(tt.brokerID)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ResolveBrokerName(%q) = (%q, %v), want (%q, %v)", tt.brokerID, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
