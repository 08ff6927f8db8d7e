package tripops_test

import (
	"testing"

	"github.com/haulhub/tripops"
)

func TestTripPartitionKey(t *testing.T) {
	if got := tripops.TripPartitionKey("T1"); got != "TRIP#T1" {
		t.Errorf("TripPartitionKey() = %v, want %v", got, "TRIP#T1")
	}
}

func TestNewTrip(t *testing.T) {
	trip := tripops.NewTrip("T1", "broker-001", "C.H. Robinson")
	if trip.PK != "TRIP#T1" {
		t.Errorf("PK = %v, want %v", trip.PK, "TRIP#T1")
	}
	if trip.SK != tripops.TripMetadataSortKey {
		t.Errorf("SK = %v, want %v", trip.SK, tripops.TripMetadataSortKey)
	}
	if trip.TripID != "T1" || trip.BrokerID != "broker-001" || trip.BrokerName != "C.H. Robinson" {
		t.Errorf("unexpected trip attributes: %+v", trip)
	}
}
