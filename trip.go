package tripops

import "fmt"

const (
	// TripKeyPrefix is the partition key prefix of trip metadata records.
	TripKeyPrefix = "TRIP#"
	// TripMetadataSortKey is the sort key of trip metadata records.
	TripMetadataSortKey = "METADATA"
)

// Trip is a trip metadata record as stored in the trips table.
// Trip records are owned by the trip-management service; this package
// only ever writes the brokerName attribute.
type Trip struct {
	PK         string `json:"-" dynamodbav:"PK"`
	SK         string `json:"-" dynamodbav:"SK"`
	TripID     string `json:"trip_id" dynamodbav:"tripId"`
	BrokerID   string `json:"broker_id" dynamodbav:"brokerId"`
	BrokerName string `json:"broker_name,omitempty" dynamodbav:"brokerName,omitempty"`
}

// NewTrip returns a Trip with its composite key derived from the trip ID.
func NewTrip(tripID, brokerID, brokerName string) *Trip {
	return &Trip{
		PK:         TripPartitionKey(tripID),
		SK:         TripMetadataSortKey,
		TripID:     tripID,
		BrokerID:   brokerID,
		BrokerName: brokerName,
	}
}

// TripPartitionKey returns the partition key value for a trip ID.
func TripPartitionKey(tripID string) string {
	return fmt.Sprintf("%s%s", TripKeyPrefix, tripID)
}
