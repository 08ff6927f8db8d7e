package test

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/haulhub/tripops"
)

var ErrorTest = errors.New("test error")

func NewTrip(tripID, brokerID string) *tripops.Trip {
	return tripops.NewTrip(tripID, brokerID, "")
}

func NewPutRequestWithTripItem(tripID, brokerID string) *types.PutRequest {
	return &types.PutRequest{
		Item: map[string]types.AttributeValue{
			"PK":       &types.AttributeValueMemberS{Value: tripops.TripPartitionKey(tripID)},
			"SK":       &types.AttributeValueMemberS{Value: tripops.TripMetadataSortKey},
			"tripId":   &types.AttributeValueMemberS{Value: tripID},
			"brokerId": &types.AttributeValueMemberS{Value: brokerID},
		},
	}
}
