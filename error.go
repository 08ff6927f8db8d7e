package tripops

import "fmt"

type TripIDNotProvidedError struct{}

func (e TripIDNotProvidedError) Error() string {
	return "Trip ID was not provided."
}

type BuildingExpressionError struct {
	Cause error
}

func (e BuildingExpressionError) Error() string {
	return fmt.Sprintf("Failed to build expression: %v.", e.Cause)
}

type DynamoDBAPIError struct {
	Cause error
}

func (e DynamoDBAPIError) Error() string {
	return fmt.Sprintf("Failed DynamoDB API: %v.", e.Cause)
}

type ConditionalCheckFailedError struct {
	Cause error
}

func (e ConditionalCheckFailedError) Error() string {
	return fmt.Sprintf("Condition on the update has failed: %v.", e.Cause)
}

type UnmarshalingAttributeError struct {
	Cause error
}

func (e UnmarshalingAttributeError) Error() string {
	return fmt.Sprintf("Failed to unmarshal: %v.", e.Cause)
}
