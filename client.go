package tripops

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Client is an interface for interacting with the trips table in DynamoDB.
// It exposes the operations maintenance tooling needs: scanning all trip
// records, fetching a single one, and writing the resolved broker name back.
type Client interface {
	// ListTrips retrieves every trip record in the table.
	ListTrips(ctx context.Context, params *ListTripsInput) (*ListTripsOutput, error)
	// GetTrip retrieves a single trip record by trip ID.
	GetTrip(ctx context.Context, params *GetTripInput) (*GetTripOutput, error)
	// UpdateBrokerName sets the brokerName attribute on an existing trip record.
	UpdateBrokerName(ctx context.Context, params *UpdateBrokerNameInput) (*UpdateBrokerNameOutput, error)
}

// ClientOptions defines configuration options for the trips table client.
//
// Note: The UnmarshalMap, UnmarshalListOfMaps and BuildExpression fields are
// primarily used for testing purposes. They allow stubbing of unmarshaling and
// expression building during tests without relying on a real DynamoDB
// instance. In typical use they should not be modified.
type ClientOptions struct {
	// DynamoDB is a pointer to the DynamoDB client used for table operations.
	DynamoDB *dynamodb.Client
	// TableName is the name of the trips table.
	TableName string
	// BaseEndpoint is the base endpoint URL for DynamoDB requests.
	BaseEndpoint string
	// RetryMaxAttempts is the maximum number of attempts for retrying failed DynamoDB operations.
	RetryMaxAttempts int

	// UnmarshalMap is a function to unmarshal a map of DynamoDB attribute values into objects.
	UnmarshalMap func(m map[string]types.AttributeValue, out interface{}) error
	// UnmarshalListOfMaps is a function to unmarshal a list of maps of DynamoDB attribute values into objects.
	UnmarshalListOfMaps func(l []map[string]types.AttributeValue, out interface{}) error
	// BuildExpression is a function to build DynamoDB expressions from a builder.
	BuildExpression func(b expression.Builder) (expression.Expression, error)
}

// WithTableName is an option function to set the trips table name for the client.
// By default, the table name is derived from the default environment via
// TableNameForEnvironment.
func WithTableName(tableName string) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.TableName = tableName
	}
}

// WithAWSDynamoDBClient is an option function to set a custom AWS DynamoDB client.
// Use it to provide a pre-configured DynamoDB client that the trips client will
// use for all interactions with DynamoDB.
func WithAWSDynamoDBClient(client *dynamodb.Client) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.DynamoDB = client
	}
}

// WithAWSBaseEndpoint is an option function to set a custom base endpoint for DynamoDB.
// If the DynamoDB client is set using WithAWSDynamoDBClient, this option is ignored.
func WithAWSBaseEndpoint(baseEndpoint string) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.BaseEndpoint = baseEndpoint
	}
}

// WithAWSRetryMaxAttempts is an option function to set the maximum number of retry
// attempts for DynamoDB calls.
// If the DynamoDB client is set using WithAWSDynamoDBClient, this option is ignored.
func WithAWSRetryMaxAttempts(retryMaxAttempts int) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.RetryMaxAttempts = retryMaxAttempts
	}
}

// NewFromConfig creates a new trips table client using the provided AWS
// configuration and any additional client options.
func NewFromConfig(cfg aws.Config, optFns ...func(*ClientOptions)) (Client, error) {
	o := &ClientOptions{
		TableName:           TableNameForEnvironment(DefaultEnvironment),
		RetryMaxAttempts:    DefaultRetryMaxAttempts,
		UnmarshalMap:        attributevalue.UnmarshalMap,
		UnmarshalListOfMaps: attributevalue.UnmarshalListOfMaps,
		BuildExpression: func(b expression.Builder) (expression.Expression, error) {
			return b.Build()
		},
	}
	for _, opt := range optFns {
		opt(o)
	}
	c := &ClientImpl{
		tableName:           o.TableName,
		dynamoDB:            o.DynamoDB,
		unmarshalMap:        o.UnmarshalMap,
		unmarshalListOfMaps: o.UnmarshalListOfMaps,
		buildExpression:     o.BuildExpression,
	}
	if c.dynamoDB != nil {
		return c, nil
	}
	c.dynamoDB = dynamodb.NewFromConfig(cfg, func(options *dynamodb.Options) {
		options.RetryMaxAttempts = o.RetryMaxAttempts
		if o.BaseEndpoint != "" {
			options.BaseEndpoint = aws.String(o.BaseEndpoint)
		}
	})
	return c, nil
}

// ClientImpl is a concrete implementation of the tripops.Client interface.
// Note: ClientImpl cannot be used directly. Always use the tripops.NewFromConfig
// function to create an instance.
type ClientImpl struct {
	dynamoDB            *dynamodb.Client
	tableName           string
	unmarshalMap        func(m map[string]types.AttributeValue, out interface{}) error
	unmarshalListOfMaps func(l []map[string]types.AttributeValue, out interface{}) error
	buildExpression     func(b expression.Builder) (expression.Expression, error)
}

// ListTripsInput represents the input parameters for listing trip records.
type ListTripsInput struct {
	// Limit caps the number of items evaluated per scan page. Zero or less
	// leaves the page size to DynamoDB. It does not cap the total: the scan
	// always continues until the table is exhausted.
	Limit int32
}

// ListTripsOutput represents the result of the operation to list trip records.
type ListTripsOutput struct {
	// Trips contains every trip record in the table.
	Trips []*Trip
}

// ListTrips retrieves every trip record in the table via a full scan.
// It follows LastEvaluatedKey across pages until the table is exhausted, so
// the result is complete regardless of how DynamoDB paginates the response.
func (c *ClientImpl) ListTrips(ctx context.Context, params *ListTripsInput) (*ListTripsOutput, error) {
	if params == nil {
		params = &ListTripsInput{}
	}
	input := &dynamodb.ScanInput{
		TableName: aws.String(c.tableName),
	}
	if params.Limit > 0 {
		input.Limit = aws.Int32(params.Limit)
	}
	var trips []*Trip
	var exclusiveStartKey map[string]types.AttributeValue
	for {
		input.ExclusiveStartKey = exclusiveStartKey
		output, err := c.dynamoDB.Scan(ctx, input)
		if err != nil {
			return &ListTripsOutput{}, handleDynamoDBError(err)
		}
		var page []*Trip
		if err := c.unmarshalListOfMaps(output.Items, &page); err != nil {
			return &ListTripsOutput{}, UnmarshalingAttributeError{Cause: err}
		}
		trips = append(trips, page...)
		exclusiveStartKey = output.LastEvaluatedKey
		if exclusiveStartKey == nil {
			break
		}
	}
	return &ListTripsOutput{Trips: trips}, nil
}

// GetTripInput represents the input parameters for retrieving a single trip record.
type GetTripInput struct {
	// TripID is the trip identifier, without the TRIP# key prefix.
	TripID string
}

// GetTripOutput represents the result of the operation to retrieve a trip record.
type GetTripOutput struct {
	// Trip is the retrieved record, or nil if no record exists for the ID.
	Trip *Trip
}

// GetTrip retrieves a single trip record by trip ID.
// If no record exists for the given ID, the returned output carries a nil Trip.
func (c *ClientImpl) GetTrip(ctx context.Context, params *GetTripInput) (*GetTripOutput, error) {
	if params == nil {
		params = &GetTripInput{}
	}
	if params.TripID == "" {
		return &GetTripOutput{}, &TripIDNotProvidedError{}
	}
	resp, err := c.dynamoDB.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(c.tableName),
		Key:            tripKey(params.TripID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return &GetTripOutput{}, handleDynamoDBError(err)
	}
	if resp.Item == nil {
		return &GetTripOutput{}, nil
	}
	trip := Trip{}
	if err := c.unmarshalMap(resp.Item, &trip); err != nil {
		return &GetTripOutput{}, UnmarshalingAttributeError{Cause: err}
	}
	return &GetTripOutput{Trip: &trip}, nil
}

// UpdateBrokerNameInput represents the input parameters for setting the broker
// name on a trip record.
type UpdateBrokerNameInput struct {
	// TripID is the trip identifier, without the TRIP# key prefix.
	TripID string
	// BrokerName is the resolved display name to write.
	BrokerName string
}

// UpdateBrokerNameOutput represents the result of the operation to set the
// broker name on a trip record.
type UpdateBrokerNameOutput struct {
	// UpdatedTrip is the record as stored after the update.
	UpdatedTrip *Trip
}

// UpdateBrokerName sets the brokerName attribute on the trip record identified
// by the trip ID. The update is guarded by an existence condition on the
// partition key, so it can never create a record for a trip that has been
// deleted between the scan and the update.
func (c *ClientImpl) UpdateBrokerName(ctx context.Context, params *UpdateBrokerNameInput) (*UpdateBrokerNameOutput, error) {
	if params == nil {
		params = &UpdateBrokerNameInput{}
	}
	if params.TripID == "" {
		return &UpdateBrokerNameOutput{}, &TripIDNotProvidedError{}
	}
	builder := expression.NewBuilder().
		WithUpdate(expression.
			Set(expression.Name("brokerName"), expression.Value(params.BrokerName))).
		WithCondition(expression.AttributeExists(expression.Name("PK")))
	expr, err := c.buildExpression(builder)
	if err != nil {
		return &UpdateBrokerNameOutput{}, BuildingExpressionError{Cause: err}
	}
	outcome, err := c.dynamoDB.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(c.tableName),
		Key:                       tripKey(params.TripID),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		UpdateExpression:          expr.Update(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return &UpdateBrokerNameOutput{}, handleDynamoDBError(err)
	}
	trip := Trip{}
	if err := c.unmarshalMap(outcome.Attributes, &trip); err != nil {
		return &UpdateBrokerNameOutput{}, UnmarshalingAttributeError{Cause: err}
	}
	return &UpdateBrokerNameOutput{UpdatedTrip: &trip}, nil
}

func tripKey(tripID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{
			Value: TripPartitionKey(tripID),
		},
		"SK": &types.AttributeValueMemberS{
			Value: TripMetadataSortKey,
		},
	}
}

func handleDynamoDBError(err error) error {
	var cause *types.ConditionalCheckFailedException
	if errors.As(err, &cause) {
		return &ConditionalCheckFailedError{Cause: cause}
	}
	return DynamoDBAPIError{Cause: err}
}
