package tripops

import "fmt"

const (
	// DefaultTableNamePrefix is the product prefix of the trips table.
	// The full table name is derived per environment, e.g. "HaulHub-TripsTable-dev".
	DefaultTableNamePrefix = "HaulHub-TripsTable"
	// DefaultEnvironment is the environment targeted when none is specified.
	DefaultEnvironment = "dev"
	// DefaultAWSRegion is the region the trips tables live in.
	DefaultAWSRegion = "us-east-1"
	// DefaultAWSProfile is the shared credentials profile used by operators.
	DefaultAWSProfile = "haul-hub"
	// DefaultRetryMaxAttempts is the maximum number of attempts for retrying failed DynamoDB operations.
	DefaultRetryMaxAttempts = 10
)

// TableNameForEnvironment returns the trips table name for the given environment,
// following the <Product>-TripsTable-<environment> convention.
func TableNameForEnvironment(environment string) string {
	return fmt.Sprintf("%s-%s", DefaultTableNamePrefix, environment)
}
