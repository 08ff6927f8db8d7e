package tripops

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/haulhub/tripops/internal/clock"
)

// BackfillerOptions defines configuration options for the Backfiller.
type BackfillerOptions struct {
	// Clock is an abstraction of time operations, allowing control over time during tests.
	Clock clock.Clock
	// Writer receives human-readable progress output. Defaults to os.Stdout.
	Writer io.Writer
	// DryRun classifies every record without issuing any update.
	DryRun bool
}

// WithClock is an option function to set the clock used for run timing.
func WithClock(c clock.Clock) func(*BackfillerOptions) {
	return func(o *BackfillerOptions) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithWriter is an option function to set the destination of progress output.
func WithWriter(w io.Writer) func(*BackfillerOptions) {
	return func(o *BackfillerOptions) {
		if w != nil {
			o.Writer = w
		}
	}
}

// WithDryRun is an option function to enable dry-run mode.
// In dry-run mode every record is scanned and classified but no update is issued.
func WithDryRun(dryRun bool) func(*BackfillerOptions) {
	return func(o *BackfillerOptions) {
		o.DryRun = dryRun
	}
}

// NewBackfiller creates a Backfiller over the given trips table client and
// broker resolver.
func NewBackfiller(client Client, resolver BrokerResolver, optFns ...func(*BackfillerOptions)) *Backfiller {
	o := &BackfillerOptions{
		Clock:  clock.RealClock{},
		Writer: os.Stdout,
	}
	for _, opt := range optFns {
		opt(o)
	}
	return &Backfiller{
		client:   client,
		resolver: resolver,
		clock:    o.Clock,
		writer:   o.Writer,
		dryRun:   o.DryRun,
	}
}

// Backfiller writes resolved broker display names onto trip records that only
// carry a broker ID. It processes the table in a single sequential pass;
// failures on individual records are recorded and never abort the run.
type Backfiller struct {
	client   Client
	resolver BrokerResolver
	clock    clock.Clock
	writer   io.Writer
	dryRun   bool
}

// BackfillResult represents the outcome of a backfill run.
type BackfillResult struct {
	// Updated is the number of trip records whose brokerName was written
	// (or, in dry-run mode, would have been written).
	Updated int `json:"updated"`
	// Failed is the number of trip records that could not be updated, either
	// because the broker ID is unknown or because the update call failed.
	Failed int `json:"failed"`
	// Failures records the reason for each failed record.
	Failures []BackfillFailure `json:"failures,omitempty"`
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed"`
}

// BackfillFailure describes a single trip record that could not be updated.
type BackfillFailure struct {
	TripID   string `json:"trip_id"`
	BrokerID string `json:"broker_id"`
	Error    error  `json:"error"`
}

// Run scans every trip record, resolves its broker ID, and writes the
// resolved display name back. Records with an unknown broker ID are skipped
// with a warning; update failures are logged and counted. Updated plus Failed
// always equals the number of scanned records. Running twice is idempotent:
// the second run re-sets identical values.
//
// A scan failure aborts the run with an error. Per-record failures never do.
func (b *Backfiller) Run(ctx context.Context) (*BackfillResult, error) {
	start := b.clock.Now()

	fmt.Fprintln(b.writer, "Fetching all trips...")
	out, err := b.client.ListTrips(ctx, &ListTripsInput{})
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(b.writer, "Found %d trips to update\n", len(out.Trips))

	result := &BackfillResult{}
	for _, trip := range out.Trips {
		brokerName, ok := b.resolver.ResolveBrokerName(trip.BrokerID)
		if !ok {
			fmt.Fprintf(b.writer, "⚠ Warning: No broker name found for %s in trip %s\n", trip.BrokerID, trip.TripID)
			result.Failed++
			result.Failures = append(result.Failures, BackfillFailure{
				TripID:   trip.TripID,
				BrokerID: trip.BrokerID,
				Error:    fmt.Errorf("no broker name found for %s", trip.BrokerID),
			})
			continue
		}

		fmt.Fprintf(b.writer, "Updating trip %s with broker: %s\n", trip.TripID, brokerName)
		if b.dryRun {
			result.Updated++
			continue
		}

		_, updateErr := b.client.UpdateBrokerName(ctx, &UpdateBrokerNameInput{
			TripID:     trip.TripID,
			BrokerName: brokerName,
		})
		if updateErr != nil {
			fmt.Fprintf(b.writer, "✗ Failed: %s - %v\n", trip.TripID, updateErr)
			result.Failed++
			result.Failures = append(result.Failures, BackfillFailure{
				TripID:   trip.TripID,
				BrokerID: trip.BrokerID,
				Error:    updateErr,
			})
			continue
		}
		fmt.Fprintf(b.writer, "✓ Updated: %s\n", trip.TripID)
		result.Updated++
	}

	result.Elapsed = b.clock.Now().Sub(start)
	fmt.Fprintf(b.writer, "Updated: %d trips\n", result.Updated)
	fmt.Fprintf(b.writer, "Failed: %d trips\n", result.Failed)
	return result, nil
}
