package mock

import (
	"context"
	"errors"
	"time"

	"github.com/haulhub/tripops"
)

var ErrNotImplemented = errors.New("not implemented")

type Client struct {
	ListTripsFunc        func(ctx context.Context, params *tripops.ListTripsInput) (*tripops.ListTripsOutput, error)
	GetTripFunc          func(ctx context.Context, params *tripops.GetTripInput) (*tripops.GetTripOutput, error)
	UpdateBrokerNameFunc func(ctx context.Context, params *tripops.UpdateBrokerNameInput) (*tripops.UpdateBrokerNameOutput, error)
}

func (m Client) ListTrips(ctx context.Context, params *tripops.ListTripsInput) (*tripops.ListTripsOutput, error) {
	if m.ListTripsFunc != nil {
		return m.ListTripsFunc(ctx, params)
	}
	return nil, ErrNotImplemented
}

func (m Client) GetTrip(ctx context.Context, params *tripops.GetTripInput) (*tripops.GetTripOutput, error) {
	if m.GetTripFunc != nil {
		return m.GetTripFunc(ctx, params)
	}
	return nil, ErrNotImplemented
}

func (m Client) UpdateBrokerName(ctx context.Context, params *tripops.UpdateBrokerNameInput) (*tripops.UpdateBrokerNameOutput, error) {
	if m.UpdateBrokerNameFunc != nil {
		return m.UpdateBrokerNameFunc(ctx, params)
	}
	return nil, ErrNotImplemented
}

type BrokerResolver struct {
	ResolveBrokerNameFunc func(brokerID string) (string, bool)
}

func (m BrokerResolver) ResolveBrokerName(brokerID string) (string, bool) {
	if m.ResolveBrokerNameFunc != nil {
		return m.ResolveBrokerNameFunc(brokerID)
	}
	return "", false
}

type Clock struct {
	T time.Time
}

func (m Clock) Now() time.Time {
	return m.T
}
