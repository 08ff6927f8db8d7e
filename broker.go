package tripops

// BrokerResolver resolves a broker ID to its human-readable display name.
// Implementations report whether the ID is known via the second return value.
type BrokerResolver interface {
	ResolveBrokerName(brokerID string) (string, bool)
}

// DefaultBrokerNames returns the display names of the brokers currently
// onboarded, keyed by broker ID. The table is maintained by hand; broker
// IDs are assigned by the trip-management service.
func DefaultBrokerNames() map[string]string {
	return map[string]string{
		"broker-001": "C.H. Robinson",
		"broker-002": "XPO Logistics",
		"broker-003": "TQL (Total Quality Logistics)",
		"broker-004": "Coyote Logistics",
		"broker-005": "Echo Global Logistics",
		"broker-006": "Landstar System",
		"broker-007": "J.B. Hunt Transport Services",
		"broker-008": "Schneider National",
		"broker-009": "Werner Enterprises",
		"broker-010": "Knight-Swift Transportation",
		"broker-011": "Hub Group",
		"broker-012": "Transplace",
		"broker-013": "Arrive Logistics",
		"broker-014": "GlobalTranz",
		"broker-015": "Convoy",
		"broker-016": "Uber Freight",
		"broker-017": "Loadsmart",
		"broker-018": "Freightos",
		"broker-019": "Flexport",
		"broker-020": "Redwood Logistics",
	}
}

// StaticBrokerResolver is a BrokerResolver over a fixed in-memory table.
type StaticBrokerResolver struct {
	names map[string]string
}

// NewStaticBrokerResolver returns a resolver over the given table.
// Pass DefaultBrokerNames() for the standard broker set.
func NewStaticBrokerResolver(names map[string]string) *StaticBrokerResolver {
	return &StaticBrokerResolver{names: names}
}

func (r *StaticBrokerResolver) ResolveBrokerName(brokerID string) (string, bool) {
	name, ok := r.names[brokerID]
	return name, ok
}
