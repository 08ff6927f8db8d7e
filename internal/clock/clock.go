package clock

import "time"

func Now() time.Time {
	return time.Now().UTC()
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (m RealClock) Now() time.Time {
	return Now()
}
