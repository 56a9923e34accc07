package models

import "time"

// SensorSample is a single timestamped sensor measurement. Samples are
// fetched per request and never cached.
type SensorSample struct {
	Value     float64
	Timestamp time.Time
}

// TimelineEvent is one entry of the device event timeline. DeviceLabel is
// the first text parameter of the upstream event, which carries the name of
// the device the event relates to; it is empty when the event has no
// parameters.
type TimelineEvent struct {
	Type        string
	CreatedAt   time.Time
	DeviceLabel string
}

// DeviceStatus is the live device-listing view, richer than the cached
// DeviceRecord: it carries connectivity and activity state straight from
// the API.
type DeviceStatus struct {
	ID          string
	Name        string
	Offline     bool
	Active      bool
	LastHeardAt time.Time
}
