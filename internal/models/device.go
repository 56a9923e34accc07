package models

// DeviceRecord is the locally cached view of a Point device: just enough to
// address it in API paths and to resolve it by its human-readable name.
// Records are immutable between device refreshes; the cached list preserves
// API response order.
type DeviceRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
