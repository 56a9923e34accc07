package services

import "errors"

var (
	// ErrNoDevices means the local device cache is empty, so there is
	// nothing to resolve a reading against.
	ErrNoDevices = errors.New("no devices cached; run 'pointctl fetch'")

	// ErrNoData means the API returned an empty sample sequence for the
	// requested sensor.
	ErrNoData = errors.New("no data available")

	// ErrNotAuthenticated means no bearer token is cached locally.
	ErrNotAuthenticated = errors.New("not authenticated; run 'pointctl auth'")
)
