package services

import (
	"context"
	"encoding/json"

	"github.com/dklimov/pointctl/internal/models"
	"github.com/dklimov/pointctl/internal/point"
)

// LatestResult is the most recent sample of a sensor plus the raw API
// response for debug output.
type LatestResult struct {
	Sample models.SensorSample
	Raw    json.RawMessage
}

// TimelineResult is a newest-first event list plus the raw API response.
type TimelineResult struct {
	Events []models.TimelineEvent
	Raw    json.RawMessage
}

// ReadingService fetches sensor values and the event timeline.
//
// Contract:
//   - Latest: fetch the sample sequence for one sensor and return the last
//     element, which the API guarantees to be the most recent (samples
//     arrive in chronological ascending order; this is not re-validated
//     locally). An empty sequence yields ErrNoData.
//   - Timeline: fetch the newest limit events, newest first.
type ReadingService interface {
	Latest(ctx context.Context, deviceID string, sensor point.Sensor) (LatestResult, error)
	Timeline(ctx context.Context, limit int) (TimelineResult, error)
}

type readingService struct {
	client point.Client
}

// NewReadingService constructs a ReadingService over an authenticated API
// client. Readings are never cached.
func NewReadingService(client point.Client) ReadingService {
	return &readingService{client: client}
}

func (s *readingService) Latest(ctx context.Context, deviceID string, sensor point.Sensor) (LatestResult, error) {
	result, err := s.client.SensorValues(ctx, deviceID, sensor)
	if err != nil {
		return LatestResult{}, err
	}
	if len(result.Samples) == 0 {
		return LatestResult{Raw: result.Raw}, ErrNoData
	}
	return LatestResult{
		Sample: result.Samples[len(result.Samples)-1],
		Raw:    result.Raw,
	}, nil
}

func (s *readingService) Timeline(ctx context.Context, limit int) (TimelineResult, error) {
	result, err := s.client.Events(ctx, limit)
	if err != nil {
		return TimelineResult{}, err
	}
	return TimelineResult{Events: result.Events, Raw: result.Raw}, nil
}
