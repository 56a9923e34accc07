package services

import (
	"context"
	"fmt"

	"github.com/dklimov/pointctl/internal/models"
	"github.com/dklimov/pointctl/internal/point"
)

// DeviceStore is the part of the persistent store the device services need.
type DeviceStore interface {
	Devices() ([]models.DeviceRecord, error)
	SetDevices(devices []models.DeviceRecord) error
}

// DeviceService maintains and queries the local device cache.
//
// Contract:
//   - Refresh: download the device list and replace the cache wholesale;
//     on any failure the cache is left unchanged.
//   - Resolve: exact name match against the cache, first match wins; an
//     absent or unmatched name falls back to the first cached device; an
//     empty cache yields ErrNoDevices.
//   - List: the live device listing straight from the API, bypassing the
//     cache.
type DeviceService interface {
	Refresh(ctx context.Context) ([]models.DeviceRecord, error)
	Resolve(name string) (models.DeviceRecord, error)
	List(ctx context.Context) (point.DevicesResult, error)
}

type deviceService struct {
	client point.Client
	store  DeviceStore
}

// NewDeviceService constructs a DeviceService bound to an authenticated
// API client and the persistent store.
func NewDeviceService(client point.Client, store DeviceStore) DeviceService {
	return &deviceService{client: client, store: store}
}

func (s *deviceService) Refresh(ctx context.Context) ([]models.DeviceRecord, error) {
	result, err := s.client.Devices(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]models.DeviceRecord, 0, len(result.Devices))
	for _, d := range result.Devices {
		records = append(records, models.DeviceRecord{ID: d.ID, Name: d.Name})
	}

	if err := s.store.SetDevices(records); err != nil {
		return nil, fmt.Errorf("saving device cache: %w", err)
	}
	return records, nil
}

func (s *deviceService) Resolve(name string) (models.DeviceRecord, error) {
	devices, err := s.store.Devices()
	if err != nil {
		return models.DeviceRecord{}, err
	}
	if len(devices) == 0 {
		return models.DeviceRecord{}, ErrNoDevices
	}
	if name != "" {
		for _, d := range devices {
			if d.Name == name {
				return d, nil
			}
		}
	}
	// No match (or no name given): default to the first cached device.
	return devices[0], nil
}

func (s *deviceService) List(ctx context.Context) (point.DevicesResult, error) {
	return s.client.Devices(ctx)
}
