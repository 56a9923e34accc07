package services

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dklimov/pointctl/internal/models"
	"github.com/dklimov/pointctl/internal/point"
	"github.com/dklimov/pointctl/internal/store"
)

// ---- helpers ----

func tempStore(t *testing.T) *store.FileStore {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), "config.json"))
}

// ---- fake client ----

// fakeClient implements point.Client for unit tests.
type fakeClient struct {
	TokenRet string
	TokenErr error

	DevicesRet point.DevicesResult
	DevicesErr error

	ValuesRet point.ValuesResult
	ValuesErr error

	EventsRet point.EventsResult
	EventsErr error

	LastSensor   point.Sensor
	LastDeviceID string
	LastLimit    int
}

func (f *fakeClient) Token(ctx context.Context, clientID, username, password string) (string, error) {
	return f.TokenRet, f.TokenErr
}

func (f *fakeClient) Devices(ctx context.Context) (point.DevicesResult, error) {
	return f.DevicesRet, f.DevicesErr
}

func (f *fakeClient) SensorValues(ctx context.Context, deviceID string, sensor point.Sensor) (point.ValuesResult, error) {
	f.LastDeviceID = deviceID
	f.LastSensor = sensor
	return f.ValuesRet, f.ValuesErr
}

func (f *fakeClient) Events(ctx context.Context, limit int) (point.EventsResult, error) {
	f.LastLimit = limit
	return f.EventsRet, f.EventsErr
}

// ---- auth ----

func TestAuthenticateStoresToken(t *testing.T) {
	s := tempStore(t)
	svc := NewAuthService(&fakeClient{TokenRet: "tok-123"}, s)

	require.NoError(t, svc.Authenticate(context.Background(), "client-1", "user", "pw"))

	token, ok, err := s.Token()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "tok-123", token)
}

func TestAuthenticateFailureLeavesStoreUntouched(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.SetToken("old-token"))

	svc := NewAuthService(&fakeClient{TokenErr: errors.New("invalid password")}, s)
	err := svc.Authenticate(context.Background(), "client-1", "user", "wrong")
	require.Error(t, err)

	token, ok, err := s.Token()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "old-token", token)
}

func TestLogoutClearsStore(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.SetToken("tok"))
	require.NoError(t, s.SetDevices([]models.DeviceRecord{{ID: "a", Name: "Kitchen"}}))

	svc := NewAuthService(&fakeClient{}, s)
	require.NoError(t, svc.Logout())

	_, ok, err := s.Token()
	require.NoError(t, err)
	require.False(t, ok)
}

// ---- device refresh / resolve ----

func TestRefreshOverwritesCache(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.SetDevices([]models.DeviceRecord{{ID: "old", Name: "Attic"}}))

	client := &fakeClient{DevicesRet: point.DevicesResult{
		Devices: []models.DeviceStatus{
			{ID: "dev-1", Name: "Kitchen"},
			{ID: "dev-2", Name: "Bedroom"},
		},
	}}
	devices, err := NewDeviceService(client, s).Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, []models.DeviceRecord{
		{ID: "dev-1", Name: "Kitchen"},
		{ID: "dev-2", Name: "Bedroom"},
	}, devices)

	cached, err := s.Devices()
	require.NoError(t, err)
	require.Equal(t, devices, cached)
}

func TestRefreshFailureLeavesCacheUnchanged(t *testing.T) {
	s := tempStore(t)
	before := []models.DeviceRecord{{ID: "old", Name: "Attic"}}
	require.NoError(t, s.SetDevices(before))

	client := &fakeClient{DevicesErr: errors.New("boom")}
	_, err := NewDeviceService(client, s).Refresh(context.Background())
	require.Error(t, err)

	cached, err := s.Devices()
	require.NoError(t, err)
	require.Equal(t, before, cached)
}

func TestResolve(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.SetDevices([]models.DeviceRecord{
		{ID: "dev-1", Name: "Hallway"},
		{ID: "dev-2", Name: "Kitchen"},
	}))
	svc := NewDeviceService(&fakeClient{}, s)

	tests := []struct {
		name   string
		lookup string
		wantID string
	}{
		{name: "exact match", lookup: "Kitchen", wantID: "dev-2"},
		{name: "no match falls back to first", lookup: "Nonexistent", wantID: "dev-1"},
		{name: "absent name falls back to first", lookup: "", wantID: "dev-1"},
		{name: "match is case-sensitive", lookup: "kitchen", wantID: "dev-1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Resolve(tc.lookup)
			require.NoError(t, err)
			require.Equal(t, tc.wantID, got.ID)
		})
	}
}

func TestResolveEmptyCache(t *testing.T) {
	svc := NewDeviceService(&fakeClient{}, tempStore(t))
	_, err := svc.Resolve("Kitchen")
	require.ErrorIs(t, err, ErrNoDevices)
}

// ---- readings ----

func TestLatestPicksLastSample(t *testing.T) {
	client := &fakeClient{ValuesRet: point.ValuesResult{
		Samples: []models.SensorSample{
			{Value: 19.2},
			{Value: 19.8},
		},
		Raw: json.RawMessage(`{"values":[]}`),
	}}

	result, err := NewReadingService(client).Latest(context.Background(), "dev-1", point.SensorTemperature)
	require.NoError(t, err)
	require.Equal(t, 19.8, result.Sample.Value)
	require.Equal(t, "dev-1", client.LastDeviceID)
	require.Equal(t, point.SensorTemperature, client.LastSensor)
}

func TestLatestEmptySequence(t *testing.T) {
	client := &fakeClient{ValuesRet: point.ValuesResult{}}
	_, err := NewReadingService(client).Latest(context.Background(), "dev-1", point.SensorHumidity)
	require.ErrorIs(t, err, ErrNoData)
}

func TestTimelinePassesLimit(t *testing.T) {
	client := &fakeClient{EventsRet: point.EventsResult{
		Events: []models.TimelineEvent{{Type: "door:opened"}},
	}}

	result, err := NewReadingService(client).Timeline(context.Background(), 25)
	require.NoError(t, err)
	require.Len(t, result.Events, 1)
	require.Equal(t, 25, client.LastLimit)
}
