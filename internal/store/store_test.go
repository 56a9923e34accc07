package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dklimov/pointctl/internal/models"
)

func tempStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	return New(path), path
}

func TestTokenRoundTrip(t *testing.T) {
	s, path := tempStore(t)

	_, ok, err := s.Token()
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.SetToken("secret-token"))

	// A fresh store over the same file must see the persisted value.
	reopened := New(path)
	token, ok, err := reopened.Token()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "secret-token", token)
}

func TestDevicesRoundTrip(t *testing.T) {
	s, path := tempStore(t)

	devices := []models.DeviceRecord{
		{ID: uuid.NewString(), Name: "Kitchen"},
		{ID: uuid.NewString(), Name: "Bedroom"},
	}
	require.NoError(t, s.SetDevices(devices))

	got, err := New(path).Devices()
	require.NoError(t, err)
	require.Equal(t, devices, got)
}

func TestDevicesMissingKey(t *testing.T) {
	s, _ := tempStore(t)
	got, err := s.Devices()
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSetDevicesOverwrites(t *testing.T) {
	s, path := tempStore(t)

	first := []models.DeviceRecord{
		{ID: "a", Name: "Kitchen"},
		{ID: "b", Name: "Hallway"},
	}
	second := []models.DeviceRecord{
		{ID: "c", Name: "Garage"},
	}
	require.NoError(t, s.SetDevices(first))
	require.NoError(t, s.SetDevices(second))

	// Full overwrite: nothing from the first list may survive.
	got, err := New(path).Devices()
	require.NoError(t, err)
	require.Equal(t, second, got)
}

func TestClearRemovesEverything(t *testing.T) {
	s, path := tempStore(t)

	require.NoError(t, s.SetToken("secret-token"))
	require.NoError(t, s.SetDevices([]models.DeviceRecord{{ID: "a", Name: "Kitchen"}}))
	require.NoError(t, s.Clear())

	reopened := New(path)
	_, ok, err := reopened.Token()
	require.NoError(t, err)
	require.False(t, ok)

	devices, err := reopened.Devices()
	require.NoError(t, err)
	require.Empty(t, devices)
}

func TestSetWritesDurably(t *testing.T) {
	s, path := tempStore(t)
	require.NoError(t, s.SetToken("secret-token"))

	// The file must exist on disk immediately after Set returns.
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, _, err := New(path).Token()
	require.Error(t, err)
}
