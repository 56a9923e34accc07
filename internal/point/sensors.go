package point

// Sensor identifies one of the Point device's measurement endpoints. The
// value is the path segment used by the API.
type Sensor string

const (
	SensorTemperature Sensor = "temperature"
	SensorHumidity    Sensor = "humidity"
	SensorSound       Sensor = "sound_avg_levels"
	SensorLight       Sensor = "part_als"
	SensorLightIR     Sensor = "part_als_ir"
	SensorPressure    Sensor = "pressure"
)
