package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dklimov/pointctl/internal/point"
	"github.com/dklimov/pointctl/internal/render"
	"github.com/dklimov/pointctl/internal/services"
)

// sensorCommand describes one sensor-reading subcommand; the whole family
// shares the same resolve-request-render flow.
type sensorCommand struct {
	use     string
	aliases []string
	label   string
	sensor  point.Sensor
}

var sensorCommands = []sensorCommand{
	{use: "temp", label: "Temperature", sensor: point.SensorTemperature},
	{use: "humidity", label: "Humidity", sensor: point.SensorHumidity},
	{use: "sound", aliases: []string{"noise"}, label: "Sound", sensor: point.SensorSound},
	{use: "light", aliases: []string{"ambient"}, label: "Light", sensor: point.SensorLight},
	{use: "lightir", aliases: []string{"ambientir"}, label: "Light IR", sensor: point.SensorLightIR},
	{use: "pressure", label: "Pressure", sensor: point.SensorPressure},
}

func (a *App) newSensorCmd(sc sensorCommand) *cobra.Command {
	return &cobra.Command{
		Use:     sc.use + " [device]",
		Aliases: sc.aliases,
		Short:   fmt.Sprintf("Show the latest %s reading", sc.label),
		Long: fmt.Sprintf("Shows the most recent %s sample of a device. The device is matched\n"+
			"by exact name against the cached list; without a name (or without a\n"+
			"match) the first cached device is used.", sc.label),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return a.runSensor(cmd, sc, name)
		},
	}
}

func (a *App) runSensor(cmd *cobra.Command, sc sensorCommand, name string) error {
	ctx := cmd.Context()

	client, err := a.authedClient()
	if err != nil {
		return err
	}

	device, err := services.NewDeviceService(client, a.store).Resolve(name)
	if err != nil {
		return err
	}
	a.log.Debug(ctx, "resolved device", "id", device.ID, "name", device.Name)

	result, err := services.NewReadingService(client).Latest(ctx, device.ID, sc.sensor)
	if err != nil {
		if a.debug && result.Raw != nil {
			a.dumpRaw(result.Raw)
		}
		return err
	}
	if a.debug {
		a.dumpRaw(result.Raw)
		return nil
	}
	fmt.Fprintln(a.out, render.LatestSample(sc.label, sc.sensor, result.Sample))
	return nil
}
