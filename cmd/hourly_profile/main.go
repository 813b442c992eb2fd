package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/angas/solarpanel-go/config"
	"github.com/angas/solarpanel-go/hours"
	"github.com/angas/solarpanel-go/predict"
	"github.com/angas/solarpanel-go/pv"
	"github.com/angas/solarpanel-go/sapm"
	"github.com/angas/solarpanel-go/solar"
	"github.com/lmittmann/tint"
)

// Prints the step by step irradiance, cell temperature and power of one
// reference panel for a single day, using the location and module from config.
func main() {
	configPath := flag.String("config", "", "path to config file")
	date := flag.String("date", time.Now().Format("2006-01-02"), "day to print")
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339Nano,
	}))

	cnfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	catalog, err := sapm.NewCatalog(cnfg.SapmModules)
	if err != nil {
		panic(err)
	}
	module, err := catalog.Lookup(cnfg.Prediction.SapmModule)
	if err != nil {
		panic(err)
	}

	loc, err := solar.NewLocation(cnfg.Location.Latitude, cnfg.Location.Longitude, cnfg.Location.Altitude, cnfg.Location.GetTimezone())
	if err != nil {
		panic(err)
	}

	start, err := hours.ParseInLocation(*date, loc.Timezone())
	if err != nil {
		panic(err)
	}
	step, err := cnfg.Prediction.GetStep()
	if err != nil {
		panic(err)
	}

	model := solar.NewModel(loc, cnfg.Prediction.GetLinkeTurbidity(), cnfg.Prediction.GetAlbedo())
	res, err := predict.New(logger, pv.New(cnfg.ReferenceModule), model).PredictPanelArea(predict.Request{
		RequiredKWh:    cnfg.Prediction.RequiredKWh,
		Start:          start,
		End:            start.AddDate(0, 0, 1).Add(-step),
		Step:           step,
		SurfaceTilt:    cnfg.Prediction.SurfaceTilt,
		SurfaceAzimuth: cnfg.Prediction.SurfaceAzimuth,
		Module:         module,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s, %s\n", model.Location(), module.Label())
	for i, ts := range res.Timestamps {
		fmt.Printf("%s  poa: %7.1f W/m²  cell: %5.1f °C  power: %6.1f W\n",
			ts.Format("2006-01-02 15:04"), res.PoaIrradiance[i], res.CellTemperature[i], res.WhOutput[i])
	}
	fmt.Printf("total: %.2f kWh\n", res.TotalKWhOutput)
}
