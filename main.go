package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/angas/solarpanel-go/config"
	"github.com/angas/solarpanel-go/convert"
	"github.com/angas/solarpanel-go/database"
	"github.com/angas/solarpanel-go/hours"
	"github.com/angas/solarpanel-go/logging"
	"github.com/angas/solarpanel-go/predict"
	"github.com/angas/solarpanel-go/pv"
	"github.com/angas/solarpanel-go/sapm"
	"github.com/angas/solarpanel-go/solar"
	"github.com/lmittmann/tint"
)

var Version = "?.?.?"

func main() {
	defer func() {
		if err := recover(); err != nil {
			exitWithError(slog.Default(), fmt.Errorf("application panicked: %v", err))
		}
	}()

	configPath := flag.String("config", "", "path to config file")
	listModules := flag.Bool("list-modules", false, "list the available SAPM modules and exit")
	flag.Parse()

	cnfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consoleHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cnfg.Logging.GetConsoleLevel(),
		TimeFormat: time.RFC3339,
	})
	logger := slog.New(consoleHandler)
	slog.SetDefault(logger)
	logger.Debug("solarpanel is starting...", slog.String("version", Version))

	if cnfg.Database.Path != "" {
		db, err := database.New(ctx, cnfg.Database.Path)
		if err != nil {
			panic(fmt.Sprintf("failed to connect to database: %v", err))
		}
		defer db.Close()

		logger = slog.New(logging.NewMultiHandler(
			consoleHandler,
			logging.NewSQLiteHandler(db, cnfg.Logging.GetDbLevel(), cnfg.Logging.GetDbAttrsFormat())))
		slog.SetDefault(logger)
		db.SetLogger(logger.With("module", "database"))
		logger.Debug("logging to database", slog.String("path", db.Path()))

		if err := db.PurgeLog(ctx, cnfg.Logging.GetDbMaxEntries()); err != nil {
			logger.Warn("failed to purge log", slog.Any("error", err))
		}
	}

	catalog, err := sapm.NewCatalog(cnfg.SapmModules)
	if err != nil {
		panic(fmt.Sprintf("invalid sapm module catalog: %v", err))
	}

	if *listModules {
		for _, m := range catalog.Modules() {
			fmt.Printf("%-45s a: %6.2f  b: %7.4f  deltaT: %2.0f\n", m.Label(), m.A, m.B, m.DeltaT)
		}
		return
	}

	if err := run(logger, cnfg, catalog); err != nil {
		exitWithError(logger, err)
	}
}

func run(logger *slog.Logger, cnfg *config.AppConfig, catalog *sapm.Catalog) error {
	module, err := catalog.Lookup(cnfg.Prediction.SapmModule)
	if err != nil {
		return fmt.Errorf("%w, available: %s", err, strings.Join(catalog.Labels(), "; "))
	}

	loc, err := solar.NewLocation(
		cnfg.Location.Latitude,
		cnfg.Location.Longitude,
		cnfg.Location.Altitude,
		cnfg.Location.GetTimezone())
	if err != nil {
		return err
	}

	start, err := hours.ParseInLocation(cnfg.Prediction.Start, loc.Timezone())
	if err != nil {
		return fmt.Errorf("prediction start: %w", err)
	}
	end, err := hours.ParseInLocation(cnfg.Prediction.End, loc.Timezone())
	if err != nil {
		return fmt.Errorf("prediction end: %w", err)
	}
	step, err := cnfg.Prediction.GetStep()
	if err != nil {
		return err
	}

	model := solar.NewModel(loc, cnfg.Prediction.GetLinkeTurbidity(), cnfg.Prediction.GetAlbedo())
	predictor := predict.New(logger.With("module", "predict"), pv.New(cnfg.ReferenceModule), model)

	res, err := predictor.PredictPanelArea(predict.Request{
		RequiredKWh:    cnfg.Prediction.RequiredKWh,
		Start:          start,
		End:            end,
		Step:           step,
		SurfaceTilt:    cnfg.Prediction.SurfaceTilt,
		SurfaceAzimuth: cnfg.Prediction.SurfaceAzimuth,
		Module:         module,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Location:           %s\n", loc)
	fmt.Printf("Module:             %s\n", module.Label())
	fmt.Printf("Range:              %s - %s (%d steps)\n",
		start.Format(time.RFC3339), end.Format(time.RFC3339), len(res.Timestamps))
	fmt.Printf("Panel area:         %.2f m²\n", res.PanelArea)
	fmt.Printf("Output per panel:   %.2f kWh\n", res.TotalKWhOutput)
	fmt.Printf("Required energy:    %.2f kWh\n", cnfg.Prediction.RequiredKWh)
	fmt.Printf("Required area:      %.2f m²\n", convert.TwoDecimals(res.TotalArea))
	return nil
}

func exitWithError(logger *slog.Logger, err error) {
	if err != nil {
		logger.Error("application shutting down with error", slog.Any("error", err))
	}
	os.Exit(1)
}
