// Package predict estimates how much panel area is needed to harvest a given
// amount of energy at a site over a period of clear-sky days.
package predict

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/angas/solarpanel-go/config"
	"github.com/angas/solarpanel-go/convert"
	"github.com/angas/solarpanel-go/hours"
	"github.com/angas/solarpanel-go/pv"
	"github.com/angas/solarpanel-go/sapm"
	"github.com/angas/solarpanel-go/solar"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Wind speed fed to the thermal model, m/s.
const windSpeed = 1.0

var (
	ErrInvalidRequest = errors.New("invalid prediction request")
	ErrNoEnergyOutput = errors.New("panel produces no energy in the requested range")
)

// SolarModel provides sun position and irradiance for a fixed site.
type SolarModel interface {
	Timezone() *time.Location
	Position(t time.Time) solar.Position
	ClearSky(t time.Time, pos solar.Position) solar.Irradiance
	PlaneOfArray(surfaceTilt, surfaceAzimuth float64, pos solar.Position, irr solar.Irradiance) solar.POA
}

type Request struct {
	RequiredKWh    float64
	Start          time.Time
	End            time.Time // Included
	Step           time.Duration
	SurfaceTilt    float64 // Degrees from horizontal
	SurfaceAzimuth float64 // Degrees clockwise from north
	Module         sapm.Module
}

func (r Request) validate() error {
	if !isFinite(r.RequiredKWh) || r.RequiredKWh < 0 {
		return fmt.Errorf("%w: required energy %v kWh", ErrInvalidRequest, r.RequiredKWh)
	}
	if !isFinite(r.SurfaceTilt) || !isFinite(r.SurfaceAzimuth) {
		return fmt.Errorf("%w: surface tilt %v, azimuth %v", ErrInvalidRequest, r.SurfaceTilt, r.SurfaceAzimuth)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

type Result struct {
	// PanelArea is the area of one reference panel, a constant and not a
	// prediction. TotalArea holds the predicted area. WhOutput is the power in W
	// at each timestamp, the energy of a sample in Wh only for a one hour step.
	PanelArea       float64
	TotalArea       float64 // m² needed to reach the required energy
	TotalKWhOutput  float64 // Energy from one reference panel over the range
	WhOutput        []float64
	CellTemperature []float64
	Timestamps      []time.Time
	PoaIrradiance   []float64
}

type Predictor struct {
	logger    *slog.Logger
	calc      *pv.Calculator
	model     SolarModel
	reference config.AppConfigReferenceModule
}

func New(logger *slog.Logger, calc *pv.Calculator, model SolarModel) *Predictor {
	return &Predictor{
		logger:    logger,
		calc:      calc,
		model:     model,
		reference: calc.Module(),
	}
}

// PredictPanelArea evaluates one reference panel over the requested range and
// scales its area linearly to the required energy.
func (p *Predictor) PredictPanelArea(req Request) (Result, error) {
	logger := p.logger.With(slog.String("run", uuid.NewString()))

	if err := req.validate(); err != nil {
		return Result{}, err
	}
	step := req.Step
	if step == 0 {
		step = time.Hour
	}

	tz := p.model.Timezone()
	times, err := hours.Range(req.Start.In(tz), req.End.In(tz), step)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	logger.Debug("predicting panel area",
		slog.String("module", req.Module.Label()),
		slog.Time("start", times[0]),
		slog.Time("end", times[len(times)-1]),
		slog.Int("steps", len(times)))

	poa := make([]float64, len(times))
	for i, t := range times {
		pos := p.model.Position(t)
		irr := p.model.ClearSky(t, pos)
		poa[i] = p.model.PlaneOfArray(req.SurfaceTilt, req.SurfaceAzimuth, pos, irr).Global
	}

	// No weather data, the air is assumed to stay at the reference temperature
	airTemperature := p.reference.ReferenceTemperature
	cellTemperature := sapm.CellTemperatures(poa, airTemperature, windSpeed, req.Module)

	power := p.calc.PowerOutputSeries(poa, cellTemperature)

	// Every sample stands for one step of constant power
	totalKWh := convert.WattHoursToKWh(floats.Sum(power) * convert.StepHours(step))
	if !(totalKWh > 0) || math.IsInf(totalKWh, 0) {
		logger.Warn("no energy output", slog.Float64("totalKWh", totalKWh))
		return Result{}, fmt.Errorf("%w: total output %f kWh between %s and %s", ErrNoEnergyOutput, totalKWh,
			times[0].Format(time.RFC3339), times[len(times)-1].Format(time.RFC3339))
	}

	totalArea := req.RequiredKWh / totalKWh * p.reference.SinglePanelArea

	logger.Info("panel area predicted",
		slog.Float64("totalKWh", convert.TwoDecimals(totalKWh)),
		slog.Float64("totalArea", convert.TwoDecimals(totalArea)),
		slog.Float64("peakW", convert.TwoDecimals(floats.Max(power))),
		slog.Float64("meanCellTemperature", convert.TwoDecimals(stat.Mean(cellTemperature, nil))))

	return Result{
		PanelArea:       p.reference.SinglePanelArea,
		TotalArea:       totalArea,
		TotalKWhOutput:  totalKWh,
		WhOutput:        power,
		CellTemperature: cellTemperature,
		Timestamps:      times,
		PoaIrradiance:   poa,
	}, nil
}
