// Package forecast turns an hourly weather series into per-hour solar
// irradiance predictions with confidence scores.
package forecast

import (
	"fmt"
	"math"

	"github.com/heliocast/heliocast/internal/types"
	"github.com/heliocast/heliocast/pkg/atmosphere"
	"github.com/heliocast/heliocast/pkg/config"
	"github.com/heliocast/heliocast/pkg/solar"
)

// Engine composes the solar-position, clear-sky, cloud, aerosol and
// decomposition models over a weather series. It holds only tunable
// model constants; every method is a pure function of its inputs.
type Engine struct {
	model config.ModelParams
}

// NewEngine creates an engine with the given model constants.
func NewEngine(model config.ModelParams) *Engine {
	return &Engine{model: model}
}

// Forecast predicts irradiance for every sample of the series, in input
// order. It fails only on structurally invalid coordinates; per-sample
// arithmetic is fully guarded and cannot error. An empty series yields
// an empty forecast.
func (e *Engine) Forecast(loc types.Location, series types.Series) ([]types.ForecastPoint, error) {
	if err := loc.Validate(); err != nil {
		return nil, fmt.Errorf("forecast rejected: %w", err)
	}

	points := make([]types.ForecastPoint, len(series))
	for i := range series {
		points[i] = e.forecastHour(loc, series, i)
	}
	return points, nil
}

// forecastHour runs the per-sample model chain. The observed shortwave
// radiation is the baseline that the derived cloud and aerosol factors
// scale; the clear-sky figure feeds only the decomposition's clearness
// index. The upstream radiation is itself already cloud-affected, so
// cloud attenuation is effectively applied twice. That matches the
// long-standing behavior of this model and is kept for output parity;
// see DESIGN.md before changing it.
func (e *Engine) forecastHour(loc types.Location, series types.Series, i int) types.ForecastPoint {
	s := series[i]
	pos := solar.CalculatePosition(s.Time, loc.Latitude, loc.Longitude)

	// Night: irradiance is confidently zero, skip the atmosphere chain
	if pos.ElevationDeg < 0 {
		return types.ForecastPoint{
			Time:           s.Time,
			Confidence:     NightConfidence,
			SolarElevation: pos.ElevationDeg,
		}
	}

	clearSky := solar.CalculateClearSkyGHI(pos.ElevationDeg, pos.ZenithDeg)
	cloudFactor := atmosphere.CloudImpact(s.CloudCover, s.Temperature)
	aerosolFactor := atmosphere.AerosolTransmission(pos.ElevationDeg)

	predictedGHI := s.ShortwaveRadiation * cloudFactor * aerosolFactor

	// Panel output drops with cell temperature above the reference point
	tempLossFactor := 1.0 + e.model.TempCoefficient*math.Max(0, s.Temperature-e.model.ReferenceTemp)

	predicted := predictedGHI * e.model.SystemEfficiency * tempLossFactor
	if predicted < 0 {
		predicted = 0
	}

	components := atmosphere.Decompose(predictedGHI, pos.ElevationDeg, s.CloudCover)

	return types.ForecastPoint{
		Time:                s.Time,
		PredictedIrradiance: predicted,
		Confidence:          estimateConfidence(series, i, pos.ElevationDeg),
		ClearSkyGHI:         clearSky,
		DirectNormal:        components.DNI,
		DiffuseHorizontal:   components.DHI,
		SolarElevation:      pos.ElevationDeg,
	}
}
