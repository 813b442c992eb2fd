package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/angas/solarpanel-go/logging"
	"github.com/spf13/viper"
)

// AppConfigReferenceModule describes the solar cell every prediction is based on.
type AppConfigReferenceModule struct {
	Efficiency             float64 `mapstructure:"efficiency"`              // Efficiency at reference temperature, 0-1
	TemperatureCoefficient float64 `mapstructure:"temperature_coefficient"` // Relative efficiency change per °C
	ReferenceTemperature   float64 `mapstructure:"reference_temperature"`   // °C
	SinglePanelArea        float64 `mapstructure:"single_panel_area"`       // m²
}

// AppConfigSapmModule is one row in the SAPM thermal parameter table.
type AppConfigSapmModule struct {
	Module   string  `mapstructure:"module"`
	Mounting string  `mapstructure:"mounting"`
	A        float64 `mapstructure:"a"`
	B        float64 `mapstructure:"b"`
	DeltaT   float64 `mapstructure:"delta_t"`
}

type AppConfigLocation struct {
	Latitude  float64 // WGS84
	Longitude float64 // WGS84
	Altitude  float64 // Meters above sea level
	// IANA timezone name, default: UTC
	Timezone *string `mapstructure:"timezone"`
}

func (l AppConfigLocation) GetTimezone() string {
	if l.Timezone == nil || *l.Timezone == "" {
		return "UTC"
	}
	return *l.Timezone
}

type AppConfigPrediction struct {
	RequiredKWh    float64 `mapstructure:"required_kwh"`    // Energy goal for the whole range
	Start          string  `mapstructure:"start"`           // Date, date with hour or RFC3339
	End            string  `mapstructure:"end"`             // Included in the range
	SurfaceTilt    float64 `mapstructure:"surface_tilt"`    // Degrees from horizontal
	SurfaceAzimuth float64 `mapstructure:"surface_azimuth"` // Degrees clockwise from north, 180 = south
	SapmModule     string  `mapstructure:"sapm_module"`     // Label "module - mounting"
	// Sampling step, default: 1h
	Step *string `mapstructure:"step"`
	// Ground reflectance, default: 0.25
	Albedo *float64 `mapstructure:"albedo"`
	// Linke turbidity used by the clear-sky model, default: 3.0
	LinkeTurbidity *float64 `mapstructure:"linke_turbidity"`
}

func (p AppConfigPrediction) GetStep() (time.Duration, error) {
	if p.Step == nil || *p.Step == "" {
		return time.Hour, nil
	}
	step, err := time.ParseDuration(*p.Step)
	if err != nil {
		return 0, fmt.Errorf("invalid prediction step %q: %w", *p.Step, err)
	}
	return step, nil
}

func (p AppConfigPrediction) GetAlbedo() float64 {
	if p.Albedo == nil {
		return 0.25
	}
	return *p.Albedo
}

func (p AppConfigPrediction) GetLinkeTurbidity() float64 {
	if p.LinkeTurbidity == nil {
		return 3.0
	}
	return *p.LinkeTurbidity
}

type AppConfigDatabase struct {
	// Log database, logging to database is disabled when empty
	Path string
}

type AppConfigLogging struct {
	// Min log level for database : "DEBUG", "INFO", "WARN", "ERROR", default: "INFO"
	DbLevel *string `mapstructure:"db_level"`
	// Log attributes format: "TEXT", "JSON", default: "JSON"
	DbAttrsFormat *string `mapstructure:"db_attrs_format"`
	// Maximum number of log entries in the database, default: 10000
	DbMaxEntries *int `mapstructure:"db_max_entries"`
	// Min log level for console: "DEBUG", "INFO", "WARN", "ERROR", default: "INFO"
	ConsoleLevel *string `mapstructure:"console_level"`
}

func (l AppConfigLogging) GetDbLevel() slog.Level {
	return logging.LevelFromString(l.DbLevel)
}

func (l AppConfigLogging) GetDbAttrsFormat() logging.LogAttrFormat {
	if l.DbAttrsFormat == nil {
		return logging.LogAttrFormatJSON
	}
	if strings.EqualFold(*l.DbAttrsFormat, "text") {
		return logging.LogAttrFormatText
	}
	return logging.LogAttrFormatJSON
}

func (l AppConfigLogging) GetDbMaxEntries() int {
	if l.DbMaxEntries == nil {
		return 10000
	}
	return *l.DbMaxEntries
}

func (l AppConfigLogging) GetConsoleLevel() slog.Level {
	return logging.LevelFromString(l.ConsoleLevel)
}

type AppConfig struct {
	Location        AppConfigLocation        `mapstructure:"location"`
	Prediction      AppConfigPrediction      `mapstructure:"prediction"`
	ReferenceModule AppConfigReferenceModule `mapstructure:"reference_module"`
	SapmModules     []AppConfigSapmModule    `mapstructure:"sapm_modules"`
	Database        AppConfigDatabase        `mapstructure:"database"`
	Logging         AppConfigLogging         `mapstructure:"logging"`
}

// DefaultSapmModules is the Sandia thermal model parameter table.
var DefaultSapmModules = []AppConfigSapmModule{
	{Module: "Glass/cell/glass", Mounting: "Open rack", A: -3.47, B: -0.0594, DeltaT: 3},
	{Module: "Glass/cell/glass", Mounting: "Close roof mount", A: -2.98, B: -0.0471, DeltaT: 1},
	{Module: "Glass/cell/polymer sheet", Mounting: "Open rack", A: -3.56, B: -0.0750, DeltaT: 3},
	{Module: "Glass/cell/polymer sheet", Mounting: "Insulated back", A: -2.81, B: -0.0455, DeltaT: 0},
	{Module: "Polymer/thin-film/steel", Mounting: "Open rack", A: -3.58, B: -0.113, DeltaT: 3},
	{Module: "22X Linear Concentrator", Mounting: "Tracker", A: -3.23, B: -0.130, DeltaT: 13},
}

var DefaultReferenceModule = AppConfigReferenceModule{
	Efficiency:             0.2,
	TemperatureCoefficient: -0.004,
	ReferenceTemperature:   25,
	SinglePanelArea:        1.6,
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("reference_module.efficiency", DefaultReferenceModule.Efficiency)
	v.SetDefault("reference_module.temperature_coefficient", DefaultReferenceModule.TemperatureCoefficient)
	v.SetDefault("reference_module.reference_temperature", DefaultReferenceModule.ReferenceTemperature)
	v.SetDefault("reference_module.single_panel_area", DefaultReferenceModule.SinglePanelArea)

	modules := make([]map[string]any, len(DefaultSapmModules))
	for i, m := range DefaultSapmModules {
		modules[i] = map[string]any{
			"module":   m.Module,
			"mounting": m.Mounting,
			"a":        m.A,
			"b":        m.B,
			"delta_t":  m.DeltaT,
		}
	}
	v.SetDefault("sapm_modules", modules)

	// Registered so that environment variables can override them
	v.SetDefault("location.latitude", 0.0)
	v.SetDefault("location.longitude", 0.0)
	v.SetDefault("location.altitude", 0.0)
	v.SetDefault("prediction.required_kwh", 0.0)
	v.SetDefault("prediction.start", "")
	v.SetDefault("prediction.end", "")
	v.SetDefault("prediction.surface_tilt", 0.0)
	v.SetDefault("prediction.surface_azimuth", 180.0)
	v.SetDefault("prediction.sapm_module", "")
	v.SetDefault("database.path", "")
}

// Load reads the config file at path, or config/config.yaml when path is empty.
// A missing default config file leaves the built-in defaults in place.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("config")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var c AppConfig

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
	}

	return &c, nil
}
