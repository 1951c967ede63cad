package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"beyondthesea/internal/ocean"
)

// EnvPrefix namespaces environment overrides, e.g. BTS_VESSEL_MAXSPEED.
const EnvPrefix = "BTS"

// File is the on-disk shape of a config file.
type File struct {
	Viewport struct {
		Width  float64 `json:"width" mapstructure:"width"`
		Height float64 `json:"height" mapstructure:"height"`
	} `json:"viewport" mapstructure:"viewport"`
	Tiles struct {
		Size float64 `json:"size" mapstructure:"size"`
	} `json:"tiles" mapstructure:"tiles"`
	Vessel struct {
		AngularVelocity float64 `json:"angularVelocity" mapstructure:"angularVelocity"`
		MaxSpeed        float64 `json:"maxSpeed" mapstructure:"maxSpeed"`
		Drag            float64 `json:"drag" mapstructure:"drag"`
		Acceleration    float64 `json:"acceleration" mapstructure:"acceleration"`
	} `json:"vessel" mapstructure:"vessel"`
	Effects struct {
		MaxDistanceNS      float64 `json:"maxDistanceNS" mapstructure:"maxDistanceNS"`
		MaxDistanceEW      float64 `json:"maxDistanceEW" mapstructure:"maxDistanceEW"`
		MaxPixelate        float64 `json:"maxPixelate" mapstructure:"maxPixelate"`
		MaxBarrel          float64 `json:"maxBarrel" mapstructure:"maxBarrel"`
		MaxBlur            float64 `json:"maxBlur" mapstructure:"maxBlur"`
		AmbientDetuneCents float64 `json:"ambientDetuneCents" mapstructure:"ambientDetuneCents"`
		ClampAmbientVolume bool    `json:"clampAmbientVolume" mapstructure:"clampAmbientVolume"`
	} `json:"effects" mapstructure:"effects"`
	Noise struct {
		Resolution int `json:"resolution" mapstructure:"resolution"`
	} `json:"noise" mapstructure:"noise"`
	Seed      uint64          `json:"seed" mapstructure:"seed"`
	LogLevel  string          `json:"logLevel" mapstructure:"logLevel"`
	Audio     AudioConfig     `json:"audio" mapstructure:"audio"`
	Window    WindowConfig    `json:"window" mapstructure:"window"`
	Telemetry TelemetryConfig `json:"telemetry" mapstructure:"telemetry"`
}

// AudioConfig holds soundscape output settings
type AudioConfig struct {
	Enabled      bool    `json:"enabled" mapstructure:"enabled"`
	MasterVolume float64 `json:"masterVolume" mapstructure:"masterVolume"`
}

// WindowConfig holds desktop window settings
type WindowConfig struct {
	Scale float64 `json:"scale" mapstructure:"scale"`
}

// TelemetryConfig toggles in-process metrics
type TelemetryConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

// Settings is everything the shell needs to start a session.
type Settings struct {
	Ocean      ocean.Config
	LogLevel   zerolog.Level
	Audio      AudioConfig
	Window     WindowConfig
	Telemetry  TelemetryConfig
	ConfigFile string // empty when running on defaults
}

func setDefaults() {
	d := ocean.DefaultConfig()

	viper.SetDefault("viewport.width", d.ViewportWidth)
	viper.SetDefault("viewport.height", d.ViewportHeight)
	viper.SetDefault("tiles.size", d.TileSize)

	viper.SetDefault("vessel.angularVelocity", d.AngularVelocity)
	viper.SetDefault("vessel.maxSpeed", d.MaxSpeed)
	viper.SetDefault("vessel.drag", d.Drag)
	viper.SetDefault("vessel.acceleration", d.Acceleration)

	viper.SetDefault("effects.maxDistanceNS", d.MaxDistanceNS)
	viper.SetDefault("effects.maxDistanceEW", d.MaxDistanceEW)
	viper.SetDefault("effects.maxPixelate", d.MaxPixelate)
	viper.SetDefault("effects.maxBarrel", d.MaxBarrel)
	viper.SetDefault("effects.maxBlur", d.MaxBlur)
	viper.SetDefault("effects.ambientDetuneCents", d.AmbientDetuneCents)
	viper.SetDefault("effects.clampAmbientVolume", d.ClampAmbientVolume)

	viper.SetDefault("noise.resolution", d.NoiseResolution)
	viper.SetDefault("seed", d.Seed)
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.masterVolume", 0.8)
	viper.SetDefault("window.scale", 1.0)
	viper.SetDefault("telemetry.enabled", false)
}

// Flags returns the command-line flag set Load understands.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("beyondthesea", pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (json, yaml or toml)")
	fs.Uint64("seed", 1, "seed for tile and noise variance")
	fs.String("log-level", "info", "trace, debug, info, warn or error")
	fs.Bool("mute", false, "disable audio output")
	fs.Float64("scale", 1, "window scale factor")
	return fs
}

// Load resolves settings from defaults, an optional config file, BTS_*
// environment variables and args, in increasing order of precedence.
func Load(args []string) (Settings, error) {
	fs := Flags()
	if err := fs.Parse(args); err != nil {
		return Settings{}, fmt.Errorf("error parsing flags: %w", err)
	}

	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	for key, flag := range map[string]string{
		"seed":         "seed",
		"logLevel":     "log-level",
		"window.scale": "scale",
	} {
		if err := viper.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return Settings{}, fmt.Errorf("error binding flag %s: %w", flag, err)
		}
	}
	if muted, _ := fs.GetBool("mute"); muted {
		viper.Set("audio.enabled", false)
	}

	var used string
	if path, _ := fs.GetString("config"); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
		used = viper.ConfigFileUsed()
	} else {
		viper.SetConfigName("beyondthesea")
		viper.AddConfigPath(".")
		err := viper.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		switch {
		case err == nil:
			used = viper.ConfigFileUsed()
		case !errors.As(err, &notFound):
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var f File
	if err := viper.Unmarshal(&f); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	return f.settings(used)
}

func (f File) settings(used string) (Settings, error) {
	cfg := ocean.Config{
		ViewportWidth:      f.Viewport.Width,
		ViewportHeight:     f.Viewport.Height,
		TileSize:           f.Tiles.Size,
		AngularVelocity:    f.Vessel.AngularVelocity,
		MaxSpeed:           f.Vessel.MaxSpeed,
		Drag:               f.Vessel.Drag,
		Acceleration:       f.Vessel.Acceleration,
		MaxDistanceNS:      f.Effects.MaxDistanceNS,
		MaxDistanceEW:      f.Effects.MaxDistanceEW,
		MaxPixelate:        f.Effects.MaxPixelate,
		MaxBarrel:          f.Effects.MaxBarrel,
		MaxBlur:            f.Effects.MaxBlur,
		AmbientDetuneCents: f.Effects.AmbientDetuneCents,
		ClampAmbientVolume: f.Effects.ClampAmbientVolume,
		NoiseResolution:    f.Noise.Resolution,
		Seed:               f.Seed,
	}
	if err := cfg.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(f.LogLevel))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid log level %q: %w", f.LogLevel, err)
	}

	if f.Window.Scale <= 0 {
		f.Window.Scale = 1
	}
	if f.Audio.MasterVolume < 0 {
		f.Audio.MasterVolume = 0
	}

	return Settings{
		Ocean:      cfg,
		LogLevel:   lvl,
		Audio:      f.Audio,
		Window:     f.Window,
		Telemetry:  f.Telemetry,
		ConfigFile: used,
	}, nil
}
