package kepler

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigEnv names the environment variable holding the directory of kepler.toml.
	ConfigEnv = "KEPLER_CONFIG"
	// configName is kepler.toml (or any format viper supports).
	configName = "kepler"
)

// Config is the runtime configuration of the kepler tools.
type Config struct {
	Tolerances  Tolerances
	DefaultBody string
	LogLevel    string
	Workers     int
}

// Body returns the default body.
func (c Config) Body() (Body, error) {
	return BodyFromString(c.DefaultBody)
}

// NewViper returns a viper instance with the defaults set, bound to KEPLER_* environment variables
// and looking for kepler.toml in $KEPLER_CONFIG and in the working directory.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("tolerance.eccentricity", DefaultTolerances.Eccentricity)
	v.SetDefault("tolerance.inclination", DefaultTolerances.Inclination)
	v.SetDefault("tolerance.energy", DefaultTolerances.Energy)
	v.SetDefault("body.default", "earth")
	v.SetDefault("log.level", "info")
	v.SetDefault("batch.workers", 4)

	v.SetConfigName(configName)
	if dir := os.Getenv(ConfigEnv); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")
	v.SetEnvPrefix("KEPLER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the configuration file if there is one and validates the result.
// A missing configuration file is not an error: the defaults apply.
func LoadConfig(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, errors.Wrap(err, "reading configuration")
		}
	}
	conf := Config{
		Tolerances: Tolerances{
			Eccentricity: v.GetFloat64("tolerance.eccentricity"),
			Inclination:  v.GetFloat64("tolerance.inclination"),
			Energy:       v.GetFloat64("tolerance.energy"),
		},
		DefaultBody: v.GetString("body.default"),
		LogLevel:    v.GetString("log.level"),
		Workers:     v.GetInt("batch.workers"),
	}
	if conf.Tolerances.Eccentricity < 0 || conf.Tolerances.Inclination < 0 || conf.Tolerances.Energy < 0 {
		return Config{}, errors.Errorf("tolerances must be positive: %+v", conf.Tolerances)
	}
	if _, err := conf.Body(); err != nil {
		return Config{}, errors.Wrap(err, "body.default")
	}
	if conf.Workers < 1 {
		return Config{}, errors.Errorf("batch.workers must be at least 1, got %d", conf.Workers)
	}
	return conf, nil
}
