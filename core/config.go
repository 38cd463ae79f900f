package core

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the application settings.
type Config struct {
	AppName      string
	Env          string
	Debug        bool
	Build        string
	DataFile     string
	LogLevel     string
	RollbarToken string
	Host         string
}

// NewViper returns a viper instance with the application defaults and environment bindings.
// Settings are read from the environment with the ROSTER_ prefix (eg. ROSTER_DATAFILE),
// after loading `.env.<env>` from the working directory if it exists.
func NewViper() (*viper.Viper, error) {
	v := viper.New()

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (default), TEST, PROD
	if env == "" {
		env = "DEV"
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := ".env." + strings.ToLower(env)
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("appName", "Roster")
	v.SetDefault("env", env)
	v.SetDefault("debug", env == "DEV")
	v.SetDefault("build", "dev")
	v.SetDefault("dataFile", "roster.db")
	v.SetDefault("logLevel", "info")
	v.SetDefault("rollbarToken", "")
	host, _ := os.Hostname()
	v.SetDefault("host", host)

	v.SetEnvPrefix("roster")
	v.AutomaticEnv()
	return v, nil
}

// LoadConfig reads the settings held by v.
func LoadConfig(v *viper.Viper) *Config {
	return &Config{
		AppName:      v.GetString("appName"),
		Env:          v.GetString("env"),
		Debug:        v.GetBool("debug"),
		Build:        v.GetString("build"),
		DataFile:     v.GetString("dataFile"),
		LogLevel:     v.GetString("logLevel"),
		RollbarToken: v.GetString("rollbarToken"),
		Host:         v.GetString("host"),
	}
}
