package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App AppConfig
	Log LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig configuración del logger.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, APP_NAME, LOG_LEVEL.
func Load() (*Config, error) {
	return load(".", "./config")
}

func load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("env")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Archivos opcionales: .env y luego config.env; se ignora si no existen.
	v.SetConfigName(".env")
	_ = v.ReadInConfig()
	v.SetConfigName("config")
	_ = v.MergeInConfig()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	return &Config{
		App: AppConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "catalog")
	v.SetDefault("LOG_LEVEL", "info")
}
