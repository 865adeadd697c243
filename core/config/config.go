package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"focus-writer/core/logger"
	"focus-writer/core/server"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the launcher.
type Config struct {
	// Server holds configuration for the static file server and the launch sequence.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and a .env file in path.
// Every key falls back to the default declared on its struct field.
func LoadConfig(path string) (*Config, error) {
	// A missing .env is the normal case
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	bindValues(v, reflect.TypeFor[Config](), "")

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues registers every 'mapstructure' key of t in Viper, nested
// structs as dotted paths, with the value of its 'default' tag. Keys without
// a default are still registered so AutomaticEnv can find them.
func bindValues(v *viper.Viper, t reflect.Type, prefix string) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for _, field := range reflect.VisibleFields(t) {
		tag, ok := field.Tag.Lookup("mapstructure")
		if !ok || tag == "" || !field.IsExported() {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
