package settings

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCapacity = 100
	DefaultLogLevel = "info"

	// MaxCapacity mirrors the lte bound on Queue.Capacity.
	MaxCapacity = 1 << 24
)

type Config struct {
	Queue  Queue  `mapstructure:"queue" yaml:"queue"`
	Logger Logger `mapstructure:"logger" yaml:"logger"`
}

// Queue is the configuration for the demo queue
type Queue struct {
	Capacity int   `mapstructure:"capacity" yaml:"capacity" validate:"gt=0,lte=16777216"`
	Items    []int `mapstructure:"items" yaml:"items"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name" yaml:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age" validate:"gte=0"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size" validate:"gte=0"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Queue: Queue{
			Capacity: DefaultCapacity,
			Items:    []int{10, 20, 30},
		},
		Logger: Logger{
			LogLevel: DefaultLogLevel,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
	}
	return cfg, Validate(cfg)
}

// Validate checks the field constraints of cfg.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
