package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Data   DataConfig   `yaml:"data" mapstructure:"data"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// DataConfig locates the OFLC input files.
type DataConfig struct {
	GeographyPath string `yaml:"geography_path" mapstructure:"geography_path"`
	WagesPath     string `yaml:"wages_path" mapstructure:"wages_path"`
	// ArchivePath, when set, is an OFLC zip holding both input files. The
	// base names of GeographyPath and WagesPath select the archive entries.
	ArchivePath string `yaml:"archive_path" mapstructure:"archive_path"`
	ChunkSize   int    `yaml:"chunk_size" mapstructure:"chunk_size"`
}

// OutputConfig configures where report files are written.
type OutputConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("WAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data.geography_path", "Geography.csv")
	v.SetDefault("data.wages_path", "ALC_Export.csv")
	v.SetDefault("data.archive_path", "")
	v.SetDefault("data.chunk_size", 10000)
	v.SetDefault("output.dir", ".")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the values a run depends on and reports every problem at once.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Data.GeographyPath) == "" {
		problems = append(problems, "data.geography_path is required")
	}
	if strings.TrimSpace(c.Data.WagesPath) == "" {
		problems = append(problems, "data.wages_path is required")
	}
	if c.Data.ChunkSize <= 0 {
		problems = append(problems, "data.chunk_size must be > 0")
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		problems = append(problems, "output.dir is required")
	}
	if len(problems) > 0 {
		return eris.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	// Reports own stdout; diagnostics stay on stderr.
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
