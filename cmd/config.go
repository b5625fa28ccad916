package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"neogoto.dev/pkg/neogoto/internal/domain"
	m "neogoto.dev/pkg/neogoto/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "neogoto"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	categoriesConfigKey = "categories"

	verboseFlagName   = "verbose"
	logFileFlagName   = "log-file"
	fileFlagName      = "file"
	serverFlagName    = "server"
	placementFlagName = "placement"
	debugFlagName     = "debug"
	parallelFlagName  = "parallel"
	pickFlagName      = "pick"
	yamlFlagName      = "yaml"

	editorServerKey     = "editor.server"
	gotoPlacementKey    = "goto.placement"
	gotoDebugKey        = "goto.debug"
	relatedParallelKey  = "related.parallel"
	defaultRelatedLimit = 4

	envPrefix = "NEOGOTO"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".neogoto.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configErr holds the error from reading neogoto.yaml, reported by loadRegistry.
var configErr error

// categoryConfig is one entry of the categories list in neogoto.yaml.
type categoryConfig struct {
	Name       string   `mapstructure:"name" yaml:"name"`
	Dirs       []string `mapstructure:"dirs" yaml:"dirs,omitempty"`
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`
	Prefix     string   `mapstructure:"prefix" yaml:"prefix,omitempty"`
	Switch     string   `mapstructure:"switch" yaml:"switch,omitempty"`
}

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(categoriesConfigKey, categoriesToSettings(domain.DefaultMappings()))
	viper.SetDefault(editorServerKey, "")
	viper.SetDefault(gotoPlacementKey, m.ReuseCurrent.String())
	viper.SetDefault(gotoDebugKey, false)
	viper.SetDefault(relatedParallelKey, defaultRelatedLimit)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	configErr = readConfig()
}

// readConfig reads neogoto.yaml. A missing file is not an error.
func readConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read %s: %w", viper.ConfigFileUsed(), err)
}

// loadRegistry builds the category registry from the categories setting.
func loadRegistry() (*domain.Registry, error) {
	if configErr != nil {
		slog.Error("invalid configuration file", "error", configErr)
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedConfiguration, configErr)
	}

	var configs []categoryConfig
	if err := viper.UnmarshalKey(categoriesConfigKey, &configs); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrMalformedConfiguration, categoriesConfigKey, err)
	}

	if len(configs) == 0 {
		return nil, fmt.Errorf("%w: no categories configured", domain.ErrMalformedConfiguration)
	}

	mappings := make([]m.CategoryMapping, 0, len(configs))
	for _, config := range configs {
		mappings = append(mappings, m.CategoryMapping{
			Name:       m.CategoryName(config.Name),
			Dirs:       config.Dirs,
			Extensions: config.Extensions,
			Prefix:     config.Prefix,
			SwitchTo:   m.CategoryName(config.Switch),
		})
	}

	registry, err := domain.NewRegistry(mappings)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	slog.Debug("loaded categories", "names", registry.Names())

	return registry, nil
}

func categoriesToConfig(mappings []m.CategoryMapping) []categoryConfig {
	configs := make([]categoryConfig, 0, len(mappings))
	for _, mapping := range mappings {
		configs = append(configs, categoryConfig{
			Name:       string(mapping.Name),
			Dirs:       mapping.Dirs,
			Extensions: mapping.Extensions,
			Prefix:     mapping.Prefix,
			Switch:     string(mapping.SwitchTo),
		})
	}

	return configs
}

// categoriesToSettings renders mappings the way they appear in a config file
// so that "init" writes them back out as plain yaml.
func categoriesToSettings(mappings []m.CategoryMapping) []map[string]interface{} {
	settings := make([]map[string]interface{}, 0, len(mappings))
	for _, config := range categoriesToConfig(mappings) {
		setting := map[string]interface{}{
			"name":       config.Name,
			"extensions": config.Extensions,
		}

		if len(config.Dirs) > 0 {
			setting["dirs"] = config.Dirs
		}

		if config.Prefix != "" {
			setting["prefix"] = config.Prefix
		}

		if config.Switch != "" {
			setting["switch"] = config.Switch
		}

		settings = append(settings, setting)
	}

	return settings
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
