package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"cad/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "CAD_LOG_LEVEL")
	viper.BindEnv("persistence.saveInterval", "CAD_SAVE_INTERVAL")
	viper.BindEnv("cache.enabled", "CAD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "CAD_CACHE_SIZE")
	viper.BindEnv("upload.maxFileSize", "CAD_UPLOAD_MAX_FILE_SIZE")
	viper.BindEnv("parser.continuationPolicy", "CAD_CONTINUATION_POLICY")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "ChatAnalysisDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
