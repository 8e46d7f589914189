package providers

import (
	"fmt"
	"path/filepath"
	"pidash/internal/structures"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.SetDefault("pihole.count", 10)
	viper.SetDefault("pihole.timeout", 5*time.Second)

	viper.BindEnv("logger.level", "PIDASH_LOG_LEVEL")
	viper.BindEnv("pihole.hostname", "PIDASH_PIHOLE_HOSTNAME")
	viper.BindEnv("pihole.apiKey", "PIDASH_PIHOLE_API_KEY")
	viper.BindEnv("refresh.interval", "PIDASH_REFRESH_INTERVAL")
	viper.BindEnv("cache.enabled", "PIDASH_CACHE_ENABLED")
	viper.BindEnv("cache.size", "PIDASH_CACHE_SIZE")

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

	conf.AppName = "PiholeWidgetDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
