package bootstrap

import (
	"github.com/osse101/Homestead_Go/internal/config"
	"github.com/osse101/Homestead_Go/internal/logger"
)

// SetupLogger initializes the default logger from the application config and
// logs the startup banner. Source locations are only added in development.
func SetupLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	logger.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	logger.Info(LogMsgStartingHomestead,
		"environment", cfg.Environment,
		"version", cfg.Version)

	logger.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"plot_count", cfg.PlotCount,
		"starting_coins", cfg.StartingCoins,
		"session_cache_size", cfg.SessionCacheSize,
		"session_ttl", cfg.SessionTTL,
		"advisor_enabled", cfg.AdvisorEnabled())

	for _, warning := range cfg.Warnings() {
		logger.Warn(LogMsgConfigWarning, "warning", warning)
	}
}
