package config

import (
	"fmt"
	"strings"

	"github.com/osse101/Homestead_Go/internal/domain"
)

// Validate checks that configured values are usable
func (c *Config) Validate() error {
	var problems []string

	if c.Port < MinPort || c.Port > MaxPort {
		problems = append(problems, fmt.Sprintf("PORT must be between %d and %d, got %d", MinPort, MaxPort, c.Port))
	}
	if c.PlotCount < 1 || c.PlotCount > domain.MaxPlotCount {
		problems = append(problems, fmt.Sprintf("PLOT_COUNT must be between 1 and %d, got %d", domain.MaxPlotCount, c.PlotCount))
	}
	if c.StartingCoins < 0 {
		problems = append(problems, fmt.Sprintf("STARTING_COINS must not be negative, got %d", c.StartingCoins))
	}
	if c.SessionCacheSize < 1 {
		problems = append(problems, fmt.Sprintf("SESSION_CACHE_SIZE must be positive, got %d", c.SessionCacheSize))
	}
	if c.SessionTTL <= 0 {
		problems = append(problems, fmt.Sprintf("SESSION_TTL must be positive, got %s", c.SessionTTL))
	}
	for alias, kind := range c.CropAliases {
		if strings.TrimSpace(alias) == "" || !domain.CropKind(kind).IsPlantable() {
			problems = append(problems, fmt.Sprintf("CROP_ALIASES entry %q:%q must map a name onto a plantable crop", alias, kind))
		}
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatJSON, LogFormatText:
	default:
		problems = append(problems, fmt.Sprintf("LOG_FORMAT must be %q or %q, got %q", LogFormatJSON, LogFormatText, c.LogFormat))
	}
	if c.Advisor.Timeout <= 0 {
		problems = append(problems, fmt.Sprintf("ADVISOR_TIMEOUT must be positive, got %s", c.Advisor.Timeout))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Warnings returns non-fatal notes about the configuration,
// such as optional features that are switched off
func (c *Config) Warnings() []string {
	var warnings []string

	if c.APIKey == "" {
		warnings = append(warnings, "API_KEY is not set - the API accepts unauthenticated requests")
	} else if c.APIKey == InsecureExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if !c.AdvisorEnabled() {
		warnings = append(warnings, "ADVISOR_API_KEY is not set - the advisor will answer with its fallback message")
	}

	return warnings
}
