package bootstrap

import (
	"github.com/osse101/Homestead_Go/internal/domain"
	"github.com/osse101/Homestead_Go/internal/logger"
	"github.com/osse101/Homestead_Go/internal/naming"
)

// NewCropResolver creates the crop name resolver with the configured extra aliases
func NewCropResolver(aliases map[string]string) naming.Resolver {
	resolver := naming.NewResolver()
	for alias, kind := range aliases {
		resolver.RegisterAlias(alias, domain.CropKind(kind))
	}
	if len(aliases) > 0 {
		logger.Info(LogMsgCropAliasesRegistered, "count", len(aliases))
	}
	return resolver
}
