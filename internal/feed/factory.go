package feed

import (
	"path/filepath"

	"minhsangitdev/beerpriceworker/config"
	"minhsangitdev/beerpriceworker/logger"
)

// CreateSources creates a file source per enabled retailer feed
func CreateSources(cfg *config.Config) []Source {
	definitions := []struct {
		name    string
		tag     string
		file    string
		enabled bool
	}{
		{"BachHoaXanh", "bachhoaxanh", cfg.BHXFeedFile, cfg.BHXEnabled},
		{"MegaMarket", "megamarket", cfg.MegaFeedFile, cfg.MegaEnabled},
		{"LotteMart", "lottemart", cfg.LotteFeedFile, cfg.LotteEnabled},
		{"KingfoodMart", "kingfoodmart", cfg.KingfoodFeedFile, cfg.KingfoodEnabled},
		{"CoopOnline", "cooponline", cfg.CoopFeedFile, cfg.CoopEnabled},
	}

	sources := make([]Source, 0, len(definitions))
	for _, def := range definitions {
		if !def.enabled || def.file == "" {
			logger.Debugf("Source %s disabled, skipping", def.name)
			continue
		}
		sources = append(sources, NewFileSource(def.name, def.tag, filepath.Join(cfg.FeedDir, def.file)))
	}

	return sources
}
