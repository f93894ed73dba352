// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxivsearch/internal/arxiv"
	"github.com/pdiddy/arxivsearch/internal/cache"
	"github.com/pdiddy/arxivsearch/internal/discord"
	"github.com/pdiddy/arxivsearch/internal/httputil"
	"github.com/pdiddy/arxivsearch/internal/search"
	"github.com/pdiddy/arxivsearch/pkg/types"
)

// envKeyReplacer maps "search.max_results" to ARXIVSEARCH_SEARCH_MAX_RESULTS.
var envKeyReplacer = strings.NewReplacer(".", "_")

func setDefaults(v *viper.Viper) {
	v.SetDefault("search.max_results", search.DefaultMaxResults)
	v.SetDefault("search.base_url", arxiv.DefaultBaseURL)
	v.SetDefault("search.user_agent", arxiv.DefaultUserAgent)
	v.SetDefault("search.timeout", arxiv.DefaultTimeout)
	v.SetDefault("search.rate_interval", httputil.DefaultInterval)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.path", cache.DefaultPath)
	v.SetDefault("cache.ttl", cache.DefaultTTL)

	v.SetDefault("bot.prefix", discord.DefaultPrefix)
	v.SetDefault("bot.menu_timeout", discord.DefaultMenuTimeout)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")
}

// loadConfig reads every component's settings from the global viper.
func loadConfig() types.Config {
	return configFrom(viper.GetViper())
}

func configFrom(v *viper.Viper) types.Config {
	return types.Config{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration("search.timeout"),
				UserAgent: v.GetString("search.user_agent"),
			},
			MaxResults:   v.GetInt("search.max_results"),
			BaseURL:      v.GetString("search.base_url"),
			RateInterval: v.GetDuration("search.rate_interval"),
		},
		Cache: types.CacheConfig{
			Enabled: v.GetBool("cache.enabled"),
			Path:    v.GetString("cache.path"),
			TTL:     v.GetDuration("cache.ttl"),
		},
		Bot: types.BotConfig{
			Prefix:      v.GetString("bot.prefix"),
			GuildID:     v.GetString("bot.guild_id"),
			ChannelIDs:  v.GetStringSlice("bot.channel_ids"),
			MenuTimeout: v.GetDuration("bot.menu_timeout"),
		},
		Logging: types.LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			Output: v.GetString("logging.output"),
		},
	}
}

// newSearcher builds the arXiv client, wrapped by the result cache when it
// is enabled. The returned close function releases the cache database.
func newSearcher(cfg types.Config) (search.Searcher, func(), error) {
	var s search.Searcher = arxiv.New(cfg.Search, nil)
	if !cfg.Cache.Enabled {
		return s, func() {}, nil
	}

	store, err := cache.NewStore(cfg.Cache)
	if err != nil {
		return nil, nil, err
	}
	s = &cache.Searcher{Store: store, Next: s, Logger: logger.With().Str("component", "cache").Logger()}
	return s, func() { store.Close() }, nil
}

// bindCacheFlag binds the running command's --cache flag. Both search and
// bot define it, so the binding happens per invocation rather than in init.
func bindCacheFlag(cmd *cobra.Command, _ []string) {
	_ = viper.BindPFlag("cache.enabled", cmd.Flags().Lookup("cache"))
}
