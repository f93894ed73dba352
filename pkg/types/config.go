// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxivsearch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the arXiv search collaborator.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the number of records requested per query (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// BaseURL is the arXiv API query endpoint.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// RateInterval is the minimum spacing between API calls (default 3s,
	// per the arXiv API terms of use).
	RateInterval time.Duration `json:"rate_interval" yaml:"rate_interval"`
}

// CacheConfig holds settings for the optional SQLite result cache.
type CacheConfig struct {
	// Enabled turns the cache on. Off by default.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the SQLite database file.
	Path string `json:"path" yaml:"path"`

	// TTL is how long a cached result list stays fresh (default 1h).
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

// BotConfig holds settings for the Discord command surface.
type BotConfig struct {
	// Prefix precedes command names in chat messages (default "!").
	Prefix string `json:"prefix" yaml:"prefix"`

	// GuildID limits the bot to one guild when set.
	GuildID string `json:"guild_id,omitempty" yaml:"guild_id,omitempty"`

	// ChannelIDs limits the bot to the listed channels when non-empty.
	ChannelIDs []string `json:"channel_ids,omitempty" yaml:"channel_ids,omitempty"`

	// MenuTimeout is the idle time after which page navigation is disabled
	// (default 600s).
	MenuTimeout time.Duration `json:"menu_timeout" yaml:"menu_timeout"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum level (trace, debug, info, warn, error).
	Level string `json:"level" yaml:"level"`

	// Format is json or console.
	Format string `json:"format" yaml:"format"`

	// Output is stdout or stderr.
	Output string `json:"output" yaml:"output"`
}

// Config groups the settings of every component.
type Config struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	Cache   CacheConfig   `json:"cache" yaml:"cache"`
	Bot     BotConfig     `json:"bot" yaml:"bot"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}
