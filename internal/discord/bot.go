// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discord exposes the arXiv search as a Discord chat command and
// shows the result pages behind navigation buttons.
package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/pdiddy/arxivsearch/internal/pages"
	"github.com/pdiddy/arxivsearch/internal/search"
)

// DefaultPrefix precedes command names in chat messages.
const DefaultPrefix = "!"

// CommandNames are the accepted command names, first is canonical.
var CommandNames = []string{"arxivsearch", "arxiv", "arx"}

// User-facing replies.
const (
	msgMissingTerms = "Please specify search terms."
	msgNoResults    = "No results found for '%s'."
	msgFailure      = "Something went wrong while searching arXiv. Please try again later."
)

// Option configures the bot.
type Option func(*Bot)

// WithPrefix sets the command prefix.
func WithPrefix(prefix string) Option {
	return func(b *Bot) {
		if prefix != "" {
			b.prefix = prefix
		}
	}
}

// WithGuild limits the bot to a specific guild.
func WithGuild(guildID string) Option {
	return func(b *Bot) { b.guildID = guildID }
}

// WithChannels limits the bot to specific channel IDs.
func WithChannels(ids []string) Option {
	return func(b *Bot) {
		if len(ids) == 0 {
			return
		}
		b.channelIDs = make(map[string]bool, len(ids))
		for _, id := range ids {
			b.channelIDs[id] = true
		}
	}
}

// WithMaxResults sets how many records each search requests.
func WithMaxResults(n int) Option {
	return func(b *Bot) {
		if n > 0 {
			b.maxResults = n
		}
	}
}

// WithMenuTimeout sets the idle timeout of result menus.
func WithMenuTimeout(d time.Duration) Option {
	return func(b *Bot) {
		if d > 0 {
			b.menuTimeout = d
		}
	}
}

// Bot answers search commands on Discord.
type Bot struct {
	token       string
	searcher    search.Searcher
	logger      zerolog.Logger
	prefix      string
	maxResults  int
	menuTimeout time.Duration
	guildID     string
	channelIDs  map[string]bool

	session   *discordgo.Session
	api       messenger
	paginator *Paginator
	botUserID string
	ctx       context.Context
	cancel    context.CancelFunc
}

// New creates a bot that searches through searcher.
func New(token string, searcher search.Searcher, logger zerolog.Logger, opts ...Option) *Bot {
	b := &Bot{
		token:       token,
		searcher:    searcher,
		logger:      logger.With().Str("component", "discord").Logger(),
		prefix:      DefaultPrefix,
		maxResults:  search.DefaultMaxResults,
		menuTimeout: DefaultMenuTimeout,
		ctx:         context.Background(),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Start opens the gateway connection and registers handlers. It returns once
// the bot is connected; call Stop to disconnect.
func (b *Bot) Start(ctx context.Context) error {
	if b.token == "" {
		return errors.New("discord bot token is empty")
	}
	b.ctx, b.cancel = context.WithCancel(ctx)

	dg, err := discordgo.New("Bot " + b.token)
	if err != nil {
		return fmt.Errorf("creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	b.session = dg
	b.attach(dg)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("opening discord gateway: %w", err)
	}
	b.botUserID = dg.State.User.ID
	b.logger.Info().Str("user_id", b.botUserID).Str("prefix", b.prefix).Msg("discord bot started")
	return nil
}

// Stop closes the gateway connection.
func (b *Bot) Stop() error {
	if b.cancel != nil {
		b.cancel()
	}
	if b.session != nil {
		return b.session.Close()
	}
	return nil
}

func (b *Bot) attach(api messenger) {
	b.api = api
	b.paginator = NewPaginator(api, b.menuTimeout, b.logger)
}

func (b *Bot) onMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	b.handleMessage(b.ctx, m.Message)
}

func (b *Bot) onInteractionCreate(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	b.paginator.Handle(i.Interaction)
}

// handleMessage runs one command end to end: parse, search, format, present.
func (b *Bot) handleMessage(ctx context.Context, m *discordgo.Message) {
	if m == nil || m.Author == nil || m.Author.Bot || m.Author.ID == b.botUserID {
		return
	}
	if b.guildID != "" && m.GuildID != b.guildID {
		return
	}
	if len(b.channelIDs) > 0 && !b.channelIDs[m.ChannelID] {
		return
	}

	terms, ok := parseCommand(b.prefix, m.Content)
	if !ok {
		return
	}
	log := b.logger.With().Str("channel", m.ChannelID).Str("user", m.Author.ID).Logger()

	if terms == "" {
		b.reply(log, m.ChannelID, msgMissingTerms)
		return
	}

	if err := b.api.ChannelTyping(m.ChannelID); err != nil {
		log.Debug().Err(err).Msg("typing indicator failed")
	}

	start := time.Now()
	results, err := search.Execute(ctx, b.searcher, terms, b.maxResults)
	switch {
	case errors.Is(err, search.ErrNoResults):
		log.Info().Str("query", terms).Msg("no results")
		b.reply(log, m.ChannelID, fmt.Sprintf(msgNoResults, terms))
		return
	case err != nil:
		log.Error().Err(err).Str("query", terms).Msg("search failed")
		b.reply(log, m.ChannelID, msgFailure)
		return
	}

	pgs := pages.Build(terms, results)
	log.Info().
		Str("query", terms).
		Int("results", len(results)).
		Int("pages", len(pgs)).
		Dur("elapsed", time.Since(start)).
		Msg("search complete")

	if err := b.paginator.Present(m.ChannelID, m.Author.ID, pgs); err != nil {
		log.Error().Err(err).Msg("sending results failed")
	}
}

func (b *Bot) reply(log zerolog.Logger, channelID, content string) {
	if _, err := b.api.ChannelMessageSend(channelID, content); err != nil {
		log.Error().Err(err).Msg("sending reply failed")
	}
}

// parseCommand reports whether content invokes one of CommandNames with the
// given prefix and returns the trimmed search terms.
func parseCommand(prefix, content string) (string, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(content), prefix)
	if !ok {
		return "", false
	}
	name, terms := rest, ""
	if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
		name, terms = rest[:i], rest[i:]
	}
	for _, n := range CommandNames {
		if strings.EqualFold(name, n) {
			return strings.TrimSpace(terms), true
		}
	}
	return "", false
}
