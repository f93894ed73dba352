// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discord

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxivsearch/internal/search"
	"github.com/pdiddy/arxivsearch/pkg/types"
)

type stubSearcher struct {
	n       int
	err     error
	queries []string
	max     int
}

func (s *stubSearcher) Search(_ context.Context, query string, maxResults int) ([]types.SearchResult, error) {
	s.queries = append(s.queries, query)
	s.max = maxResults
	if s.err != nil {
		return nil, s.err
	}
	out := make([]types.SearchResult, s.n)
	for i := range out {
		out[i] = types.SearchResult{Title: fmt.Sprintf("Paper %d", i+1)}
	}
	return out, nil
}

func newTestBot(s search.Searcher, opts ...Option) (*Bot, *fakeSession) {
	b := New("token", s, zerolog.Nop(), append([]Option{WithMenuTimeout(time.Minute)}, opts...)...)
	f := &fakeSession{}
	b.attach(f)
	b.botUserID = "bot"
	return b, f
}

func userMessage(content string) *discordgo.Message {
	return &discordgo.Message{
		ID:        "in-1",
		ChannelID: "chan",
		GuildID:   "guild",
		Content:   content,
		Author:    &discordgo.User{ID: "user"},
	}
}

func TestHandleMessageMissingTerms(t *testing.T) {
	for _, content := range []string{"!arxivsearch", "!arx   ", "!ARXIV"} {
		t.Run(content, func(t *testing.T) {
			s := &stubSearcher{n: 3}
			b, f := newTestBot(s)

			b.handleMessage(context.Background(), userMessage(content))

			assert.Equal(t, []string{"Please specify search terms."}, f.sent)
			assert.Empty(t, s.queries)
		})
	}
}

func TestHandleMessageNoResults(t *testing.T) {
	s := &stubSearcher{n: 0}
	b, f := newTestBot(s)

	b.handleMessage(context.Background(), userMessage("!arxiv zzzxqv"))

	assert.Equal(t, []string{"No results found for 'zzzxqv'."}, f.sent)
	assert.Empty(t, f.complex)
	assert.Equal(t, []string{"chan"}, f.typing)
}

func TestHandleMessageFailure(t *testing.T) {
	s := &stubSearcher{err: errors.New("dial tcp: i/o timeout")}
	b, f := newTestBot(s)

	b.handleMessage(context.Background(), userMessage("!arxivsearch graphs"))

	assert.Equal(t, []string{msgFailure}, f.sent)
	assert.Equal(t, []string{"graphs"}, s.queries, "searched once, no retries")
}

func TestHandleMessagePresentsPages(t *testing.T) {
	s := &stubSearcher{n: 7}
	b, f := newTestBot(s)

	b.handleMessage(context.Background(), userMessage("!arxivsearch  quantum error correction "))

	assert.Equal(t, []string{"quantum error correction"}, s.queries)
	assert.Equal(t, search.DefaultMaxResults, s.max)
	assert.Empty(t, f.sent)
	require.Len(t, f.complex, 1)
	embed := f.complex[0].Embeds[0]
	assert.Equal(t, "arXiv search results for:\n**quantum error correction**", embed.Title)
	assert.Len(t, embed.Fields, 5)
	assert.Contains(t, embed.Footer.Text, "Page 1/2 of 7 results.")
	assert.NotEmpty(t, f.complex[0].Components)
	assert.Equal(t, 1, b.paginator.Len())
}

func TestHandleMessageOptions(t *testing.T) {
	s := &stubSearcher{n: 1}
	b, f := newTestBot(s, WithPrefix("?"), WithMaxResults(10))

	b.handleMessage(context.Background(), userMessage("!arxiv graphs"))
	assert.Empty(t, s.queries)

	b.handleMessage(context.Background(), userMessage("?arxiv graphs"))
	assert.Equal(t, []string{"graphs"}, s.queries)
	assert.Equal(t, 10, s.max)
	assert.Len(t, f.complex, 1)
}

func TestHandleMessageFilters(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		msg  func() *discordgo.Message
	}{
		{
			name: "bot author",
			msg: func() *discordgo.Message {
				m := userMessage("!arxiv graphs")
				m.Author.Bot = true
				return m
			},
		},
		{
			name: "own message",
			msg: func() *discordgo.Message {
				m := userMessage("!arxiv graphs")
				m.Author.ID = "bot"
				return m
			},
		},
		{
			name: "other guild",
			opts: []Option{WithGuild("elsewhere")},
			msg:  func() *discordgo.Message { return userMessage("!arxiv graphs") },
		},
		{
			name: "channel not allowed",
			opts: []Option{WithChannels([]string{"papers"})},
			msg:  func() *discordgo.Message { return userMessage("!arxiv graphs") },
		},
		{
			name: "not a command",
			msg:  func() *discordgo.Message { return userMessage("arxiv is great") },
		},
		{
			name: "nil author",
			msg: func() *discordgo.Message {
				m := userMessage("!arxiv graphs")
				m.Author = nil
				return m
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &stubSearcher{n: 1}
			b, f := newTestBot(s, tt.opts...)

			b.handleMessage(context.Background(), tt.msg())

			assert.Empty(t, s.queries)
			assert.Empty(t, f.sent)
			assert.Empty(t, f.complex)
		})
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		content string
		terms   string
		ok      bool
	}{
		{"!arxivsearch graphs", "graphs", true},
		{"!arxiv  spin glasses ", "spin glasses", true},
		{"!arx\nau:hinton", "au:hinton", true},
		{"!Arx dark matter", "dark matter", true},
		{"!arxivsearch", "", true},
		{"!arxivsearching graphs", "", false},
		{"!help", "", false},
		{"arxiv graphs", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			terms, ok := parseCommand("!", tt.content)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.terms, terms)
		})
	}
}

func TestStartRequiresToken(t *testing.T) {
	b := New("", &stubSearcher{}, zerolog.Nop())
	assert.Error(t, b.Start(context.Background()))
}
