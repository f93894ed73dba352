// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/pdiddy/arxivsearch/internal/pages"
)

// Discord embed limits.
const (
	maxTitleLen      = 256
	maxFieldNameLen  = 256
	maxFieldValueLen = 1024
	maxFooterLen     = 2048
)

// arxivRed is the embed accent colour.
const arxivRed = 0xB31B1B

// toEmbed converts a page into a Discord embed, truncating text that would
// exceed the embed limits.
func toEmbed(p pages.Page) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(p.Entries))
	for _, e := range p.Entries {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   truncate(e.Name, maxFieldNameLen),
			Value:  truncate(e.Value, maxFieldValueLen),
			Inline: false,
		})
	}
	return &discordgo.MessageEmbed{
		Type:   discordgo.EmbedTypeRich,
		Title:  truncate(p.Title, maxTitleLen),
		URL:    p.URL,
		Color:  arxivRed,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: truncate(p.FooterText(), maxFooterLen)},
	}
}

// truncate shortens s to at most limit runes, ending in an ellipsis when cut.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
