// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discord

import (
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/pdiddy/arxivsearch/internal/pages"
)

// DefaultMenuTimeout is the idle time after which navigation is disabled.
const DefaultMenuTimeout = 600 * time.Second

const (
	buttonPrefix = "arxivsearch:"
	buttonFirst  = buttonPrefix + "first"
	buttonPrev   = buttonPrefix + "prev"
	buttonClose  = buttonPrefix + "close"
	buttonNext   = buttonPrefix + "next"
	buttonLast   = buttonPrefix + "last"
)

// messenger is the subset of *discordgo.Session the bot uses.
type messenger interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	ChannelTyping(channelID string, options ...discordgo.RequestOption) error
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// menu is the navigation state of one paged message.
type menu struct {
	channelID string
	ownerID   string
	embeds    []*discordgo.MessageEmbed
	current   int
	timer     *time.Timer
}

// Paginator shows pages one at a time behind navigation buttons. Only the
// user who ran the search may navigate. A menu left idle for the timeout
// loses its buttons and is forgotten.
type Paginator struct {
	api     messenger
	timeout time.Duration
	logger  zerolog.Logger

	mu    sync.Mutex
	menus map[string]*menu
}

// NewPaginator returns a paginator sending through api.
func NewPaginator(api messenger, timeout time.Duration, logger zerolog.Logger) *Paginator {
	if timeout <= 0 {
		timeout = DefaultMenuTimeout
	}
	return &Paginator{
		api:     api,
		timeout: timeout,
		logger:  logger,
		menus:   make(map[string]*menu),
	}
}

// Present sends the first page to channelID. Multi-page results get
// navigation buttons that only ownerID can use.
func (p *Paginator) Present(channelID, ownerID string, pgs []pages.Page) error {
	if len(pgs) == 0 {
		return nil
	}
	embeds := make([]*discordgo.MessageEmbed, len(pgs))
	for i, pg := range pgs {
		embeds[i] = toEmbed(pg)
	}

	send := &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embeds[0]}}
	if len(embeds) > 1 {
		send.Components = controls()
	}
	msg, err := p.api.ChannelMessageSendComplex(channelID, send)
	if err != nil {
		return err
	}
	if len(embeds) == 1 {
		return nil
	}

	m := &menu{channelID: channelID, ownerID: ownerID, embeds: embeds}
	p.mu.Lock()
	p.menus[msg.ID] = m
	m.timer = time.AfterFunc(p.timeout, func() { p.expire(msg.ID) })
	p.mu.Unlock()
	return nil
}

// Handle processes a button press. It reports whether the interaction
// belonged to the paginator.
func (p *Paginator) Handle(i *discordgo.Interaction) bool {
	if i.Type != discordgo.InteractionMessageComponent || i.Message == nil {
		return false
	}
	id := i.MessageComponentData().CustomID
	if !strings.HasPrefix(id, buttonPrefix) {
		return false
	}

	p.mu.Lock()
	m, ok := p.menus[i.Message.ID]
	if !ok {
		p.mu.Unlock()
		p.respond(i, &discordgo.InteractionResponse{Type: discordgo.InteractionResponseDeferredMessageUpdate})
		return true
	}
	if interactionUserID(i) != m.ownerID {
		p.mu.Unlock()
		p.respond(i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "Only the person who ran this search can turn its pages.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return true
	}

	if id == buttonClose {
		m.timer.Stop()
		delete(p.menus, i.Message.ID)
		p.mu.Unlock()
		p.respond(i, &discordgo.InteractionResponse{Type: discordgo.InteractionResponseDeferredMessageUpdate})
		if err := p.api.ChannelMessageDelete(m.channelID, i.Message.ID); err != nil {
			p.logger.Warn().Err(err).Str("message_id", i.Message.ID).Msg("deleting menu failed")
		}
		return true
	}

	m.current = step(id, m.current, len(m.embeds))
	m.timer.Reset(p.timeout)
	embed := m.embeds[m.current]
	p.mu.Unlock()

	p.respond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: controls(),
		},
	})
	return true
}

// Len returns the number of live menus.
func (p *Paginator) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.menus)
}

// expire drops the menu and strips its buttons.
func (p *Paginator) expire(messageID string) {
	p.mu.Lock()
	m, ok := p.menus[messageID]
	delete(p.menus, messageID)
	p.mu.Unlock()
	if !ok {
		return
	}

	_, err := p.api.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         messageID,
		Channel:    m.channelID,
		Components: &[]discordgo.MessageComponent{},
	})
	if err != nil {
		p.logger.Warn().Err(err).Str("message_id", messageID).Msg("removing menu controls failed")
		return
	}
	p.logger.Debug().Str("message_id", messageID).Msg("menu expired")
}

func (p *Paginator) respond(i *discordgo.Interaction, resp *discordgo.InteractionResponse) {
	if err := p.api.InteractionRespond(i, resp); err != nil {
		p.logger.Warn().Err(err).Msg("interaction response failed")
	}
}

// step returns the page index after pressing button id. Prev and next wrap
// around.
func step(id string, current, total int) int {
	switch id {
	case buttonFirst:
		return 0
	case buttonPrev:
		return (current - 1 + total) % total
	case buttonNext:
		return (current + 1) % total
	case buttonLast:
		return total - 1
	}
	return current
}

func controls() []discordgo.MessageComponent {
	button := func(id, label string, style discordgo.ButtonStyle) discordgo.MessageComponent {
		return discordgo.Button{CustomID: id, Label: label, Style: style}
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			button(buttonFirst, "⏮", discordgo.SecondaryButton),
			button(buttonPrev, "◀", discordgo.PrimaryButton),
			button(buttonClose, "✖", discordgo.DangerButton),
			button(buttonNext, "▶", discordgo.PrimaryButton),
			button(buttonLast, "⏭", discordgo.SecondaryButton),
		}},
	}
}

func interactionUserID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
