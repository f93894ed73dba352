// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxivsearch/internal/discord"
	"github.com/pdiddy/arxivsearch/internal/secrets"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Serve the arXiv search command on Discord",
	Long: `Bot connects to Discord and answers !arxivsearch <terms> (aliases !arxiv
and !arx) with paged result embeds. Only the user who ran a search can turn
its pages; navigation stops after bot.menu_timeout of inactivity.

The token is read from --token, ARXIVSEARCH_BOT_TOKEN, or
.secrets/discord-bot-token, in that order.`,
	PreRun: bindCacheFlag,
	RunE:   runBot,
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	token := loadedSecrets.Get(secrets.DiscordBotToken, viper.GetString("bot.token"))
	if token == "" {
		return errors.New("no Discord token: set --token, ARXIVSEARCH_BOT_TOKEN or .secrets/" + secrets.DiscordBotToken)
	}

	searcher, closeFn, err := newSearcher(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot := discord.New(token, searcher, logger,
		discord.WithPrefix(cfg.Bot.Prefix),
		discord.WithGuild(cfg.Bot.GuildID),
		discord.WithChannels(cfg.Bot.ChannelIDs),
		discord.WithMaxResults(cfg.Search.MaxResults),
		discord.WithMenuTimeout(cfg.Bot.MenuTimeout),
	)
	if err := bot.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	logger.Info().Msg("shutting down")
	return bot.Stop()
}

func init() {
	botCmd.Flags().String("token", "", "Discord bot token")
	botCmd.Flags().String("prefix", "", "command prefix (default \"!\")")
	botCmd.Flags().Bool("cache", false, "serve repeated queries from the local SQLite cache")
	_ = viper.BindPFlag("bot.token", botCmd.Flags().Lookup("token"))
	_ = viper.BindPFlag("bot.prefix", botCmd.Flags().Lookup("prefix"))

	rootCmd.AddCommand(botCmd)
}
