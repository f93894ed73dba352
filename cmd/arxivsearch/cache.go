// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxivsearch/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the local result cache",
	Long: `Cache manages the SQLite database that keeps recent arXiv result lists
when cache.enabled is set (or --cache is passed to search and bot).`,
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete expired cache entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		store, err := cache.NewStore(cfg.Cache)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Prune(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Pruned %d expired entries from %s\n", n, cfg.Cache.Path)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cachePruneCmd)
	rootCmd.AddCommand(cacheCmd)
}
