// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxivsearch/internal/pages"
	"github.com/pdiddy/arxivsearch/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [terms...]",
	Short: "Search arXiv and print the result pages",
	Long: `Search sends the terms to the arXiv API and prints the results in pages of
five. arXiv field prefixes such as au:, ti: and cat: are passed through.

Use --save to keep the results in a YAML query file and --load to print a
saved file again without calling arXiv.`,
	PreRun: bindCacheFlag,
	RunE:   runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	loadPath, _ := cmd.Flags().GetString("load")
	savePath, _ := cmd.Flags().GetString("save")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	query := strings.Join(args, " ")
	maxResults := cfg.Search.MaxResults

	var searcher search.Searcher
	if loadPath != "" {
		qf, err := search.ReadQueryFile(loadPath)
		if err != nil {
			return err
		}
		if query == "" {
			query = qf.Query
		}
		searcher = qf.Searcher()
	} else {
		if strings.TrimSpace(query) == "" {
			return errors.New("please specify search terms")
		}
		s, closeFn, err := newSearcher(cfg)
		if err != nil {
			return err
		}
		defer closeFn()
		searcher = s
	}

	results, err := search.Execute(context.Background(), searcher, query, maxResults)
	if errors.Is(err, search.ErrNoResults) {
		fmt.Fprintf(os.Stdout, "No results found for '%s'.\n", query)
		return nil
	}
	if err != nil {
		return err
	}

	if savePath != "" {
		if err := search.WriteQueryFile(savePath, query, maxResults, results); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %d results to %s\n", len(results), savePath)
	}

	pgs := pages.Build(query, results)
	if jsonOutput {
		return pages.WriteJSON(os.Stdout, pgs)
	}
	pages.WriteText(os.Stdout, pgs)
	return nil
}

func init() {
	searchCmd.Flags().Int("max-results", search.DefaultMaxResults, "maximum number of results to fetch")
	searchCmd.Flags().Bool("json", false, "output pages as JSON")
	searchCmd.Flags().String("save", "", "write the query and results to this YAML file")
	searchCmd.Flags().String("load", "", "render results from a saved YAML query file instead of calling arXiv")
	searchCmd.Flags().Bool("cache", false, "serve repeated queries from the local SQLite cache")
	_ = viper.BindPFlag("search.max_results", searchCmd.Flags().Lookup("max-results"))

	rootCmd.AddCommand(searchCmd)
}
