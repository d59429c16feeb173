package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/CommanderStorm/navigatum-data/internal/scraper"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape TUMonline building areas and buildings",
	RunE: func(cmd *cobra.Command, args []string) error {
		rl := scraper.NewRateLimiter(cfg.Scrape.RateLimit)

		fmt.Println("Scraping TUMonline buildings...")
		buildings, err := scraper.ScrapeBuildings(context.Background(), rl)
		if err != nil {
			return fmt.Errorf("scraping buildings: %w", err)
		}

		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
		path := filepath.Join(dataDir, "buildings_tumonline.json")
		raw, err := json.MarshalIndent(buildings, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		fmt.Printf("Scraped %d buildings to %s\n", len(buildings), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}
