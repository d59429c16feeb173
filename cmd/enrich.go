package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/CommanderStorm/navigatum-data/internal/catalog"
	"github.com/CommanderStorm/navigatum-data/internal/enrich"
	"github.com/CommanderStorm/navigatum-data/internal/store"
)

var (
	enrichInput  string
	enrichOutput string
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Run all enrichment passes over the catalog and store the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		input := enrichInput
		if input == "" {
			input = filepath.Join(dataDir, cfg.Enrich.Input)
		}
		output := enrichOutput
		if output == "" {
			output = filepath.Join(dataDir, cfg.Enrich.Output)
		}

		logVerbose("loading catalog from %s", input)
		data, err := catalog.Load(input)
		if err != nil {
			return err
		}
		fmt.Printf("Enriching %d entries...\n", len(data))

		if err := enrich.Run(data); err != nil {
			return fmt.Errorf("enrichment failed: %w", err)
		}

		if err := catalog.Save(output, data); err != nil {
			return err
		}
		logVerbose("wrote enriched catalog to %s", output)

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		enrichedAt := time.Now().UTC().Format(time.RFC3339)
		if err := s.WriteCatalog(data, enrichedAt); err != nil {
			return fmt.Errorf("storing enriched catalog: %w", err)
		}

		fmt.Printf("Enriched: %d entries, %d with floors, %d rooms with a floor\n",
			s.EntryCount(), s.BuildingsWithFloors(), s.RoomsWithFloor())
		return nil
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichInput, "input", "", "Catalog JSON to enrich (default: <data-dir>/<enrich.input>)")
	enrichCmd.Flags().StringVar(&enrichOutput, "output", "", "Where to write the enriched catalog (default: <data-dir>/<enrich.output>)")
	rootCmd.AddCommand(enrichCmd)
}
