package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/CommanderStorm/navigatum-data/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show catalog enrichment status",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		fmt.Printf("Catalog Status\n")
		fmt.Printf("==============\n")
		fmt.Printf("Entries:             %d\n", s.EntryCount())
		fmt.Printf("Entries with floors: %d\n", s.BuildingsWithFloors())
		fmt.Printf("Rooms with a floor:  %d\n", s.RoomsWithFloor())
		if at := s.EnrichedAt(); at != "" {
			fmt.Printf("Last enriched:       %s\n", at)
		}

		byType := s.CountByType()
		if len(byType) > 0 {
			fmt.Printf("\nPer-Type Breakdown\n")
			fmt.Printf("------------------\n")

			var types []string
			for t := range byType {
				types = append(types, t)
			}
			sort.Strings(types)

			for _, t := range types {
				fmt.Printf("  %-16s %5d\n", t, byType[t])
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
