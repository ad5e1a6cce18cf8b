package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terteryan-memorial/backend/internal/models"
	"github.com/terteryan-memorial/backend/internal/repositories"
	"go.uber.org/zap"
)

var updateDurationsCmd = &cobra.Command{
	Use:   "update-durations",
	Short: "Fill in missing track durations in the catalog",
	Long: `Walks every music track in both locales and fills the duration of
tracks that have a source file but no duration yet. Real audio probing
is not implemented; missing durations are set to the 0:00 placeholder
that the player recomputes on playback.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := repositories.NewCatalogRepository(dataFile, zap.NewNop())

		updated := 0
		err := repo.Update(context.Background(), func(catalog *models.Catalog) error {
			for _, locale := range []string{models.LocaleRU, models.LocaleEN} {
				localeData := catalog.Locale(locale)
				if localeData == nil {
					continue
				}
				for _, track := range localeData.Music.Tracks {
					if track.Src == "" || track.Duration != "" {
						continue
					}
					track.Duration = "0:00"
					updated++
					fmt.Printf("Updated duration for %s: %s\n", track.Title, track.Duration)
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to update catalog: %w", err)
		}

		fmt.Printf("Duration update complete, %d tracks changed\n", updated)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateDurationsCmd)
}
