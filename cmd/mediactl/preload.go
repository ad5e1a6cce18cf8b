package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/terteryan-memorial/backend/internal/models"
	"github.com/terteryan-memorial/backend/internal/preloader"
)

var (
	preloadServer string
	preloadLocale string
)

var preloadCmd = &cobra.Command{
	Use:   "preload",
	Short: "Warm the cache for the photo gallery of a running server",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := &http.Client{Timeout: 30 * time.Second}

		resp, err := client.Get(fmt.Sprintf("%s/api/media?type=photos&locale=%s",
			strings.TrimRight(preloadServer, "/"), url.QueryEscape(preloadLocale)))
		if err != nil {
			return fmt.Errorf("failed to fetch photo collection: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("server returned %s", resp.Status)
		}

		var payload struct {
			Success bool                   `json:"success"`
			Data    models.PhotoCollection `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return fmt.Errorf("failed to decode photo collection: %w", err)
		}

		urls := make([]string, 0, len(payload.Data.Items))
		for _, photo := range payload.Data.Items {
			src := photo.ThumbnailURL
			if src == "" {
				src = photo.Src
			}
			if src == "" {
				continue
			}
			if strings.HasPrefix(src, "/") {
				src = strings.TrimRight(preloadServer, "/") + src
			}
			urls = append(urls, src)
		}

		if len(urls) == 0 {
			fmt.Println("No photos to preload")
			return nil
		}

		fmt.Printf("Preloading %d photos...\n", len(urls))

		p := preloader.New(client, func(progress preloader.Progress) {
			fmt.Printf("\r%d%% (%d loaded, %d failed)", progress.Progress, progress.Loaded, progress.Failed)
		})

		final := p.Preload(cmd.Context(), urls)
		fmt.Printf("\nPreload complete: %d loaded, %d failed of %d\n", final.Loaded, final.Failed, final.Total)
		return nil
	},
}

func init() {
	preloadCmd.Flags().StringVar(&preloadServer, "server", "http://localhost:8080", "Server URL")
	preloadCmd.Flags().StringVar(&preloadLocale, "locale", models.LocaleRU, "Catalog locale")
	rootCmd.AddCommand(preloadCmd)
}
