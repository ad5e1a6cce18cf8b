package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	mediaRoot string
	dataFile  string
)

var rootCmd = &cobra.Command{
	Use:   "mediactl",
	Short: "Maintenance tool for the memorial site media library",
	Long: `mediactl - maintenance tool for the memorial site media library

Housekeeping commands for the uploaded-file tree and the JSON media
catalog: clearing derived photo copies, repairing thumbnails and
warming caches.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&mediaRoot, "media-root", "public", "Public static root holding uploaded files")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data-file", "data/mediaData.json", "JSON catalog path")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("mediactl {{.Version}}\n")
}
