package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// derivedPhotoDirs are the placeholder directories for resized photo
// copies; only maintenance commands populate them
var derivedPhotoDirs = []string{"thumbnails", "medium", "large"}

var cleanupPhotosCmd = &cobra.Command{
	Use:   "cleanup-photos",
	Short: "Blank derived photo copies to reclaim space",
	Long: `Truncates every file except .gitkeep under photos/thumbnails,
photos/medium and photos/large. Originals under photos/original are
left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, dir := range derivedPhotoDirs {
			dirPath := filepath.Join(mediaRoot, "photos", dir)

			entries, err := os.ReadDir(dirPath)
			if err != nil {
				fmt.Printf("Directory not found: %s\n", dirPath)
				continue
			}

			cleaned := 0
			for _, entry := range entries {
				if entry.IsDir() || entry.Name() == ".gitkeep" {
					continue
				}
				path := filepath.Join(dirPath, entry.Name())
				if err := os.Truncate(path, 0); err != nil {
					fmt.Printf("Failed to clear %s: %v\n", path, err)
					continue
				}
				cleaned++
				fmt.Printf("Cleared: %s\n", path)
			}
			fmt.Printf("Cleaned %d files from %s\n", cleaned, dirPath)
		}

		fmt.Println("Photo cleanup complete. Originals in photos/original are preserved.")
		return nil
	},
}

var fixThumbnailsCmd = &cobra.Command{
	Use:   "fix-thumbnails",
	Short: "Copy originals over empty or missing thumbnails",
	RunE: func(cmd *cobra.Command, args []string) error {
		originalDir := filepath.Join(mediaRoot, "photos", "original")
		thumbnailDir := filepath.Join(mediaRoot, "photos", "thumbnails")

		entries, err := os.ReadDir(originalDir)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", originalDir, err)
		}

		if err := os.MkdirAll(thumbnailDir, 0755); err != nil {
			return err
		}

		copied := 0
		for _, entry := range entries {
			if entry.IsDir() || entry.Name() == ".gitkeep" {
				continue
			}

			thumbnailPath := filepath.Join(thumbnailDir, entry.Name())
			info, err := os.Stat(thumbnailPath)
			if err == nil && info.Size() > 0 {
				fmt.Printf("Skipping %s (already exists and not empty)\n", entry.Name())
				continue
			}

			if err := copyFile(filepath.Join(originalDir, entry.Name()), thumbnailPath); err != nil {
				fmt.Printf("Failed to copy %s: %v\n", entry.Name(), err)
				continue
			}
			copied++
			fmt.Printf("Copying %s...\n", entry.Name())
		}

		fmt.Printf("Fixed %d thumbnail files\n", copied)
		return nil
	},
}

var generateThumbnailsCmd = &cobra.Command{
	Use:   "generate-thumbnails",
	Short: "Populate derived photo directories (no real resizing yet)",
	Long: `Fills photos/thumbnails, photos/medium and photos/large from the
originals. Real resizing is not implemented; each derived copy is the
original file. Missing copies are created, existing non-empty ones kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		originalDir := filepath.Join(mediaRoot, "photos", "original")

		entries, err := os.ReadDir(originalDir)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", originalDir, err)
		}

		for _, dir := range derivedPhotoDirs {
			derivedDir := filepath.Join(mediaRoot, "photos", dir)
			if err := os.MkdirAll(derivedDir, 0755); err != nil {
				return err
			}

			generated := 0
			for _, entry := range entries {
				if entry.IsDir() || entry.Name() == ".gitkeep" {
					continue
				}

				target := filepath.Join(derivedDir, entry.Name())
				info, err := os.Stat(target)
				if err == nil && info.Size() > 0 {
					continue
				}

				if err := copyFile(filepath.Join(originalDir, entry.Name()), target); err != nil {
					fmt.Printf("Failed to generate %s: %v\n", target, err)
					continue
				}
				generated++
			}
			fmt.Printf("Generated %d copies in %s\n", generated, derivedDir)
		}

		fmt.Println("Thumbnail generation complete (copies of originals, no resizing).")
		return nil
	},
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

func init() {
	rootCmd.AddCommand(cleanupPhotosCmd)
	rootCmd.AddCommand(fixThumbnailsCmd)
	rootCmd.AddCommand(generateThumbnailsCmd)
}
