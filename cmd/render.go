package cmd

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pagimos/portfolio/internal/page"
	"github.com/pagimos/portfolio/internal/site"
)

func newRenderCmd(a *app) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Writes the page and its assets to a directory",
		Long: `render writes index.html plus the static/ and images/ asset
directories into --out. The page refers to its assets by relative path,
so the directory works from a host root, a sub-path, or opened from disk.
Existing files with the same names are overwritten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := renderSite(outDir, a.site, a.assets); err != nil {
				return err
			}
			a.log.Info("page rendered", "out", outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "public", "output directory")
	return cmd
}

func renderSite(outDir string, s *site.Site, assets fs.FS) error {
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", outDir, err)
	}

	for _, dir := range []string{"static", "images"} {
		if _, err := fs.Stat(assets, dir); err != nil {
			return fmt.Errorf("assets: %w", err)
		}
		if err := copyDirContents(assets, dir, outDir); err != nil {
			return fmt.Errorf("failed to copy %s assets: %w", dir, err)
		}
	}

	indexPath := filepath.Join(outDir, "index.html")
	f, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("failed to create '%s': %w", indexPath, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := page.Render(w, s); err != nil {
		return fmt.Errorf("failed to render '%s': %w", indexPath, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write '%s': %w", indexPath, err)
	}
	return f.Close()
}

// copyDirContents copies dir from src, keeping its relative layout, under dst.
func copyDirContents(src fs.FS, dir, dst string) error {
	return fs.WalkDir(src, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dstPath := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}
		return copyFile(src, path, dstPath)
	})
}

func copyFile(src fs.FS, name, dstFile string) error {
	in, err := src.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", name, err)
	}
	defer in.Close()

	out, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy data from %s to %s: %w", name, dstFile, err)
	}
	return out.Close()
}
