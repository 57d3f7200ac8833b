package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tkrause/wallery/pkg/pipeline"
)

// scanCommand creates the scan command for inspecting a photo directory.
func (c *CLI) scanCommand() *cobra.Command {
	var (
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Scan a directory and list the photos found",
		Long: `Scan a directory for photos and list what was found.

The scan reads every supported image file (jpg, jpeg, png, gif, webp) in the
directory, decodes its dimensions, and prints the resulting photo set. The
scan does not descend into subdirectories.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScan(cmd.Context(), args[0], noCache, refresh)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "rescan even if a cached result exists")

	return cmd
}

// runScan scans the directory and prints the photo set.
func (c *CLI) runScan(ctx context.Context, dir string, noCache, refresh bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{Dir: dir, Refresh: refresh, Logger: loggerFromContext(ctx)}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Scanning %s...", dir))
	spinner.Start()

	set, cacheHit, err := runner.ScanWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError("Scan failed")
		return fmt.Errorf("scan %s: %w", dir, err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	printSuccess("Found %d photos in %s", len(set), dir)

	photos := append(set[:0:0], set...)
	sort.Slice(photos, func(i, j int) bool { return photos[i].Name < photos[j].Name })
	for _, p := range photos {
		printDetail("%-32s %.0f×%.0f", p.Name, p.Width, p.Height)
	}
	printStats(len(set), 0, cacheHit)
	printNewline()
	printNextStep("Arrange", "wallery layout "+dir)

	return nil
}
