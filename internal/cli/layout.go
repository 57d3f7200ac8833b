package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkrause/wallery/pkg/gallery"
	"github.com/tkrause/wallery/pkg/pipeline"
)

// layoutCommand creates the layout command for arranging photos into a plan.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
		mode    string
	)
	opts := c.pipelineOptions()
	mode = string(opts.Mode)

	cmd := &cobra.Command{
		Use:   "layout [dir]",
		Short: "Arrange a photo directory into a wall plan",
		Long: `Arrange a photo directory into a wall plan.

The layout command scans the directory, places every photo into a frame on
the wall using the selected arrangement mode, and writes the resulting plan
as JSON. The plan can be rendered with 'wallery render' or adjusted
interactively with 'wallery arrange'.

Modes:
  grid       uniform rows and columns
  salon      scattered salon-style hang with slight tilts
  row        a single eye-level row
  symmetric  mirrored placement around the wall's vertical center

The same directory, mode, and seed always produce the same plan.
Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := gallery.ParseMode(mode)
			if err != nil {
				return err
			}
			opts.Mode = parsed
			opts.Dir = args[0]
			opts.Refresh = refresh
			return c.runLayout(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <dir>.plan.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "rescan photos even if a cached result exists")

	// Layout flags
	cmd.Flags().StringVarP(&mode, "mode", "m", mode, "arrangement mode: grid (default), salon, row, symmetric")
	cmd.Flags().Float64Var(&opts.WallWidth, "wall-width", opts.WallWidth, "wall width in wall units")
	cmd.Flags().Float64Var(&opts.WallHeight, "wall-height", opts.WallHeight, "wall height in wall units")
	cmd.Flags().Float64Var(&opts.Margin, "margin", opts.Margin, "spacing between frames and wall edges")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", opts.Seed, "random seed for salon mode")

	return cmd
}

// runLayout scans the directory, computes the arrangement, and writes the plan.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	logger := loggerFromContext(ctx)
	opts.Logger = logger
	prog := newProgress(logger)

	set, err := runner.Scan(ctx, opts)
	if err != nil {
		return fmt.Errorf("scan %s: %w", opts.Dir, err)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s arrangement...", opts.Mode))
	spinner.Start()

	plan, cacheHit, err := runner.GenerateLayoutWithCacheInfo(ctx, set, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := planPath(output, opts.Dir)
	if err := gallery.WritePlanFile(plan, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}
	prog.done(fmt.Sprintf("Arranged %d photos into %d frames", len(plan.Photos), len(plan.Frames)))

	printSuccess("Arranged %d photos (%s)", len(plan.Photos), plan.Mode)
	printFile(outputPath)
	printStats(len(plan.Photos), len(plan.Frames), cacheHit)
	printNewline()
	printNextStep("Render", "wallery render "+outputPath)

	return nil
}
