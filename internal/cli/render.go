package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tkrause/wallery/pkg/gallery"
	"github.com/tkrause/wallery/pkg/pipeline"
)

// renderCommand creates the render command for producing wall images.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		noCache    bool
		formatsStr string
	)
	opts := c.pipelineOptions()

	cmd := &cobra.Command{
		Use:   "render [plan.json]",
		Short: "Render a wall plan to an image",
		Long: `Render a wall plan to an image.

The render command takes a plan.json file (produced by 'layout') and draws
the arranged wall: background, matte borders, optional drop shadows, and the
photos themselves fitted into their frames. Frames whose photo file is
missing are drawn as placeholder rectangles.

Supported formats: png (default), jpeg.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), jpeg (comma-separated)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "pixels per wall unit")
	cmd.Flags().StringVar(&opts.Background, "background", opts.Background, "wall background color (hex)")
	cmd.Flags().Float64Var(&opts.Matte, "matte", opts.Matte, "matte border width in wall units")
	cmd.Flags().BoolVar(&opts.Shadow, "shadow", opts.Shadow, "draw drop shadows under frames")

	return cmd
}

// runRender loads the plan, renders the requested formats, and writes the files.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	plan, err := gallery.ReadPlanFile(input)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", input, err)
	}

	if dangling := plan.DanglingFrames(); len(dangling) > 0 {
		printWarning("%d frames reference photos missing from the plan; they will be skipped", len(dangling))
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	logger := loggerFromContext(ctx)
	opts.Logger = logger
	prog := newProgress(logger)

	spinner := newSpinnerWithContext(ctx, "Rendering wall...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, plan, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	prog.done(fmt.Sprintf("Rendered %d formats", len(opts.Formats)))

	printSuccess("Render complete")
	base := renderBasePath(output, input)
	for _, format := range opts.Formats {
		path := base + "." + formatExt(format)
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(len(plan.Photos), len(plan.Frames), cacheHit)

	return nil
}

// renderBasePath derives the output base path from the output and input paths.
// A plan named photos.plan.json renders to photos.png by default.
func renderBasePath(output, input string) string {
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		return strings.TrimSuffix(base, ".plan")
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if ext == "png" || ext == "jpg" || ext == "jpeg" {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	return output
}

// formatExt maps a pipeline format token to a file extension.
func formatExt(format string) string {
	if format == pipeline.FormatJPEG {
		return "jpg"
	}
	return format
}
