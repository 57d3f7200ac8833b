package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tkrause/wallery/internal/server"
	"github.com/tkrause/wallery/pkg/gallery"
)

const serveShutdownTimeout = 5 * time.Second

// serveCommand creates the serve command for the live preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr string
		save bool
	)

	cmd := &cobra.Command{
		Use:   "serve [plan.json]",
		Short: "Serve a live wall preview over HTTP",
		Long: `Serve a live wall preview over HTTP.

The server exposes the plan as JSON, a rendered preview image, a collision
report, and frame editing endpoints. Open the preview from a phone or tablet
on the same network to see the wall while hanging photos:

  GET    /plan           the current plan
  GET    /preview.png    rendered preview image
  GET    /collisions     overlapping frame pairs
  GET    /frames         all frames
  PUT    /frames/{id}    update a frame
  DELETE /frames/{id}    remove a frame
  POST   /layout         regenerate the arrangement

With --save, edits made through the API are written back to the plan file
when the server shuts down.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], addr, save)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8400", "listen address")
	cmd.Flags().BoolVar(&save, "save", false, "write edits back to the plan file on shutdown")

	return cmd
}

// runServe starts the preview server and blocks until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, path, addr string, save bool) error {
	plan, err := gallery.ReadPlanFile(path)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", path, err)
	}

	srv := server.New(plan, c.Logger)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	printSuccess("Preview server listening on %s", addr)
	printDetail("Plan: %s (%d frames)", path, len(plan.Frames))
	printNewline()
	printNextStep("Preview", "http://localhost"+addr+"/preview.png")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve on %s: %w", addr, err)
		}
	case <-ctx.Done():
		c.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	if save {
		updated := srv.Snapshot()
		if err := gallery.WritePlanFile(updated, path); err != nil {
			return fmt.Errorf("write plan %s: %w", path, err)
		}
		printSuccess("Saved %s", path)
	}
	return nil
}
