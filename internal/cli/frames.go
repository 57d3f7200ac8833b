package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkrause/wallery/pkg/gallery"
)

// framesCommand creates the frames command group for editing a plan's frames.
func (c *CLI) framesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Inspect and edit the frames in a wall plan",
		Long: `Inspect and edit the frames in a wall plan.

Each subcommand loads the plan, applies the change, and writes the plan back
in place. Frame IDs are printed by 'frames list' and accepted as unique
prefixes, so the first few characters are usually enough.`,
	}

	cmd.AddCommand(c.framesListCommand())
	cmd.AddCommand(c.framesMoveCommand())
	cmd.AddCommand(c.framesResizeCommand())
	cmd.AddCommand(c.framesRotateCommand())
	cmd.AddCommand(c.framesRemoveCommand())
	cmd.AddCommand(c.framesDuplicateCommand())

	return cmd
}

// framesListCommand creates the "frames list" subcommand.
func (c *CLI) framesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [plan.json]",
		Short: "List all frames in a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := gallery.ReadPlanFile(args[0])
			if err != nil {
				return fmt.Errorf("load plan %s: %w", args[0], err)
			}

			byID := plan.Photos.ByID()
			printKeyValue("Wall", fmt.Sprintf("%.0f×%.0f", plan.Wall.Width, plan.Wall.Height))
			printKeyValue("Mode", string(plan.Mode))
			printKeyValue("Frames", fmt.Sprintf("%d", len(plan.Frames)))
			for _, f := range plan.Frames {
				name := "(missing photo)"
				if p, ok := byID[f.PhotoID]; ok {
					name = p.Name
				}
				printDetail("%-10.10s %-24s at (%.0f, %.0f) %.0f×%.0f %+.1f°",
					f.ID, name, f.X, f.Y, f.Width, f.Height, f.Rotation)
			}
			return nil
		},
	}
}

// framesMoveCommand creates the "frames move" subcommand.
func (c *CLI) framesMoveCommand() *cobra.Command {
	var x, y float64

	cmd := &cobra.Command{
		Use:   "move [plan.json] [frame-id]",
		Short: "Move a frame to a new position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.editFrame(args[0], args[1], func(f *gallery.Frame) error {
				f.X = x
				f.Y = y
				return nil
			})
		},
	}

	cmd.Flags().Float64VarP(&x, "x", "x", 0, "new x position (top-left corner)")
	cmd.Flags().Float64VarP(&y, "y", "y", 0, "new y position (top-left corner)")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}

// framesResizeCommand creates the "frames resize" subcommand.
func (c *CLI) framesResizeCommand() *cobra.Command {
	var width, height float64

	cmd := &cobra.Command{
		Use:   "resize [plan.json] [frame-id]",
		Short: "Resize a frame",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || height <= 0 {
				return fmt.Errorf("frame size must be positive, got %.1f×%.1f", width, height)
			}
			return c.editFrame(args[0], args[1], func(f *gallery.Frame) error {
				f.Width = width
				f.Height = height
				return nil
			})
		},
	}

	cmd.Flags().Float64VarP(&width, "width", "W", 0, "new frame width")
	cmd.Flags().Float64VarP(&height, "height", "H", 0, "new frame height")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

// framesRotateCommand creates the "frames rotate" subcommand.
func (c *CLI) framesRotateCommand() *cobra.Command {
	var degrees float64

	cmd := &cobra.Command{
		Use:   "rotate [plan.json] [frame-id]",
		Short: "Set a frame's rotation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.editFrame(args[0], args[1], func(f *gallery.Frame) error {
				f.Rotation = degrees
				return nil
			})
		},
	}

	cmd.Flags().Float64VarP(&degrees, "degrees", "d", 0, "rotation in degrees (positive is clockwise)")
	_ = cmd.MarkFlagRequired("degrees")

	return cmd
}

// framesRemoveCommand creates the "frames remove" subcommand.
func (c *CLI) framesRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [plan.json] [frame-id]",
		Short: "Remove a frame from the plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := gallery.ReadPlanFile(args[0])
			if err != nil {
				return fmt.Errorf("load plan %s: %w", args[0], err)
			}

			store := gallery.NewFrameStore(plan.Frames)
			frame, err := resolveFrame(store, args[1])
			if err != nil {
				return err
			}
			store.Remove(frame.ID)

			plan.Frames = store.Frames()
			if err := gallery.WritePlanFile(plan, args[0]); err != nil {
				return fmt.Errorf("write plan %s: %w", args[0], err)
			}

			printSuccess("Removed frame %s", frame.ID)
			printStats(len(plan.Photos), len(plan.Frames), false)
			return nil
		},
	}
}

// framesDuplicateCommand creates the "frames duplicate" subcommand.
// The copy is offset so it does not sit exactly on top of the original.
func (c *CLI) framesDuplicateCommand() *cobra.Command {
	var offset float64

	cmd := &cobra.Command{
		Use:   "duplicate [plan.json] [frame-id]",
		Short: "Duplicate a frame",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := gallery.ReadPlanFile(args[0])
			if err != nil {
				return fmt.Errorf("load plan %s: %w", args[0], err)
			}

			store := gallery.NewFrameStore(plan.Frames)
			frame, err := resolveFrame(store, args[1])
			if err != nil {
				return err
			}

			dup := frame
			dup.ID = gallery.NewFrameID()
			dup.X += offset
			dup.Y += offset
			if err := store.Add(dup); err != nil {
				return err
			}

			plan.Frames = store.Frames()
			if err := gallery.WritePlanFile(plan, args[0]); err != nil {
				return fmt.Errorf("write plan %s: %w", args[0], err)
			}

			printSuccess("Duplicated frame %s as %s", frame.ID, dup.ID)
			if hits := store.FindCollisions(dup); len(hits) > 0 {
				printWarning("The copy overlaps %d frames", len(hits))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&offset, "offset", 20, "offset of the copy from the original")

	return cmd
}

// editFrame loads the plan, applies edit to the resolved frame, checks for
// collisions, and writes the plan back.
func (c *CLI) editFrame(path, idPrefix string, edit func(*gallery.Frame) error) error {
	plan, err := gallery.ReadPlanFile(path)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", path, err)
	}

	store := gallery.NewFrameStore(plan.Frames)
	frame, err := resolveFrame(store, idPrefix)
	if err != nil {
		return err
	}

	if err := edit(&frame); err != nil {
		return err
	}
	if err := store.Update(frame); err != nil {
		return err
	}

	plan.Frames = store.Frames()
	if err := gallery.WritePlanFile(plan, path); err != nil {
		return fmt.Errorf("write plan %s: %w", path, err)
	}

	printSuccess("Updated frame %s", frame.ID)
	printDetail("at (%.0f, %.0f) %.0f×%.0f %+.1f°", frame.X, frame.Y, frame.Width, frame.Height, frame.Rotation)
	if hits := store.FindCollisions(frame); len(hits) > 0 {
		printWarning("Frame now overlaps %d other frames", len(hits))
	}
	return nil
}

// resolveFrame finds a frame by exact ID or unique ID prefix.
func resolveFrame(store *gallery.FrameStore, idPrefix string) (gallery.Frame, error) {
	if frame, ok := store.Get(idPrefix); ok {
		return frame, nil
	}

	var matches []gallery.Frame
	for _, f := range store.Frames() {
		if len(idPrefix) > 0 && len(f.ID) >= len(idPrefix) && f.ID[:len(idPrefix)] == idPrefix {
			matches = append(matches, f)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return gallery.Frame{}, fmt.Errorf("no frame matches %q (try 'frames list')", idPrefix)
	default:
		return gallery.Frame{}, fmt.Errorf("frame ID %q is ambiguous (%d matches)", idPrefix, len(matches))
	}
}
