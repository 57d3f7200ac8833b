package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkrause/wallery/pkg/gallery"
)

// collisionsCommand creates the collisions command for reporting overlaps.
func (c *CLI) collisionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "collisions [plan.json]",
		Short: "Report overlapping frames in a plan",
		Long: `Report overlapping frames in a plan.

Overlap is tested against each frame's axis-aligned bounding box; rotation is
ignored. Frames that merely touch along an edge do not overlap. Grid, row,
and symmetric arrangements never overlap; salon arrangements may.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := gallery.ReadPlanFile(args[0])
			if err != nil {
				return fmt.Errorf("load plan %s: %w", args[0], err)
			}

			store := gallery.NewFrameStore(plan.Frames)
			pairs := store.CollidingPairs()
			if len(pairs) == 0 {
				printSuccess("No overlapping frames (%d frames checked)", store.Len())
				return nil
			}

			byID := plan.Photos.ByID()
			printWarning("%d overlapping pairs", len(pairs))
			for _, pair := range pairs {
				printDetail("%-10.10s %-20s overlaps %-10.10s %s",
					pair[0].ID, photoName(byID, pair[0].PhotoID),
					pair[1].ID, photoName(byID, pair[1].PhotoID))
			}
			printNewline()
			printNextStep("Adjust", "wallery arrange "+args[0])
			return nil
		},
	}
}

func photoName(byID map[string]gallery.Photo, id string) string {
	if p, ok := byID[id]; ok {
		return p.Name
	}
	return "(missing photo)"
}
