package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gospline/internal/logger"
	"github.com/philipparndt/gospline/pkg/document"
	"github.com/philipparndt/gospline/pkg/spline"
)

var editOpen bool

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Modify the control polygon of a spline document",
}

var editAddCmd = &cobra.Command{
	Use:   "add <file> <x> <y> <z>",
	Short: "Append a segment ending at the given anchor",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		anchor, err := parseVector(args[1:])
		if err != nil {
			return err
		}
		return editDocument(cmd, args[0], "add", func(p *spline.ControlPolygon) error {
			return p.AddSegment(anchor)
		})
	},
}

var editSplitCmd = &cobra.Command{
	Use:   "split <file> <segment> <x> <y> <z>",
	Short: "Split a segment by inserting an anchor",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		segment, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		anchor, err := parseVector(args[2:])
		if err != nil {
			return err
		}
		return editDocument(cmd, args[0], "split", func(p *spline.ControlPolygon) error {
			return p.SplitSegment(anchor, segment)
		})
	},
}

var editDeleteCmd = &cobra.Command{
	Use:   "delete <file> <point>",
	Short: "Delete the segment of the anchor at the given point index",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		return editDocument(cmd, args[0], "delete", func(p *spline.ControlPolygon) error {
			return p.DeleteSegment(index)
		})
	},
}

var editMoveCmd = &cobra.Command{
	Use:   "move <file> <point> <x> <y> <z>",
	Short: "Move a point, dragging controls along with anchors",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		pos, err := parseVector(args[2:])
		if err != nil {
			return err
		}
		return editDocument(cmd, args[0], "move", func(p *spline.ControlPolygon) error {
			return p.MovePoint(index, pos)
		})
	},
}

var editCloseCmd = &cobra.Command{
	Use:   "close <file>",
	Short: "Close the spline into a loop, or open it with --open",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editDocument(cmd, args[0], "close", func(p *spline.ControlPolygon) error {
			return p.SetClosed(!editOpen)
		})
	},
}

var editPolicyCmd = &cobra.Command{
	Use:   "policy <file> <free|tangent|auto-smooth>",
	Short: "Change the control point policy",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := spline.ParsePolicy(args[1])
		if err != nil {
			return err
		}
		return editDocument(cmd, args[0], "policy", func(p *spline.ControlPolygon) error {
			p.SetPolicy(policy)
			return nil
		})
	},
}

var editAngleCmd = &cobra.Command{
	Use:   "angle <file> <anchor> <degrees>",
	Short: "Set the twist angle of an anchor",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		anchor, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		degrees, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid angle %q", args[2])
		}
		return editDocument(cmd, args[0], "angle", func(p *spline.ControlPolygon) error {
			return p.SetAngle(anchor, degrees)
		})
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.AddCommand(editAddCmd, editSplitCmd, editDeleteCmd, editMoveCmd, editCloseCmd, editPolicyCmd, editAngleCmd)

	editCloseCmd.Flags().BoolVar(&editOpen, "open", false, "Open a closed spline instead")
}

// editDocument loads the document at path, applies edit and saves it back
func editDocument(cmd *cobra.Command, path, op string, edit func(*spline.ControlPolygon) error) error {
	poly, doc, err := document.LoadPolygon(path)
	if err != nil {
		return err
	}
	if err := edit(poly); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := document.FromPolygon(doc.Name, poly).Save(path); err != nil {
		return err
	}

	logger.Info("updated document", zap.String("path", path), zap.String("op", op), zap.Int("points", poly.NumPoints()))
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, polygonSummary(poly))
	return nil
}
