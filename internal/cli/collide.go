package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/tetris-go/internal/model"
)

func newCollideCmd() *cobra.Command {
	var fills []string
	var cells []string

	cmd := &cobra.Command{
		Use:   "collide",
		Short: "Test cells for collisions against an ad-hoc playfield",
		Example: `  tetris collide --fill 39,4=T --cell 39,4 --cell=39,-1
  tetris collide --cell 40,0 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pf := model.NewPlayfield()
			for _, f := range fills {
				p, t, err := parseFill(f)
				if err != nil {
					return err
				}
				pf.Set(p, t)
			}

			points, err := parsePoints(cells)
			if err != nil {
				return err
			}
			if len(points) == 0 {
				return errors.New("at least one --cell is required")
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(newCollisionView(points, pf.TestCollision(points...)))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&fills, "fill", nil, "Occupied cell as ROW,COL=TYPE (repeatable)")
	cmd.Flags().StringArrayVar(&cells, "cell", nil, "Cell to test as ROW,COL (repeatable)")

	return cmd
}

// parseFill parses "ROW,COL=TYPE" into an in-bounds cell and a piece shape
func parseFill(s string) (model.Point, model.TetriminoType, error) {
	pointStr, typeStr, ok := strings.Cut(s, "=")
	if !ok {
		return model.Point{}, model.TetriminoNone, fmt.Errorf("fill %q must be ROW,COL=TYPE", s)
	}
	p, err := model.ParsePoint(pointStr)
	if err != nil {
		return model.Point{}, model.TetriminoNone, err
	}
	if !model.InBounds(p) {
		return model.Point{}, model.TetriminoNone, fmt.Errorf("fill cell (%s) is outside the %dx%d playfield", p, model.Rows, model.Cols)
	}
	t, err := model.ParseTetriminoType(typeStr)
	if err != nil {
		return model.Point{}, model.TetriminoNone, err
	}
	if !t.IsValid() {
		return model.Point{}, model.TetriminoNone, fmt.Errorf("%w: fill needs a piece shape", model.ErrInvalidTetriminoType)
	}
	return p, t, nil
}

func parsePoints(values []string) ([]model.Point, error) {
	points := make([]model.Point, 0, len(values))
	for _, v := range values {
		p, err := model.ParsePoint(v)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}
