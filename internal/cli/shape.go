package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/tetris-go/internal/model"
)

func newSpawnShapeCmd() *cobra.Command {
	var facing string

	cmd := &cobra.Command{
		Use:   "spawn-shape <type>",
		Short: "Print the spawn cells of a piece shape",
		Example: `  tetris spawn-shape T
  tetris spawn-shape I --facing east`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := model.ParseTetriminoType(args[0])
			if err != nil {
				return err
			}
			target, err := model.ParseTetriminoFacing(facing)
			if err != nil {
				return err
			}

			piece, err := model.SpawnPiece(t)
			if err != nil {
				return err
			}
			// O has a single orientation and stays facing north
			for steps := int(target - model.FacingNorth); steps > 0; steps-- {
				piece = piece.RotatedCW()
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(piece)
			return nil
		},
	}

	cmd.Flags().StringVar(&facing, "facing", model.FacingNorth.String(), "Facing: north, east, south, west")

	return cmd
}
