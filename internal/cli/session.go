package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/tetris-go/internal/model"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session commands",
	}

	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionListCmd())
	cmd.AddCommand(newSessionShowCmd())
	cmd.AddCommand(newSessionSpawnCmd())
	cmd.AddCommand(newSessionMoveCmd())
	cmd.AddCommand(newSessionLockCmd())
	cmd.AddCommand(newSessionLandingCmd())
	cmd.AddCommand(newSessionProbeCmd())
	cmd.AddCommand(newSessionResetCmd())
	cmd.AddCommand(newSessionDeleteCmd())

	return cmd
}

func newSessionCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a session with an empty playfield",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			session, err := a.SessionController.CreateSession(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(session)
			return nil
		},
	}
}

func newSessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			ids, err := a.SessionController.ListSessions(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(SessionList{Sessions: ids})
			return nil
		},
	}
}

func newSessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a session's playfield and active piece",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			session, err := a.SessionController.GetSession(cmd.Context(), model.SessionID(args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(session)
			return nil
		},
	}
}

func newSessionSpawnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spawn <id> <type>",
		Short: "Spawn a new active piece",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := model.ParseTetriminoType(args[1])
			if err != nil {
				return err
			}

			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			session, err := a.SessionController.Spawn(cmd.Context(), model.SessionID(args[0]), t)
			if errors.Is(err, model.ErrGameOver) {
				return fmt.Errorf("%w: no room to spawn %s", err, t)
			}
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(session)
			return nil
		},
	}
}

func newSessionMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <command>...",
		Short: "Apply commands to the active piece",
		Long: `Apply one or more commands to the active piece, in order.

Commands: none, shift_left (left), shift_right (right), rotate_ccw (ccw),
rotate_cw (cw), soft_drop (down), hard_drop (drop). A hard drop locks the piece,
so it may only be the last command.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			commands := make([]model.Command, 0, len(args)-1)
			for i, arg := range args[1:] {
				c, err := model.ParseCommand(arg)
				if err != nil {
					return err
				}
				if c == model.CommandHardDrop && i != len(args)-2 {
					return fmt.Errorf("%w: %s locks the piece and must be the last command", model.ErrInvalidCommand, c)
				}
				commands = append(commands, c)
			}

			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)

			var view MoveView
			for i, c := range commands {
				result, err := a.SessionController.Move(cmd.Context(), model.SessionID(args[0]), c)
				if err != nil {
					// Earlier commands are already saved; show where they left the piece
					if i > 0 {
						out.Print(view)
					}
					return fmt.Errorf("command %d (%s): %w", i+1, c, err)
				}
				view = MoveView{
					Command:     c,
					Moved:       result.Moved,
					Collision:   result.Collision.String(),
					Locked:      result.Locked,
					RowsDropped: result.RowsDropped,
					Session:     result.Session,
				}
			}

			out.Print(view)
			return nil
		},
	}
}

func newSessionLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock <id>",
		Short: "Lock the active piece where it stands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			session, err := a.SessionController.Lock(cmd.Context(), model.SessionID(args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(session)
			return nil
		},
	}
}

func newSessionLandingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "landing <id>",
		Short: "Show where the active piece would land if hard dropped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			piece, err := a.SessionController.Landing(cmd.Context(), model.SessionID(args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(piece)
			return nil
		},
	}
}

func newSessionProbeCmd() *cobra.Command {
	var cells []string

	cmd := &cobra.Command{
		Use:   "probe <id>",
		Short: "Test cells for collisions against a session's playfield",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := parsePoints(cells)
			if err != nil {
				return err
			}
			if len(points) == 0 {
				return errors.New("at least one --cell is required")
			}

			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := a.SessionController.Probe(cmd.Context(), model.SessionID(args[0]), points)
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(newCollisionView(points, result))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&cells, "cell", nil, "Cell to test as ROW,COL (repeatable)")

	return cmd
}

func newSessionResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <id>",
		Short: "Empty the playfield and start the session over",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			session, err := a.SessionController.Reset(cmd.Context(), model.SessionID(args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(session)
			return nil
		},
	}
}

func newSessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			id := model.SessionID(args[0])
			if err := a.SessionController.DeleteSession(cmd.Context(), id); err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.PrintMessage(fmt.Sprintf("Session %s deleted", id))
			return nil
		},
	}
}
