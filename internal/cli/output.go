package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/tetris-go/internal/model"
)

// activeCell marks cells of the active piece in text board output
const activeCell = '@'

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case CollisionView:
		o.printCollision(v)
	case model.Piece:
		o.printPiece(v)
	case *model.Session:
		o.printSession(v)
	case MoveView:
		o.printMove(v)
	case SessionList:
		o.printSessionList(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// CollisionView is the result of testing a set of cells
type CollisionView struct {
	Cells     []model.Point `json:"cells"`
	Legal     bool          `json:"legal"`
	Collision string        `json:"collision"`
	Flags     []string      `json:"flags"`
}

func newCollisionView(cells []model.Point, result model.CollisionResult) CollisionView {
	return CollisionView{
		Cells:     cells,
		Legal:     result.IsNone(),
		Collision: result.String(),
		Flags:     result.Flags(),
	}
}

// MoveView is the outcome of a session move command
type MoveView struct {
	Command     model.Command  `json:"command"`
	Moved       bool           `json:"moved"`
	Collision   string         `json:"collision"`
	Locked      bool           `json:"locked"`
	RowsDropped int            `json:"rows_dropped,omitempty"`
	Session     *model.Session `json:"session"`
}

// SessionList lists stored session IDs
type SessionList struct {
	Sessions []model.SessionID `json:"sessions"`
}

func (o *Output) printCollision(v CollisionView) {
	cells := make([]string, len(v.Cells))
	for i, c := range v.Cells {
		cells[i] = "(" + c.String() + ")"
	}
	fmt.Fprintf(o.w, "Cells: %s\n", strings.Join(cells, " "))
	fmt.Fprintf(o.w, "Collision: %s\n", v.Collision)
}

func (o *Output) printPiece(p model.Piece) {
	fmt.Fprintf(o.w, "Piece: %s facing %s\n", p.Type, p.Facing)
	fmt.Fprintf(o.w, "Pivot: (%s)\n", p.Pivot)

	cells := make([]string, len(p.Cells))
	minRow, maxRow := p.Cells[0].Row, p.Cells[0].Row
	minCol, maxCol := p.Cells[0].Col, p.Cells[0].Col
	for i, c := range p.Cells {
		cells[i] = "(" + c.String() + ")"
		minRow, maxRow = min(minRow, c.Row), max(maxRow, c.Row)
		minCol, maxCol = min(minCol, c.Col), max(maxCol, c.Col)
	}
	fmt.Fprintf(o.w, "Cells: %s\n", strings.Join(cells, " "))

	// Bounding box of the shape
	for row := minRow; row <= maxRow; row++ {
		line := make([]byte, 0, maxCol-minCol+1)
		for col := minCol; col <= maxCol; col++ {
			ch := byte('.')
			for _, c := range p.Cells {
				if c.Row == row && c.Col == col {
					ch = p.Type.Letter()
				}
			}
			line = append(line, ch)
		}
		fmt.Fprintf(o.w, "  %s\n", line)
	}
}

func (o *Output) printSession(s *model.Session) {
	fmt.Fprintf(o.w, "Session: %s\n", s.ID)
	fmt.Fprintf(o.w, "Locked pieces: %d\n", s.LockedPieces)
	if s.GameOver {
		fmt.Fprintln(o.w, "Game over")
	}
	if s.Active != nil {
		fmt.Fprintf(o.w, "Active: %s facing %s at (%s)\n", s.Active.Type, s.Active.Facing, s.Active.Pivot)
	}
	o.printBoard(s)
}

// printBoard draws the visible rows plus any buffer rows in use, bottom row last
func (o *Output) printBoard(s *model.Session) {
	top := model.BufferRows
	for row := 0; row < model.BufferRows; row++ {
		if s.Playfield.RowString(row) != strings.Repeat(".", model.Cols) {
			top = row
			break
		}
	}
	if s.Active != nil {
		for _, c := range s.Active.Cells {
			top = min(top, max(c.Row, 0))
		}
	}

	border := "   +" + strings.Repeat("-", model.Cols) + "+"
	fmt.Fprintln(o.w, border)
	for row := top; row < model.Rows; row++ {
		line := []byte(s.Playfield.RowString(row))
		if s.Active != nil {
			for _, c := range s.Active.Cells {
				if c.Row == row && c.Col >= 0 && c.Col < model.Cols {
					line[c.Col] = activeCell
				}
			}
		}
		fmt.Fprintf(o.w, "%2d |%s|\n", row, line)
	}
	fmt.Fprintln(o.w, border)
}

func (o *Output) printMove(v MoveView) {
	switch {
	case v.Locked:
		fmt.Fprintf(o.w, "Locked after dropping %d rows\n", v.RowsDropped)
	case v.Moved:
		fmt.Fprintf(o.w, "Applied %s\n", v.Command)
	case v.Collision != model.CollisionNone.String():
		fmt.Fprintf(o.w, "Blocked: %s\n", v.Collision)
	default:
		fmt.Fprintln(o.w, "No change")
	}
	o.printSession(v.Session)
}

func (o *Output) printSessionList(v SessionList) {
	if len(v.Sessions) == 0 {
		fmt.Fprintln(o.w, "No sessions")
		return
	}
	for _, id := range v.Sessions {
		fmt.Fprintln(o.w, id)
	}
}
