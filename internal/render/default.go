package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/lanes/internal/engine"
	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/score"
	"git.lost.host/meutraa/lanes/internal/theme"
	"golang.org/x/term"
)

type DefaultRenderer struct {
	Theme   theme.Theme
	Lanes   int
	BarRow  int // Rows between the strike line and the bottom
	Spacing int // Columns between lanes

	out          io.Writer
	buffer       strings.Builder
	restoreState *term.State
	fd           int

	rows, cols  int
	decorations []*decoration
	sprites     map[game.NoteID]*sprite
	label       []string
	labelGrade  game.Grade
	labelFrames int
}

type decoration struct {
	X, Y    int
	Content string
	Frames  int // remaining frames until removed
}

type sprite struct {
	lane int
	row  int // 0 while not drawn
	sym  string
}

func NewDefaultRenderer(out io.Writer, th theme.Theme, lanes int) *DefaultRenderer {
	return &DefaultRenderer{
		Theme:   th,
		Lanes:   lanes,
		BarRow:  4,
		Spacing: 6,
		out:     out,
		fd:      -1,
		rows:    24,
		cols:    80,
		sprites: map[game.NoteID]*sprite{},
	}
}

func (r *DefaultRenderer) SetSize(rows, cols int) {
	r.rows, r.cols = rows, cols
}

func (r *DefaultRenderer) Init() error {
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.fd = int(f.Fd())
		cols, rows, err := term.GetSize(r.fd)
		if nil != err {
			return fmt.Errorf("unable to get terminal size: %w", err)
		}
		r.SetSize(rows, cols)

		state, err := term.MakeRaw(r.fd)
		if nil != err {
			return err
		}
		r.restoreState = state
	}

	fmt.Fprintf(r.out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[2J",     // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Fprintf(r.out, "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(r.fd, r.restoreState)
}

func (r *DefaultRenderer) hitRow() int {
	return r.rows - r.BarRow
}

func (r *DefaultRenderer) column(lane int) int {
	return r.cols/2 + r.Spacing*(2*lane-r.Lanes-1)/2
}

func (r *DefaultRenderer) sideColumn() int {
	col := r.column(1) - 36
	if col < 2 {
		col = 2
	}
	return col
}

// row converts a progress ratio into a screen row, 0 when off screen.
func (r *DefaultRenderer) row(ratio float64) int {
	row := 1 + int(math.Round(ratio*float64(r.hitRow()-1)))
	if row < 1 || row > r.rows {
		return 0
	}
	return row
}

func (r *DefaultRenderer) NoteSpawned(note *game.PendingNote, travel time.Duration) {
	r.sprites[note.ID] = &sprite{
		lane: note.Event.Lane,
		sym:  r.Theme.RenderNote(note.Event.Lane, note.Event.Instrument),
	}
}

func (r *DefaultRenderer) NoteProgress(id game.NoteID, ratio float64) {
	s, ok := r.sprites[id]
	if !ok {
		return
	}
	row := r.row(ratio)
	if row == s.row {
		return
	}
	r.clear(s)
	s.row = row
	if row != 0 {
		r.Fill(row, r.column(s.lane), s.sym)
	}
}

func (r *DefaultRenderer) clear(s *sprite) {
	if s.row == 0 {
		return
	}
	if s.row == r.hitRow() {
		r.Fill(s.row, r.column(s.lane), r.Theme.RenderHitField(s.lane))
	} else {
		r.Fill(s.row, r.column(s.lane), " ")
	}
}

func (r *DefaultRenderer) remove(id game.NoteID) (*sprite, bool) {
	s, ok := r.sprites[id]
	if !ok {
		return nil, false
	}
	r.clear(s)
	delete(r.sprites, id)
	return s, true
}

func (r *DefaultRenderer) NoteExpired(id game.NoteID) {
	s, ok := r.remove(id)
	if !ok {
		return
	}
	r.AddDecoration(r.column(s.lane), r.hitRow()+1, r.Theme.RenderGrade(game.Miss, "✗"), 240)
}

func (r *DefaultRenderer) Hit(result engine.HitResult) {
	grade := result.Judgement.Grade
	if s, ok := r.remove(result.Note.ID); ok {
		r.AddDecoration(r.column(s.lane), r.hitRow()+1, r.Theme.RenderGrade(grade, "●"), 120)
	}
	r.setLabel(grade, result.Combo)
}

func (r *DefaultRenderer) Miss(combo int) {
	r.setLabel(game.Miss, combo)
}

func (r *DefaultRenderer) NoMatch(lane int) {
	if lane < 1 || lane > r.Lanes {
		return
	}
	r.AddDecoration(r.column(lane), r.hitRow()+1, "\033[38;5;240m○\033[0m", 60)
}

func (r *DefaultRenderer) setLabel(grade game.Grade, combo int) {
	r.clearLabel()
	r.label = strings.Split(score.Label(grade, combo), "\n")
	r.labelGrade = grade
	r.labelFrames = 300
}

func (r *DefaultRenderer) clearLabel() {
	for i, line := range r.label {
		r.Fill(r.rows/3+i, r.cols/2-len(line)/2, strings.Repeat(" ", len(line)))
	}
	r.label = nil
}

func (r *DefaultRenderer) AddDecoration(col, row int, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Frames:  frames,
	})
	r.Fill(row, col, content)
}

func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames == 0 {
			r.Fill(d.Y, d.X, " ")
			continue
		}
		nd = append(nd, d)
		d.Frames--
	}
	r.decorations = nd
}

func (r *DefaultRenderer) Frame(elapsed time.Duration, tally score.Tally) {
	// Render the hit bar
	for lane := 1; lane <= r.Lanes; lane++ {
		r.Fill(r.hitRow(), r.column(lane), r.Theme.RenderHitField(lane))
	}

	if r.labelFrames > 0 {
		r.labelFrames--
		for i, line := range r.label {
			r.Fill(r.rows/3+i, r.cols/2-len(line)/2, r.Theme.RenderGrade(r.labelGrade, line))
		}
	} else if nil != r.label {
		r.clearLabel()
	}

	r.stats(elapsed, tally)
	r.tickDecorations()
	r.flush()
}

func (r *DefaultRenderer) stats(elapsed time.Duration, tally score.Tally) {
	col := r.sideColumn()
	r.Fill(2, col, fmt.Sprintf("       Time:  %6.1f s ", elapsed.Seconds()))
	r.Fill(4, col, fmt.Sprintf("      Score:  %6v", tally.Score))
	r.Fill(5, col, fmt.Sprintf("      Combo:  %6v", tally.Combo))
	r.Fill(6, col, fmt.Sprintf("  Max Combo:  %6v", tally.MaxCombo))
	r.Fill(8, col, fmt.Sprintf("   Error dt:  %6v ms ", tally.TotalError.Milliseconds()))
	r.Fill(9, col, fmt.Sprintf("       Mean:  %6.2f ms ", float64(tally.Mean())/float64(time.Millisecond)))
	r.Fill(10, col, fmt.Sprintf("      Stdev:  %6.2f ms ", float64(tally.Stdev())/float64(time.Millisecond)))
	for g := game.Perfect; g <= game.Miss; g++ {
		name := fmt.Sprintf("%11v", g)
		r.Fill(12+int(g), col, fmt.Sprintf("%v:  %6v", r.Theme.RenderGrade(g, name), tally.Counts[g]))
	}
}

func (r *DefaultRenderer) Summary(song *game.Song, tally score.Tally) {
	r.buffer.WriteString("\033[2J")
	lines := []string{
		song.String(),
		"",
		fmt.Sprintf("Score %v", tally.Score),
		fmt.Sprintf("Max Combo %v", tally.MaxCombo),
	}
	for g := game.Perfect; g <= game.Miss; g++ {
		lines = append(lines, fmt.Sprintf("%v %v", g, tally.Counts[g]))
	}
	lines = append(lines, "", "press any key")
	top := r.rows/2 - len(lines)/2
	for i, line := range lines {
		r.Fill(top+i, r.cols/2-len(line)/2, line)
	}
	r.flush()
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) flush() {
	io.WriteString(r.out, r.buffer.String())
	r.buffer.Reset()
}
