package theme

import (
	"fmt"

	"git.lost.host/meutraa/lanes/internal/game"
)

type Color struct {
	R, G, B uint8
}

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderNote(lane int, instrument string) string {
	color := getLaneColor(lane)
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", color.R, color.G, color.B, getSym(instrument))
}

func (t *DefaultTheme) RenderHitField(lane int) string {
	return barSym
}

func (t *DefaultTheme) RenderGrade(grade game.Grade, text string) string {
	color, ok := gradeColors[grade]
	if !ok {
		return text
	}
	return fmt.Sprintf("\033[1;38;2;%v;%v;%vm%v\033[0m", color.R, color.G, color.B, text)
}

const (
	barSym     = "-"
	defaultSym = "⬤"
)

var (
	instrumentSyms = map[string]string{
		"kendang": "◉",
		"drum":    "◉",
		"saron":   "◆",
		"bonang":  "◈",
		"gong":    "◎",
		"cymbal":  "✶",
	}
	laneColors = map[int]Color{
		1:  {236, 30, 0},    // red
		2:  {0, 118, 236},   // blue
		3:  {236, 195, 0},   // yellow
		4:  {0, 236, 128},   // green
		5:  {106, 0, 236},   // purple
		6:  {236, 128, 0},   // orange
		-1: {255, 255, 255}, // other white
	}
	gradeColors = map[game.Grade]Color{
		game.Perfect: {173, 236, 236},
		game.Good:    {0, 236, 128},
		game.OK:      {236, 195, 0},
		game.Miss:    {236, 30, 0},
	}
)

func getSym(instrument string) string {
	sym, ok := instrumentSyms[instrument]
	if !ok {
		return defaultSym
	}
	return sym
}

func getLaneColor(lane int) Color {
	col, ok := laneColors[lane]
	if !ok {
		return laneColors[-1]
	}
	return col
}
