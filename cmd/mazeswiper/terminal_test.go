package main

import (
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalra1569/MazeSwiper/config"
	"github.com/kalra1569/MazeSwiper/model"
	"github.com/kalra1569/MazeSwiper/round"
)

func TestParseLine(t *testing.T) {
	assert.Equal(t, []input{{cmd: cmdResume}}, parseLine("  "))
	assert.Equal(t, []input{
		{cmdSwipe, model.Right},
		{cmdSwipe, model.Down},
		{cmd: cmdHardMode},
	}, parseLine("D s h"))
	assert.Equal(t, []input{{cmd: cmdQuit}}, parseLine("xq"))
	assert.Empty(t, parseLine("xyz"))
}

func TestRenderASCII(t *testing.T) {
	g, err := model.ParseLines(
		"#####",
		"#...#",
		"###.#",
		"#...#",
		"#####",
	)
	require.NoError(t, err)
	s := round.Snapshot{
		Phase:         round.PhaseGoalVisible,
		Grid:          g,
		Player:        model.NewToken(model.Start, 10),
		Goal:          model.NewToken(model.Cell{Row: 3, Col: 1}, 10),
		GoalVisible:   true,
		TimeRemaining: 12,
	}
	out := renderASCII(s)
	assert.Contains(t, out, "GOAL_VISIBLE  time 12  rounds 0\n")
	assert.Contains(t, out, "#P  #\n###.#\n#G  #\n")

	s.GoalVisible = false
	assert.Contains(t, renderASCII(s), "#   #\n#####")
}

func TestRunTerminalQuits(t *testing.T) {
	cfg := config.Default()
	cfg.UI = config.UITerminal
	var out bytes.Buffer

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := runTerminal(ctx, cfg, rand.New(rand.NewSource(1)), strings.NewReader("q\n"), &out)
	assert.NoError(t, err)
}
