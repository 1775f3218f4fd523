package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/kalra1569/MazeSwiper/config"
	"github.com/kalra1569/MazeSwiper/model"
	"github.com/kalra1569/MazeSwiper/round"
	"github.com/kalra1569/MazeSwiper/sched"
)

type command int

const (
	cmdSwipe command = iota + 1
	cmdHardMode
	cmdResume
	cmdQuit
)

type input struct {
	cmd command
	dir model.Direction
}

// parseLine turns one line of terminal input into commands. An empty line dismisses a
// wellness interruption.
func parseLine(line string) []input {
	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" {
		return []input{{cmd: cmdResume}}
	}
	var out []input
	for _, r := range line {
		switch r {
		case 'w':
			out = append(out, input{cmdSwipe, model.Up})
		case 's':
			out = append(out, input{cmdSwipe, model.Down})
		case 'a':
			out = append(out, input{cmdSwipe, model.Left})
		case 'd':
			out = append(out, input{cmdSwipe, model.Right})
		case 'h':
			out = append(out, input{cmd: cmdHardMode})
		case 'q':
			out = append(out, input{cmd: cmdQuit})
		}
	}
	return out
}

func runTerminal(ctx context.Context, cfg config.Config, rng *rand.Rand, in io.Reader, out io.Writer) error {
	loop := sched.NewLoop(16, log.StandardLogger())
	ctrl, err := round.New(cfg, round.Deps{
		Scheduler: loop,
		Rand:      rng,
		Logger:    log.StandardLogger(),
		Wellness: round.WellnessFunc(func(message string) {
			fmt.Fprintf(out, "\n*** %s ***\npress Enter to continue\n", message)
		}),
		OnRoundEnd: logRoundEnd,
	})
	if err != nil {
		return err
	}

	draw := func() {
		s := ctrl.Snapshot()
		if s.Phase == round.PhaseWellness {
			return
		}
		fmt.Fprint(out, renderASCII(s))
	}

	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			commands := parseLine(scanner.Text())
			posted := loop.Post(func() {
				for _, c := range commands {
					switch c.cmd {
					case cmdSwipe:
						ctrl.Swipe(c.dir)
					case cmdHardMode:
						ctrl.SetHardMode(!ctrl.Snapshot().HardMode)
					case cmdResume:
						ctrl.Resume()
					case cmdQuit:
						ctrl.Stop()
						loop.Stop()
						return
					}
				}
				draw()
			})
			if !posted {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			log.WithError(err).Error("reading input")
		}
		loop.Stop()
	}()

	loop.Post(func() {
		fmt.Fprintln(out, "w/a/s/d + Enter to swipe, h toggles hard mode, q quits")
		ctrl.Start()
		draw()
	})
	loop.Every(cfg.TickInterval, draw)
	return loop.Run(ctx)
}

// renderASCII draws the maze with P for the player and G for the visible goal.
func renderASCII(s round.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s  time %d  rounds %d", s.Phase.Name(), s.TimeRemaining, s.RoundsCompleted)
	if s.HardMode {
		b.WriteString("  hard")
	}
	b.WriteByte('\n')
	if s.Grid == nil {
		return b.String()
	}
	for r := 0; r < s.Grid.Rows(); r++ {
		for c := 0; c < s.Grid.Cols(); c++ {
			cell := model.Cell{Row: r, Col: c}
			switch {
			case cell == s.Player.Cell:
				b.WriteByte('P')
			case s.GoalVisible && cell == s.Goal.Cell:
				b.WriteByte('G')
			case s.Grid.IsOpen(cell):
				b.WriteByte(' ')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
