package main

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"

	"github.com/kalra1569/MazeSwiper/config"
	"github.com/kalra1569/MazeSwiper/model"
	"github.com/kalra1569/MazeSwiper/round"
	"github.com/kalra1569/MazeSwiper/sched"
)

const (
	hudHeight = 48
	// frame is one ebiten update at the default 60 TPS.
	frame = time.Second / 60
)

func hexColor(u uint32) color.RGBA {
	return color.RGBA{R: uint8(u >> 16), G: uint8(u >> 8), B: uint8(u), A: 0xff}
}

var (
	colorBackground = hexColor(0x464646)
	colorWall       = hexColor(0x1e1e1e)
	colorPlayer     = hexColor(0x34fbf6)
	colorGoal       = hexColor(0x0abd38)
	colorHardGoal   = hexColor(0xfa3636)
	colorPanel      = hexColor(0x321ecc)
	colorPanelEdge  = hexColor(0xedbc1e)
)

var keySwipes = map[ebiten.Key]model.Direction{
	ebiten.KeyUp:    model.Up,
	ebiten.KeyW:     model.Up,
	ebiten.KeyDown:  model.Down,
	ebiten.KeyS:     model.Down,
	ebiten.KeyLeft:  model.Left,
	ebiten.KeyA:     model.Left,
	ebiten.KeyRight: model.Right,
	ebiten.KeyD:     model.Right,
}

// popup shows wellness interruptions until dismissed by a tap or Enter.
type popup struct {
	message string
	visible bool
	panel   *Nine
}

func (p *popup) Pause(message string) {
	p.message = message
	p.visible = true
}

type Game struct {
	cfg     config.Config
	clock   *sched.Manual
	ctrl    *round.Controller
	popup   *popup
	strokes map[*Stroke]struct{}
	font    font.Face
	small   font.Face

	width, height int
}

func newGame(cfg config.Config, rng *rand.Rand) (*Game, error) {
	face, err := loadFace(28)
	if err != nil {
		return nil, err
	}
	small, err := loadFace(16)
	if err != nil {
		return nil, err
	}
	panel, err := newPanelImage(12, colorPanelEdge, colorPanel)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		clock:   sched.NewManual(),
		popup:   &popup{panel: panel},
		strokes: map[*Stroke]struct{}{},
		font:    face,
		small:   small,
		width:   int(float64(cfg.Cols) * cfg.CellSize),
		height:  int(float64(cfg.Rows)*cfg.CellSize) + hudHeight,
	}
	g.ctrl, err = round.New(cfg, round.Deps{
		Scheduler:  g.clock,
		Rand:       rng,
		Wellness:   g.popup,
		Logger:     log.StandardLogger(),
		OnRoundEnd: logRoundEnd,
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func runWindow(cfg config.Config, rng *rand.Rand) error {
	g, err := newGame(cfg, rng)
	if err != nil {
		return err
	}
	g.ctrl.Start()
	return ebiten.Run(g.update, g.width, g.height, 1, "MazeSwiper")
}

func (g *Game) dismiss() {
	if !g.popup.visible {
		return
	}
	g.popup.visible = false
	g.ctrl.Resume()
}

func (g *Game) handleInput() {
	for key, dir := range keySwipes {
		if inpututil.IsKeyJustPressed(key) {
			g.ctrl.Swipe(dir)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.ctrl.SetHardMode(!g.ctrl.Snapshot().HardMode)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.dismiss()
	}

	threshold := int(g.cfg.CellSize / 2)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.strokes[NewStroke(mousePointer{}, threshold)] = struct{}{}
	}
	for _, id := range inpututil.JustPressedTouchIDs() {
		g.strokes[NewStroke(touchPointer{id: id}, threshold)] = struct{}{}
	}

	for s := range g.strokes {
		s.Update()
		if !s.IsReleased() {
			continue
		}
		delete(g.strokes, s)
		if dir, ok := s.Swipe(); ok {
			g.ctrl.Swipe(dir)
		} else if s.IsTap() {
			g.dismiss()
		}
	}
}

func (g *Game) update(screen *ebiten.Image) error {
	g.handleInput()
	g.clock.Advance(frame)

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	g.draw(screen)
	return nil
}

func (g *Game) draw(screen *ebiten.Image) {
	if err := screen.Fill(colorBackground); err != nil {
		log.Printf("%v", err)
	}
	s := g.ctrl.Snapshot()
	size := g.cfg.CellSize

	if s.Grid != nil {
		for r := 0; r < s.Grid.Rows(); r++ {
			for c := 0; c < s.Grid.Cols(); c++ {
				if !s.Grid.IsOpen(model.Cell{Row: r, Col: c}) {
					ebitenutil.DrawRect(screen, float64(c)*size, float64(r)*size+hudHeight, size, size, colorWall)
				}
			}
		}
	}
	if s.GoalVisible {
		clr := colorGoal
		if s.HardMode {
			clr = colorHardGoal
		}
		drawToken(screen, s.Goal.X, s.Goal.Y, size*.7, clr)
	}
	drawToken(screen, s.Player.X, s.Player.Y, size*.6, colorPlayer)

	text.Draw(screen, fmt.Sprintf("%02d", s.TimeRemaining), g.font, 10, 36, color.White)
	rounds := fmt.Sprintf("rounds %d", s.RoundsCompleted)
	text.Draw(screen, rounds, g.small, g.width-textWidth(g.small, rounds)-10, 30, color.White)
	state := s.Phase.Name()
	if s.HardMode {
		state += " HARD"
	}
	ebitenutil.DebugPrintAt(screen, state, 80, 16)

	if g.popup.visible {
		g.drawPopup(screen)
	}
}

func (g *Game) drawPopup(screen *ebiten.Image) {
	width := textWidth(g.small, g.popup.message) + 60
	if width > g.width-20 {
		width = g.width - 20
	}
	height := 90
	x, y := (g.width-width)/2, (g.height-height)/2
	g.popup.panel.SetBounds(x, y, width, height)
	g.popup.panel.Draw(screen)
	text.Draw(screen, g.popup.message, g.small, x+30, y+40, color.White)
	hint := "tap to continue"
	text.Draw(screen, hint, g.small, x+(width-textWidth(g.small, hint))/2, y+70, colorPanelEdge)
}

// drawToken draws a square of side centred on x, y in maze coordinates.
func drawToken(screen *ebiten.Image, x, y, side float64, clr color.Color) {
	ebitenutil.DrawRect(screen, x-side/2, y-side/2+hudHeight, side, side, clr)
}
