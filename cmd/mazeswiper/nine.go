package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
)

// Nine draws a nine-patch: corners keep their size, edges stretch along one axis and the
// centre stretches along both.
type Nine struct {
	image               *ebiten.Image
	alpha               float64
	positions           [4][2]int
	x, y, width, height int
	targetPositions     [3][2]float64
	scaleCenterWidth    float64
	scaleCenterHeight   float64
}

// newPanelImage paints a square nine-patch source with a border of edge pixels.
func newPanelImage(edge int, border, fill color.Color) (*Nine, error) {
	side := 3 * edge
	src := image.NewRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			c := fill
			if x < edge/2 || y < edge/2 || x >= side-edge/2 || y >= side-edge/2 {
				c = border
			}
			src.Set(x, y, c)
		}
	}
	img, err := ebiten.NewImageFromImage(src, ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	return &Nine{
		image:     img,
		alpha:     1,
		positions: [4][2]int{{0, 0}, {edge, edge}, {2 * edge, 2 * edge}, {side, side}},
	}, nil
}

func (n *Nine) SetBounds(x, y, width, height int) {
	n.x, n.y = x, y
	n.width, n.height = width, height

	n.targetPositions[0] = [2]float64{float64(x), float64(y)}
	n.targetPositions[1] = [2]float64{
		float64(x + n.positions[1][0]),
		float64(y + n.positions[1][1]),
	}
	n.targetPositions[2] = [2]float64{
		float64(x + width - (n.positions[3][0] - n.positions[2][0])),
		float64(y + height - (n.positions[3][1] - n.positions[2][1])),
	}

	innerWidth := n.targetPositions[2][0] - n.targetPositions[1][0]
	innerHeight := n.targetPositions[2][1] - n.targetPositions[1][1]
	n.scaleCenterWidth = innerWidth / float64(n.positions[2][0]-n.positions[1][0])
	n.scaleCenterHeight = innerHeight / float64(n.positions[2][1]-n.positions[1][1])
}

func (n *Nine) Draw(screen *ebiten.Image) {
	scaleX := [3]float64{1, n.scaleCenterWidth, 1}
	scaleY := [3]float64{1, n.scaleCenterHeight, 1}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scaleX[col], scaleY[row])
			op.GeoM.Translate(n.targetPositions[col][0], n.targetPositions[row][1])
			op.ColorM.Scale(1, 1, 1, n.alpha)
			patch := image.Rect(n.positions[col][0], n.positions[row][1], n.positions[col+1][0], n.positions[row+1][1])
			_ = screen.DrawImage(n.image.SubImage(patch).(*ebiten.Image), op)
		}
	}
}
