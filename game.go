package polyview

import (
	"errors"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	menuBarHeight = 30
	// wheelStep converts one wheel notch into zoom units.
	wheelStep = 100
)

var toggleKeys = map[ebiten.Key]rune{
	ebiten.KeyN: 'n',
	ebiten.KeyG: 'g',
	ebiten.KeyX: 'x',
	ebiten.KeyY: 'y',
	ebiten.KeyZ: 'z',
	ebiten.KeyC: 'c',
}

// Game runs the viewer as an ebiten game.
type Game struct {
	ws        *Workspace
	renderer  *Renderer
	solidName string

	width, height int
	frame         *Frame

	lastX, lastY int
	dragging     bool
	reported     map[int]bool
}

func NewGame(solidName string, r *Renderer, ws *Workspace) *Game {
	return &Game{
		ws:        ws,
		renderer:  r,
		solidName: solidName,
		reported:  make(map[int]bool),
	}
}

func (g *Game) Update() error {
	for key, r := range toggleKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.ws.HandleKey(r)
		}
	}

	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if pressed && g.dragging {
		g.ws.OnMouseDragged(true, float64(x-g.lastX), float64(y-g.lastY))
	}
	g.dragging = pressed

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.ws.OnMouseWheel(-dy * wheelStep)
	}

	if g.frame != nil && (x != g.lastX || y != g.lastY) {
		g.ws.SelectedFace = g.frame.Pick(float32(x), float32(y))
	}
	g.lastX, g.lastY = x, y

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.width == 0 || g.height == 0 {
		return
	}

	g.frame = g.renderer.BuildFrame(g.ws, g.width, g.height)
	g.reportErrors(g.frame)
	g.frame.Paint(NewImageCanvas(screen))

	vector.DrawFilledRect(screen, 0, 0, float32(g.width), menuBarHeight, color.Black, false)
	ebitenutil.DebugPrintAt(screen, g.ws.StatusLine(g.solidName), 8, 8)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// reportErrors logs each failing face once.
func (g *Game) reportErrors(fr *Frame) {
	for _, err := range fr.Errors {
		var fe *FaceError
		if !errors.As(err, &fe) || g.reported[fe.Face] {
			continue
		}
		g.reported[fe.Face] = true
		log.Printf("Skipping %v", fe)
	}
}
