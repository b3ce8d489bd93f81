package playing

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/pixelhop/internal/application/state"
	"github.com/younwookim/pixelhop/internal/domain/entity"
)

// Colors for rendering
var (
	colorGround     = color.RGBA{80, 80, 100, 255}
	colorHazard     = color.RGBA{200, 50, 50, 255}
	colorBounce     = color.RGBA{90, 170, 230, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorFeet       = color.RGBA{200, 200, 100, 128}
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorCoin       = color.RGBA{255, 215, 0, 255}
	colorStrawberry = color.RGBA{230, 60, 90, 255}
	colorPaused     = color.RGBA{0, 0, 0, 128}
	colorDead       = color.RGBA{100, 0, 0, 180}
)

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.background)

	camX, camY := p.camera()
	p.drawTiles(screen, camX, camY)
	p.drawPickups(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)

	// always on top
	p.hud.Draw(screen)
	ebitenutil.DebugPrintAt(screen, "A/D: Move | Space: Jump | ESC: Pause", 6, p.screenH-16)
	if status := p.Status(); status != "" {
		ebitenutil.DebugPrintAt(screen, status, p.screenW-6*len(status)-6, 6)
	}

	switch p.session.State() {
	case state.StatePaused:
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorPaused)
		p.pause.Draw(screen)
	case state.StateGameOver:
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorDead)
		p.over.Draw(screen)
	}
}

// camera centers on the player, clamped to the stage
func (p *Playing) camera() (int, int) {
	body := p.session.Player().Body
	stage := p.session.Stage()

	camX := body.PixelX() + int(body.Width)/2 - p.screenW/2
	camY := body.PixelY() + int(body.Height)/2 - p.screenH/2

	maxCamX := stage.PixelWidth() - p.screenW
	maxCamY := stage.PixelHeight() - p.screenH
	camX = min(camX, maxCamX)
	camY = min(camY, maxCamY)
	return max(camX, 0), max(camY, 0)
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY int) {
	stage := p.session.Stage()
	ts := stage.TileSize

	startTileX := camX / ts
	startTileY := camY / ts
	endTileX := (camX+p.screenW)/ts + 1
	endTileY := (camY+p.screenH)/ts + 1

	for ty := startTileY; ty <= endTileY && ty < stage.Height; ty++ {
		for tx := startTileX; tx <= endTileX && tx < stage.Width; tx++ {
			var c color.Color
			switch stage.GetTile(tx, ty).Type {
			case entity.TileGround:
				c = colorGround
			case entity.TileHazard:
				c = colorHazard
			case entity.TileBounce:
				c = colorBounce
			default:
				continue
			}

			x := float64(tx*ts - camX)
			y := float64(ty*ts - camY)
			ebitenutil.DrawRect(screen, x, y, float64(ts), float64(ts), c)
		}
	}
}

func (p *Playing) drawPickups(screen *ebiten.Image, camX, camY int) {
	for _, pk := range p.session.Pickups() {
		c := colorCoin
		if pk.Kind == entity.PickupJumpRefill {
			c = colorStrawberry
		}
		b := pk.Bounds
		ebitenutil.DrawRect(screen, b.X-float64(camX), b.Y-float64(camY), b.W, b.H, c)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY int) {
	body := p.session.Player().Body
	x := body.X - float64(camX)
	y := body.Y - float64(camY)

	playerColor := colorPlayer
	if !p.session.Player().Health.IsAlive() {
		playerColor = color.RGBA{255, 255, 255, 200}
	}
	ebitenutil.DrawRect(screen, x, y, body.Width, body.Height, playerColor)

	// ground sensor debug
	if !p.opts.Headless && ebiten.IsKeyPressed(ebiten.KeyTab) {
		anim, frame := p.session.Animation()
		ebitenutil.DrawRect(screen, x, y+body.Height, body.Width, 1, colorFeet)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s #%d grounded=%t", anim, frame, p.session.Grounded()), int(x), int(y)-14)
	}
}

// parseHexColor reads "#rrggbb"
func parseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, true
}
