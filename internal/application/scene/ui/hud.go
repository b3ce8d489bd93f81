package ui

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// HUD shows the coin counter in the top-left corner
type HUD struct {
	ui    *ebitenui.UI
	coins *widget.Text
	best  *widget.Text
}

func NewHUD() *HUD {
	face := Face()
	h := &HUD{}
	h.coins = widget.NewText(widget.TextOpts.Text(CoinLabel(0), &face, colorText))
	h.best = widget.NewText(widget.TextOpts.Text("", &face, colorText))

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Left: 6}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	column.AddChild(h.coins)
	column.AddChild(h.best)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(column)
	h.ui = &ebitenui.UI{Container: root}
	return h
}

// SetCoins is meant to be registered as a wallet observer
func (h *HUD) SetCoins(total int) {
	h.coins.Label = CoinLabel(total)
}

// SetBest shows the saved record; zero hides it
func (h *HUD) SetBest(best int) {
	if best <= 0 {
		h.best.Label = ""
		return
	}
	h.best.Label = fmt.Sprintf("Best: %d", best)
}

// Text returns the coin label currently shown
func (h *HUD) Text() string {
	return h.coins.Label
}

// BestText returns the record label currently shown
func (h *HUD) BestText() string {
	return h.best.Label
}

func (h *HUD) Update() {
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}

// CoinLabel formats a coin total the way the HUD shows it
func CoinLabel(total int) string {
	return fmt.Sprintf("Coins: %d", total)
}
