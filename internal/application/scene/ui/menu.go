// Package ui builds the ebitenui widget trees shared by the scenes: centered
// button menus and the coin HUD.
package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var (
	colorPanel  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	colorButton = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	colorHover  = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
	colorText   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

const (
	buttonW = 100
	buttonH = 20
)

// Face returns the built-in bitmap face used by every widget
func Face() ebtext.Face {
	return ebtext.NewGoXFace(basicfont.Face7x13)
}

// Button is one menu entry
type Button struct {
	Label   string
	OnClick func()
}

// Menu is a centered panel with a title and a column of buttons
type Menu struct {
	ui      *ebitenui.UI
	title   *widget.Text
	actions map[string]func()
	order   []string
}

// NewMenu lays out a panel of minW x minH in the middle of the screen
func NewMenu(title string, minW, minH int, buttons ...Button) *Menu {
	panelImg := imageui.NewNineSliceColor(colorPanel)
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(colorButton),
		Hover:   imageui.NewNineSliceColor(colorHover),
		Pressed: imageui.NewNineSliceColor(colorHover),
	}

	face := Face()
	btnTextColor := &widget.ButtonTextColor{Idle: colorText}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	m := &Menu{actions: make(map[string]func(), len(buttons))}
	m.title = widget.NewText(
		widget.TextOpts.Text(title, &face, colorText),
		widget.TextOpts.WidgetOpts(center),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minW, minH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(m.title)

	for _, b := range buttons {
		onClick := b.OnClick
		m.actions[b.Label] = onClick
		m.order = append(m.order, b.Label)
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(b.Label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(buttonW, buttonH)),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		))
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	m.ui = &ebitenui.UI{Container: root}
	return m
}

// SetTitle replaces the panel title
func (m *Menu) SetTitle(s string) {
	m.title.Label = s
}

// Title returns the panel title
func (m *Menu) Title() string {
	return m.title.Label
}

// Labels returns the button labels top to bottom
func (m *Menu) Labels() []string {
	return append([]string(nil), m.order...)
}

// Press runs the handler of the button with the given label, the same as a
// mouse click would. It reports whether such a button exists.
func (m *Menu) Press(label string) bool {
	fn, ok := m.actions[label]
	if !ok {
		return false
	}
	if fn != nil {
		fn()
	}
	return true
}

// Update feeds mouse input to the widgets
func (m *Menu) Update() {
	m.ui.Update()
}

// Draw renders the panel over screen
func (m *Menu) Draw(screen *ebiten.Image) {
	m.ui.Draw(screen)
}
