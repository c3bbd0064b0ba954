package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-jumper/component"
	"github.com/lixenwraith/lane-jumper/core"
	"github.com/lixenwraith/lane-jumper/parameter"
	"github.com/lixenwraith/lane-jumper/parameter/visual"
)

// EntitiesRenderer draws platforms, springs, enemies and the player in that order
type EntitiesRenderer struct{}

// NewEntitiesRenderer creates the world layer
func NewEntitiesRenderer() *EntitiesRenderer {
	return &EntitiesRenderer{}
}

func (r *EntitiesRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	w := ctx.World
	base := tcell.StyleDefault.Background(visual.ColorBackground)

	for _, e := range w.Platforms.All() {
		p, _ := w.Platforms.Get(e)
		if !p.Visible {
			continue
		}
		b, ok := w.Bodies.Get(e)
		if !ok {
			continue
		}
		row := ctx.Row(b.Y)
		left, right := ctx.Column(b.Left()), ctx.Column(b.Right())
		if right <= left {
			right = left + 1
		}
		style := base.Foreground(platformColor(p.Kind))
		for col := left; col < right; col++ {
			if ctx.InPlayfield(col, row) {
				screen.SetContent(col, row, parameter.PlatformChar, nil, style)
			}
		}
	}

	r.drawTagged(ctx, screen, w.Springs.All(), parameter.SpringChar, base.Foreground(visual.ColorSpring))
	r.drawTagged(ctx, screen, w.Enemies.All(), parameter.EnemyChar, base.Foreground(visual.ColorEnemy).Bold(true))

	if b, ok := w.Bodies.Get(ctx.State.Player); ok {
		if col, row, ok := ctx.Project(b.X, b.Y); ok {
			screen.SetContent(col, row, parameter.PlayerChar, nil, base.Foreground(visual.ColorPlayer).Bold(true))
		}
	}
}

func (r *EntitiesRenderer) drawTagged(ctx RenderContext, screen tcell.Screen, entities []core.Entity, ch rune, style tcell.Style) {
	for _, e := range entities {
		b, ok := ctx.World.Bodies.Get(e)
		if !ok {
			continue
		}
		if col, row, ok := ctx.Project(b.X, b.Y); ok {
			screen.SetContent(col, row, ch, nil, style)
		}
	}
}

func platformColor(kind component.PlatformKind) tcell.Color {
	switch kind {
	case component.PlatformFake:
		return visual.ColorTrap
	case component.PlatformMoving:
		return visual.ColorMoving
	default:
		return visual.ColorPlatform
	}
}
