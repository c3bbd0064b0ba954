package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-jumper/event"
	"github.com/lixenwraith/lane-jumper/game"
	"github.com/lixenwraith/lane-jumper/parameter"
	"github.com/lixenwraith/lane-jumper/parameter/visual"
)

// HUD is the display model of the score, the countdown and the end-of-run overlay
// It is driven only by session events, never by reading the run state
type HUD struct {
	Score    int
	TimeLeft int

	GameOver   bool
	FinalScore int
	Reason     event.GameOverReason
}

// NewHUD creates a model showing the initial values of a session
func NewHUD(s *game.Session) *HUD {
	return &HUD{
		Score:    s.Score(),
		TimeLeft: s.TimeLeft(),
	}
}

func (h *HUD) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventScoreChanged,
		event.EventTimeChanged,
		event.EventGameOver,
		event.EventRestart,
	}
}

func (h *HUD) HandleEvent(s *game.Session, ev event.GameEvent) {
	switch ev.Type {
	case event.EventScoreChanged:
		if p, ok := ev.Payload.(*event.ScorePayload); ok {
			h.Score = p.Score
		}
	case event.EventTimeChanged:
		if p, ok := ev.Payload.(*event.TimePayload); ok {
			h.TimeLeft = p.SecondsLeft
		}
	case event.EventGameOver:
		if p, ok := ev.Payload.(*event.GameOverPayload); ok {
			h.GameOver = true
			h.FinalScore = p.FinalScore
			h.Reason = p.Reason
		}
	case event.EventRestart:
		*h = HUD{Score: s.Score(), TimeLeft: s.TimeLeft()}
	}
}

// HUDRenderer draws the score on the left and the countdown on the right of the top row
type HUDRenderer struct {
	hud *HUD
}

func NewHUDRenderer(hud *HUD) *HUDRenderer {
	return &HUDRenderer{hud: hud}
}

func (r *HUDRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	if ctx.HUDRows == 0 {
		return
	}
	base := tcell.StyleDefault.Background(visual.ColorBackground)

	drawText(screen, 0, 0, parameter.ScoreLabel+strconv.Itoa(r.hud.Score), base.Foreground(visual.ColorScore).Bold(true))

	timeText := parameter.TimeLabel + strconv.Itoa(r.hud.TimeLeft)
	x := ctx.ScreenWidth - len(timeText)
	if x < 0 {
		x = 0
	}
	drawText(screen, x, 0, timeText, base.Foreground(visual.ColorTime))
}

// OverlayRenderer draws the game over box while the run has ended
type OverlayRenderer struct {
	hud *HUD
}

func NewOverlayRenderer(hud *HUD) *OverlayRenderer {
	return &OverlayRenderer{hud: hud}
}

func (r *OverlayRenderer) IsVisible() bool { return r.hud.GameOver }

func (r *OverlayRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	lines := []string{
		parameter.GameOverTitle,
		parameter.ScoreLabel + strconv.Itoa(r.hud.FinalScore),
		r.hud.Reason.String(),
		parameter.GameOverPrompt,
	}

	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	width += 4
	height := len(lines) + 2

	left := (ctx.ScreenWidth - width) / 2
	top := ctx.HUDRows + (ctx.PlayfieldRows()-height)/2
	bg := tcell.StyleDefault.Background(visual.ColorOverlayBg)

	for y := top; y < top+height; y++ {
		for x := left; x < left+width; x++ {
			if ctx.InPlayfield(x, y) {
				screen.SetContent(x, y, ' ', nil, bg)
			}
		}
	}

	for i, l := range lines {
		style := bg.Foreground(visual.ColorTime)
		if i == 0 {
			style = bg.Foreground(visual.ColorGameOver).Bold(true)
		}
		drawText(screen, left+(width-len(l))/2, top+1+i, l, style)
	}
}
