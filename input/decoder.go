package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-jumper/parameter"
)

// Decoder merges keyboard and mouse-region events into one movement intent
// Not safe for concurrent use, feed it from the frame loop goroutine
type Decoder struct {
	now  func() time.Time
	hold time.Duration

	width int

	keyIntent Intent
	keyUntil  time.Time

	mouseIntent Intent
	mouseDown   bool
}

// NewDecoder creates a decoder for a screen width in cells
func NewDecoder(width int) *Decoder {
	return &Decoder{
		now:   time.Now,
		hold:  parameter.KeyHoldDuration,
		width: width,
	}
}

// SetWidth updates the column count used to split the screen into touch halves
func (d *Decoder) SetWidth(width int) {
	d.width = width
}

// Process decodes a terminal event and returns what the frontend should do with it
func (d *Decoder) Process(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.processKey(ev)
	case *tcell.EventMouse:
		return d.processMouse(ev)
	case *tcell.EventResize:
		w, _ := ev.Size()
		d.SetWidth(w)
		return ActionResize
	}
	return ActionNone
}

func (d *Decoder) processKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyLeft:
		d.press(IntentLeft)
		return ActionMove
	case tcell.KeyRight:
		d.press(IntentRight)
		return ActionMove
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return ActionQuit
		case 'h', 'H', 'a', 'A':
			d.press(IntentLeft)
			return ActionMove
		case 'l', 'L', 'd', 'D':
			d.press(IntentRight)
			return ActionMove
		case ' ':
			d.keyIntent = IntentNone
		}
	}
	return ActionPress
}

func (d *Decoder) press(i Intent) {
	d.keyIntent = i
	d.keyUntil = d.now().Add(d.hold)
}

func (d *Decoder) processMouse(ev *tcell.EventMouse) Action {
	if ev.Buttons()&tcell.Button1 == 0 {
		d.mouseDown = false
		d.mouseIntent = IntentNone
		return ActionNone
	}

	x, _ := ev.Position()
	if x < d.width/2 {
		d.mouseIntent = IntentLeft
	} else {
		d.mouseIntent = IntentRight
	}

	// Drag keeps the button down, only the initial press counts as a tap
	if d.mouseDown {
		return ActionNone
	}
	d.mouseDown = true
	return ActionPress
}

// MovementIntent returns the merged intent, a held mouse button wins over keys
func (d *Decoder) MovementIntent() Intent {
	if d.mouseDown {
		return d.mouseIntent
	}
	if d.keyIntent != IntentNone && d.now().Before(d.keyUntil) {
		return d.keyIntent
	}
	return IntentNone
}

// Reset drops every held input
func (d *Decoder) Reset() {
	d.keyIntent = IntentNone
	d.keyUntil = time.Time{}
	d.mouseIntent = IntentNone
	d.mouseDown = false
}
