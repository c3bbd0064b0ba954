package visual

import "github.com/gdamore/tcell/v2"

// Entity colors
var (
	ColorBackground = tcell.ColorBlack
	ColorPlayer     = tcell.ColorGreen
	ColorPlatform   = tcell.ColorWhite
	// ColorTrap tints fake platforms
	ColorTrap = tcell.ColorRed
	// ColorMoving tints oscillating platforms
	ColorMoving = tcell.ColorDarkCyan
	ColorEnemy  = tcell.ColorRed
	ColorSpring = tcell.ColorYellow
)

// HUD colors
var (
	ColorScore     = tcell.ColorGold
	ColorTime      = tcell.ColorWhite
	ColorGameOver  = tcell.ColorRed
	ColorOverlayBg = tcell.ColorBlack
)
