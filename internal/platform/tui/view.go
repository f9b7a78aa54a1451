package tui

import (
	"fmt"

	"github.com/arcadelab/exodus/internal/config"
	"github.com/arcadelab/exodus/internal/core"
	"github.com/arcadelab/exodus/internal/game"
)

// Minimum terminal size for the playfield to stay readable.
const (
	minScreenW = 40
	minScreenH = 12
)

// Glyphs for the playfield entities.
const (
	playerRune     = '█'
	adversaryRune  = '▼'
	projectileRune = '│'
)

// MenuButton is a clickable difficulty option on the start screen.
// The rect is in screen cells so mouse events can be hit-tested directly.
type MenuButton struct {
	Tier  config.Tier
	Label string
	Rect  core.Rect
}

// StartMenuLayout computes the difficulty buttons for a terminal of the
// given size. Layout is pure: the same size always yields the same rects.
func StartMenuLayout(width, height int) []MenuButton {
	tiers := config.AllTiers()
	buttons := make([]MenuButton, 0, len(tiers))

	const btnH = 3
	btnW := 0
	for i, tier := range tiers {
		label := fmt.Sprintf("%d. %s", i+1, tier.Title())
		if len(label)+4 > btnW {
			btnW = len(label) + 4
		}
		buttons = append(buttons, MenuButton{Tier: tier, Label: label})
	}

	// Stack the buttons in the vertical center, one blank row between
	totalH := len(buttons)*btnH + len(buttons) - 1
	top := (height - totalH) / 2
	if top < 3 {
		top = 3
	}
	x := (width - btnW) / 2
	if x < 0 {
		x = 0
	}

	for i := range buttons {
		buttons[i].Rect = core.NewRect(x, top+i*(btnH+1), btnW, btnH)
	}
	return buttons
}

// StartMenuHit returns the tier of the button containing the cell (x, y),
// if any.
func StartMenuHit(buttons []MenuButton, x, y int) (config.Tier, bool) {
	for _, b := range buttons {
		if b.Rect.Contains(x, y) {
			return b.Tier, true
		}
	}
	return "", false
}

// DrawSnapshot renders a session snapshot to the screen buffer.
func DrawSnapshot(dst *core.Screen, snap game.Snapshot) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	switch snap.State {
	case game.StateStart:
		drawStartMenu(dst, snap)
	case game.StatePlaying:
		drawMatch(dst, snap)
		if snap.Paused {
			drawCenterBox(dst, "PAUSED", "Press P to resume")
		}
	case game.StateGameOver:
		drawMatch(dst, snap)
		drawCenterBox(dst, "GAME OVER",
			fmt.Sprintf("Score: %d   Best: %d", snap.Score, snap.HighScore),
			"Press R to restart, Q to quit")
	}
}

// drawStartMenu renders the title, the difficulty buttons and the stored
// best score.
func drawStartMenu(dst *core.Screen, snap game.Snapshot) {
	dst.DrawTextCenteredColor(1, "E X O D U S", core.ColorBrightYellow)

	who := snap.Username
	if who == "" {
		who = "guest"
	}
	dst.DrawTextCentered(2, fmt.Sprintf("%s - best %d", who, snap.HighScore))

	for _, b := range StartMenuLayout(dst.Width(), dst.Height()) {
		dst.DrawBox(b.Rect)
		lx := b.Rect.X + (b.Rect.W-len(b.Label))/2
		dst.DrawTextColor(lx, b.Rect.Y+1, b.Label, core.ColorBrightGreen)
	}

	dst.DrawTextCentered(dst.Height()-2, "Press 1-3 or click a difficulty - Q to quit")
}

// drawMatch renders the HUD row and the scaled playfield.
func drawMatch(dst *core.Screen, snap game.Snapshot) {
	drawHUD(dst, snap)

	// Playfield occupies everything below the HUD separator
	plw, plh := dst.Width(), dst.Height()-2
	const offY = 2

	for _, a := range snap.Adversaries {
		fillCells(dst, toCells(a, snap, plw, plh, offY), adversaryRune, core.ColorBrightRed)
	}
	for _, b := range snap.Projectiles {
		fillCells(dst, toCells(b, snap, plw, plh, offY), projectileRune, core.ColorBrightYellow)
	}

	playerColor := core.ColorBrightGreen
	if snap.Invulnerable {
		playerColor = core.ColorGray
	}
	fillCells(dst, toCells(snap.Player, snap, plw, plh, offY), playerRune, playerColor)
}

// drawHUD draws score, lives, and the identity line plus a separator.
func drawHUD(dst *core.Screen, snap game.Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))

	lives := fmt.Sprintf("Lives: %d", snap.Lives)
	if snap.Hits > 0 {
		lives = fmt.Sprintf("Lives: %d (hit %d)", snap.Lives, snap.Hits)
	}
	dst.DrawTextCentered(0, lives)

	right := fmt.Sprintf("Best: %d", snap.HighScore)
	if snap.Username != "" {
		right = fmt.Sprintf("%s  Best: %d", snap.Username, snap.HighScore)
	}
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// toCells maps a simulation-space entity box to a cell rect on the
// playfield. The box keeps at least one cell so small entities stay visible.
func toCells(b game.EntityBox, snap game.Snapshot, plw, plh, offY int) core.Rect {
	x := int(b.X / snap.AreaW * float64(plw))
	y := int(b.Y / snap.AreaH * float64(plh))
	w := int(b.W / snap.AreaW * float64(plw))
	h := int(b.H / snap.AreaH * float64(plh))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return core.NewRect(x, y+offY, w, h)
}

// fillCells fills a cell rect with the given rune and color.
func fillCells(dst *core.Screen, r core.Rect, ru rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColor(x, y, ru, c)
		}
	}
}

// drawCenterBox draws a bordered message box in the middle of the screen.
func drawCenterBox(dst *core.Screen, lines ...string) {
	boxW := 0
	for _, l := range lines {
		if len(l)+6 > boxW {
			boxW = len(l) + 6
		}
	}
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	// Blank the interior so the playfield doesn't bleed through
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len(l))/2, boxY+1+i, l)
	}
}
