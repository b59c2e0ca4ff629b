package terminal

import (
	"strings"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"blander/internal/commands"
	"blander/internal/logger"
)

const (
	BarHeight = 36
	prompt    = "> "
	fontSize  = 18
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
	maxLineLen       = 160
)

var (
	termBarColor    = rl.NewColor(40, 40, 40, 255)
	termLineColor   = rl.NewColor(80, 80, 80, 255)
	termChatBgColor = rl.NewColor(24, 24, 24, 230)
)

// Terminal is the console bar at the bottom of the viewport, toggled with the grave key.
// While open it owns the keyboard; submitted lines run through the command registry with or
// without the "cmd " prefix, and their output lands in the log shown above the bar.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	font     rl.Font
}

// New returns a closed Terminal that echoes to log and runs lines through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing keys.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFont sets the font used to draw the bar. Zero texture ID = use raylib default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Submit echoes line and executes it.
func (t *Terminal) Submit(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	t.log.Log(prompt + line)
	handled, err := t.reg.ExecuteLine(line)
	if !handled {
		_, err = t.reg.ExecuteLine("cmd " + line)
	}
	if err != nil {
		t.log.Log(err.Error())
	}
}

// Update handles the toggle key and, when open, typing, paste, backspace and enter. It reports
// whether the console consumed the keyboard this frame. Call once per frame.
func (t *Terminal) Update() bool {
	if rl.IsKeyPressed(rl.KeyGrave) {
		t.open = !t.open
		drainChars()
		return true
	}
	if !t.open {
		return false
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = false
		drainChars()
		return true
	}
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += strings.ReplaceAll(pasted, "\n", " ")
		}
		drainChars()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
	return true
}

func drainChars() {
	for rl.GetCharPressed() != 0 {
	}
}

// Draw draws the bar and the most recent log lines above it when open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	barY := int(rl.GetScreenHeight()) - BarHeight

	chatHeight := maxLinesOnScreen * lineHeight
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, int32(chatY), int32(screenW), int32(chatHeight), termChatBgColor)
	}
	lines := t.log.Lines()
	start := max(len(lines)-maxLinesOnScreen, 0)
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		t.text(line, padding, chatY+(i-start)*lineHeight+padding, rl.LightGray)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(BarHeight), termBarColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, termLineColor)
	t.text(prompt+t.inputBuf+"|", padding, barY+padding, rl.White)
}

func (t *Terminal) text(s string, x, y int, c rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, s, rl.NewVector2(float32(x), float32(y)), fontSize, 1, c)
		return
	}
	rl.DrawText(s, int32(x), int32(y), fontSize, c)
}
