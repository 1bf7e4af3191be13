// Package ui is the Triton's terminal presenter (C9): it renders the
// 64x16 VDU grid, the blinking cursor, the LED panel, and the tape
// indicator, and turns tcell key events into keyboard events for the
// port block. It owns the rolling diagnostic log the rest of the
// program narrates into (Log/DumpLog), a holdover from the teacher's
// own box-and-ticker rendering idiom.
package ui

import (
    "fmt"
    "time"

    "github.com/gdamore/tcell"

    "github.com/triton-emu/triton/pia/triton"
)

var circlog []string
var circlogidx int

func init() {
    circlog = make([]string, 1000)
}

func Log(msg string) {
    circlog[circlogidx] = msg
    circlogidx = (circlogidx + 1) % 1000
}

func DumpLog() {
    for i := range circlog {
        msg := circlog[999-i]
        if msg != "" {
            fmt.Println(i, msg)
        }
    }
}

func LogBox(s tcell.Screen, x, y int, label string) {
    Box(s, x, y, 100, 15)
    Clear(s, x+1, y+1, 98, 14)
    style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
    DrawString(s, x+2, y, style, " "+label+" ")
    for i := 0; i < 12; i++ {
        li := circlogidx - 12 + i
        if li < 0 {
            li += 1000
        }
        DrawString(s, x+2, y+2+i, style, fmt.Sprintf("%d %s", li, circlog[li]))
    }
}

func DrawString(s tcell.Screen, x, y int, style tcell.Style, str string) {
    for _, c := range str {
        s.SetContent(x, y, c, []rune{}, style)
        x += 1
    }
}

func Box(s tcell.Screen, x, y, w, h int) {
    style := tcell.StyleDefault.Foreground(tcell.ColorGray)
    s.SetContent(x, y, tcell.RuneULCorner, nil, style)
    s.SetContent(x+w, y, tcell.RuneURCorner, nil, style)
    s.SetContent(x, y+h, tcell.RuneLLCorner, nil, style)
    s.SetContent(x+w, y+h, tcell.RuneLRCorner, nil, style)
    for col := x + 1; col < x+w; col++ {
        s.SetContent(col, y, tcell.RuneHLine, nil, style)
        s.SetContent(col, y+h, tcell.RuneHLine, nil, style)
    }
    for row := y + 1; row < y+h; row++ {
        s.SetContent(x, row, tcell.RuneVLine, nil, style)
        s.SetContent(x+w, row, tcell.RuneVLine, nil, style)
    }
}

func Clear(s tcell.Screen, x, y, w, h int) {
    style := tcell.StyleDefault
    for col := x; col <= x+w; col++ {
        for row := y; row <= y+h; row++ {
            s.SetContent(col, row, ' ', nil, style)
        }
    }
}

type Draw func()

type TextUI struct {
    Screen      tcell.Screen
    Tick        *time.Ticker
    DisplayList []Draw
}

func (t *TextUI) Run() {
    go func() {
        for {
            <-t.Tick.C
            for _, drawfunc := range t.DisplayList {
                drawfunc()
            }
            t.Screen.Show()
        }
    }()
}

const (
    vduCols = 64
    vduRows = 16
)

// VDUReader is the subset of mem.MMU16 the screen box needs: a plain
// byte read, so the presenter depends on nothing beyond what it
// actually touches.
type VDUReader interface {
    R8(addr uint16) uint8
}

// frameCounter backs the cursor's 2 Hz blink: on at frame%(framerate/2)
// < framerate/4, off otherwise, matching the reference's
// every-framerate/4-frames toggle.
var frameCounter int

// ScreenBox draws the 64x16 character grid starting at video RAM
// 0x1000, folding in vduStartRow's circular offset, plus a blinking
// cursor at cursorPos.
func ScreenBox(s tcell.Screen, x, y int, m VDUReader, vduStartRow, cursorPos int) {
    Box(s, x, y, vduCols+1, vduRows+1)
    style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
    DrawString(s, x+2, y, style, " VDU ")

    plain := tcell.StyleDefault.Foreground(tcell.ColorGreen)
    for row := 0; row < vduRows; row++ {
        for col := 0; col < vduCols; col++ {
            logical := row*vduCols + col
            offset := (vduCols*vduStartRow + logical) % (vduCols * vduRows)
            ch := m.R8(uint16(0x1000 + offset))
            if ch < 0x20 || ch > 0x7E {
                ch = ' '
            }
            cellStyle := plain
            if logical == cursorPos && blinkOn() {
                cellStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
            }
            s.SetContent(x+1+col, y+1+row, rune(ch), nil, cellStyle)
        }
    }
}

func blinkOn() bool {
    frameCounter++
    return frameCounter%(25/2) < 25/4
}

// LEDBox draws the eight-lamp status panel; a lit lamp (LEDLit true)
// is shown bright, an unlit one dim.
func LEDBox(s tcell.Screen, x, y int, lit func(i int) bool) {
    Box(s, x, y, 17, 2)
    style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
    DrawString(s, x+2, y, style, " LED ")
    for i := 0; i < 8; i++ {
        st := tcell.StyleDefault.Foreground(tcell.ColorGray)
        ch := '.'
        if lit(i) {
            st = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
            ch = 'O'
        }
        s.SetContent(x+1+i*2, y+1, ch, nil, st)
    }
}

// TapeBox draws the four-state cassette indicator: off, idle, reading,
// writing.
func TapeBox(s tcell.Screen, x, y int, relay bool, status triton.TapeStatus) {
    Box(s, x, y, 10, 2)
    style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
    DrawString(s, x+2, y, style, " TAPE ")
    label := "off "
    switch {
    case !relay:
        label = "off "
    case status == triton.TapeReading:
        label = "READ"
    case status == triton.TapeWriting:
        label = "WRIT"
    default:
        label = "idle"
    }
    DrawString(s, x+2, y+1, tcell.StyleDefault.Foreground(tcell.ColorYellow), label)
}

// KeyEvent translates a tcell key event into the triton package's
// host-independent Keysym plus modifiers.
func KeyEvent(e *tcell.EventKey) (sym triton.Keysym, shift, ctrl bool, ok bool) {
    mod := e.Modifiers()
    shift = mod&tcell.ModShift != 0
    ctrl = mod&tcell.ModCtrl != 0

    if k := e.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
        return triton.Keysym(int(triton.KeyA) + int(k-tcell.KeyCtrlA)), false, true, true
    }

    switch e.Key() {
    case tcell.KeyEscape:
        return triton.KeyEscape, shift, ctrl, true
    case tcell.KeyEnter:
        return triton.KeyEnter, shift, ctrl, true
    case tcell.KeyBackspace, tcell.KeyBackspace2:
        return triton.KeyBackspace, shift, ctrl, true
    case tcell.KeyLeft:
        return triton.KeyLeft, shift, ctrl, true
    case tcell.KeyRight:
        return triton.KeyRight, shift, ctrl, true
    case tcell.KeyDown:
        return triton.KeyDown, shift, ctrl, true
    case tcell.KeyUp:
        return triton.KeyUp, shift, ctrl, true
    case tcell.KeyRune:
        return runeToKeysym(e.Rune())
    }
    return triton.KeyNone, shift, ctrl, false
}

func runeToKeysym(r rune) (triton.Keysym, bool, bool, bool) {
    switch {
    case r == ' ':
        return triton.KeySpace, false, false, true
    case r >= 'a' && r <= 'z':
        return triton.Keysym(int(triton.KeyA) + int(r-'a')), false, false, true
    case r >= 'A' && r <= 'Z':
        return triton.Keysym(int(triton.KeyA) + int(r-'A')), true, false, true
    case r >= '0' && r <= '9':
        return triton.Keysym(int(triton.KeyNum0) + int(r-'0')), false, false, true
    case r == '[':
        return triton.KeyLBracket, false, false, true
    case r == ']':
        return triton.KeyRBracket, false, false, true
    case r == ';':
        return triton.KeySemicolon, false, false, true
    case r == ',':
        return triton.KeyComma, false, false, true
    case r == '.':
        return triton.KeyPeriod, false, false, true
    case r == '\'':
        return triton.KeyQuote, false, false, true
    case r == '/':
        return triton.KeySlash, false, false, true
    case r == '\\':
        return triton.KeyBackslash, false, false, true
    case r == '=':
        return triton.KeyEqual, false, false, true
    case r == '-':
        return triton.KeyHyphen, false, false, true
    // terminals report the shifted glyph itself rather than a modifier
    // flag alongside the base rune, so the shifted punctuation/digit
    // row is recognized directly here.
    case r == ')':
        return triton.KeyNum0, true, false, true
    case r == '!':
        return triton.KeyNum1, true, false, true
    case r == '"':
        return triton.KeyNum2, true, false, true
    case r == '#':
        return triton.KeyNum3, true, false, true
    case r == '$':
        return triton.KeyNum4, true, false, true
    case r == '%':
        return triton.KeyNum5, true, false, true
    case r == '^':
        return triton.KeyNum6, true, false, true
    case r == '&':
        return triton.KeyNum7, true, false, true
    case r == '*':
        return triton.KeyNum8, true, false, true
    case r == '(':
        return triton.KeyNum9, true, false, true
    case r == '{':
        return triton.KeyLBracket, true, false, true
    case r == '}':
        return triton.KeyRBracket, true, false, true
    case r == ':':
        return triton.KeySemicolon, true, false, true
    case r == '<':
        return triton.KeyComma, true, false, true
    case r == '>':
        return triton.KeyPeriod, true, false, true
    case r == '@':
        return triton.KeyQuote, true, false, true
    case r == '?':
        return triton.KeySlash, true, false, true
    case r == '|':
        return triton.KeyBackslash, true, false, true
    case r == '+':
        return triton.KeyEqual, true, false, true
    case r == '_':
        return triton.KeyHyphen, true, false, true
    }
    return triton.KeyNone, false, false, false
}
