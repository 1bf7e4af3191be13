package triton

// Keysym names a host key independently of any particular windowing
// toolkit; the presenter (ui package) is responsible for translating
// its own event type into these before calling KeyEvent.
type Keysym int

const (
    KeyNone Keysym = iota
    KeyEscape
    KeySpace
    KeyEnter
    KeyBackspace
    KeyLeft
    KeyRight
    KeyDown
    KeyUp
    KeyLBracket
    KeyRBracket
    KeySemicolon
    KeyComma
    KeyPeriod
    KeyQuote
    KeySlash
    KeyBackslash
    KeyEqual
    KeyHyphen
    KeyA
    KeyB
    KeyC
    KeyD
    KeyE
    KeyF
    KeyG
    KeyH
    KeyI
    KeyJ
    KeyK
    KeyL
    KeyM
    KeyN
    KeyO
    KeyP
    KeyQ
    KeyR
    KeyS
    KeyT
    KeyU
    KeyV
    KeyW
    KeyX
    KeyY
    KeyZ
    KeyNum0
    KeyNum1
    KeyNum2
    KeyNum3
    KeyNum4
    KeyNum5
    KeyNum6
    KeyNum7
    KeyNum8
    KeyNum9
)

// shiftDigit maps Num0..Num9 to their shifted ("0!\"£$%^&*(") code points.
var shiftDigit = [10]uint8{0x29, 0x21, 0x22, 0x23, 0x24, 0x25, 0x5E, 0x26, 0x2A, 0x28}

// keyCode computes the Triton key byte (low 7 bits) for sym under the
// given modifiers. ok is false when the key is not recognized, in
// which case the caller must leave the key buffer unchanged.
func keyCode(sym Keysym, shift, ctrl bool) (code uint8, ok bool) {
    switch {
    case ctrl:
        switch {
        case sym >= KeyA && sym <= KeyZ:
            return uint8(sym-KeyA) + 0x01, true
        case sym == KeyQuote:
            return 0x00, true
        case sym == KeyBackslash:
            return 0x1C, true
        case sym == KeyLBracket:
            return 0x1B, true
        case sym == KeyRBracket:
            return 0x1D, true
        }
        return 0, false
    case shift:
        switch {
        case sym >= KeyA && sym <= KeyZ:
            return uint8(sym-KeyA) + 0x41, true
        case sym >= KeyNum0 && sym <= KeyNum9:
            return shiftDigit[sym-KeyNum0], true
        case sym == KeyLBracket:
            return 0x7B, true
        case sym == KeyRBracket:
            return 0x7D, true
        case sym == KeySemicolon:
            return 0x3A, true
        case sym == KeyComma:
            return 0x3C, true
        case sym == KeyPeriod:
            return 0x3E, true
        case sym == KeyQuote:
            return 0x40, true
        case sym == KeySlash:
            return 0x3F, true
        case sym == KeyBackslash:
            return 0x7C, true
        case sym == KeyEqual:
            return 0x2B, true
        case sym == KeyHyphen:
            return 0x5F, true
        }
        return 0, false
    default:
        switch {
        case sym >= KeyA && sym <= KeyZ:
            return uint8(sym-KeyA) + 0x61, true
        case sym >= KeyNum0 && sym <= KeyNum9:
            return uint8(sym-KeyNum0) + 0x30, true
        case sym == KeyEscape:
            return 0x1B, true
        case sym == KeySpace:
            return 0x20, true
        case sym == KeyEnter:
            return 0x0D, true
        case sym == KeyBackspace, sym == KeyLeft:
            return 0x08, true
        case sym == KeyRight:
            return 0x09, true
        case sym == KeyDown:
            return 0x0A, true
        case sym == KeyUp:
            return 0x0B, true
        case sym == KeyLBracket:
            return 0x5B, true
        case sym == KeyRBracket:
            return 0x5D, true
        case sym == KeySemicolon:
            return 0x3B, true
        case sym == KeyComma:
            return 0x2C, true
        case sym == KeyPeriod:
            return 0x2E, true
        case sym == KeyQuote:
            return 0x27, true
        case sym == KeySlash:
            return 0x2F, true
        case sym == KeyBackslash:
            return 0x5C, true
        case sym == KeyEqual:
            return 0x3D, true
        case sym == KeyHyphen:
            return 0x2D, true
        }
        return 0, false
    }
}

// KeyEvent folds a host key press/release into the keyboard port's
// latched byte (C3). Unrecognized events leave the buffer unchanged;
// the strobe bit (0x80) is set on press and cleared on release, and is
// never auto-cleared by a port-0 read.
func (io *IO) KeyEvent(sym Keysym, shift, ctrl, pressed bool) {
    code, ok := keyCode(sym, shift, ctrl)
    if !ok {
        return
    }
    if pressed {
        io.KeyBuffer = code | 0x80
    } else {
        io.KeyBuffer = code &^ 0x80
    }
}
