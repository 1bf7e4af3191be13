// Package triton implements the Transam Triton's port-mapped devices
// (C3-C6): the keyboard, the VDU controller, the LED/UART/latch block,
// and the cassette transport, all addressed through ports 0-7 by the
// CPU's IN and OUT opcodes.
package triton

import (
    "os"

    "github.com/triton-emu/triton/mem"
)

// IO is the Triton's entire port-mapped device state (C3-C6 combined,
// mirroring the single IOState the reference firmware threads through
// every port handler). It satisfies pia.Ports.
type IO struct {
    mem mem.MMU16

    KeyBuffer   uint8
    LEDBuffer   uint8
    VDUBuffer   uint8
    CursorPos   int
    VDUStartRow int
    Oscillator  bool
    TapeRelay   bool
    TapeStatus  TapeStatus
    UARTStatus  uint8
    Port6       uint8
    Port7       uint8

    tapePath string
    tapeFile *os.File
}

// New builds an IO block that writes video RAM through m. The tape
// transport uses the file "TAPE" in the working directory, per §6.
func New(m mem.MMU16) *IO {
    return &IO{mem: m, UARTStatus: 0x11, tapePath: "TAPE"}
}

func (io *IO) Reset() {
    io.closeTape()
    io.KeyBuffer = 0
    io.LEDBuffer = 0
    io.VDUBuffer = 0
    io.CursorPos = 0
    io.VDUStartRow = 0
    io.Oscillator = false
    io.TapeRelay = false
    io.TapeStatus = TapeIdle
    io.UARTStatus = 0x11
    io.Port6 = 0
    io.Port7 = 0
}

// In dispatches a port-mapped IN. current is the accumulator's value
// before the instruction executes; an unmapped port reads it back
// unchanged, matching a floating bus.
func (io *IO) In(port uint8, current uint8) uint8 {
    switch port {
    case 0:
        return io.KeyBuffer
    case 1:
        return io.UARTStatus
    case 4:
        return io.tapeRead(current)
    default:
        return current
    }
}

// Out dispatches a port-mapped OUT. Writes to unmapped ports are
// dropped.
func (io *IO) Out(port uint8, val uint8) {
    switch port {
    case 2:
        io.tapeWrite(val)
    case 3:
        io.LEDBuffer = val
    case 5:
        io.vduOut(val)
    case 6:
        io.Port6 = val >> 6
    case 7:
        io.port7Out(val)
    }
}

func (io *IO) vduOut(val uint8) {
    if io.VDUBuffer == val {
        return
    }
    io.VDUBuffer = val
    if val&0x80 != 0 {
        io.vduStrobe(val)
    }
}

func (io *IO) port7Out(val uint8) {
    io.Port7 = val
    io.Oscillator = val&0x40 != 0

    if val&0x80 != 0 && !io.TapeRelay {
        io.TapeRelay = true
    }
    if val&0x80 == 0 && io.TapeRelay {
        io.closeTape()
        io.TapeRelay = false
    }
}

// LEDLit reports whether LED i (0 = leftmost) is lit: a 0 bit, with
// bit 7 mapped to LED 0.
func (io *IO) LEDLit(i int) bool {
    return io.LEDBuffer&(0x80>>uint(i)) == 0
}
