// Package i8080 implements an Intel 8080A instruction interpreter: the
// register file, flag semantics, and fetch-decode-execute loop that
// the Triton's front panel and ROMs run against. It knows nothing
// about ports, video RAM, or the tape transport — those are the
// machine loop's and the port devices' business (§4.7).
package i8080

import (
    "fmt"

    "github.com/triton-emu/triton/mem"
)

// CPU is the 8080's register file plus the interpreter state needed to
// drive it one instruction at a time.
type CPU struct {
    A, B, C, D, E, H, L uint8
    SP, PC              uint16

    Z, S, P, CY, AC bool // stored individually, per the reference data model

    INTE     bool // interrupt-enable flip-flop
    eiDelay  int  // instructions until a pending EI takes effect (0 = not pending)
    Halted   bool
    Cycles   uint64
}

func New() *CPU {
    return &CPU{}
}

// Reset returns the CPU to its documented power-on state: PC and INTE
// both zero. Registers and flags are left at zero too, since nothing
// in the reference depends on their pre-reset values.
func (c *CPU) Reset() {
    *c = CPU{}
}

func (c *CPU) Status() string {
    return fmt.Sprintf(
        "PC:%04X SP:%04X A:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X  Z:%v S:%v P:%v CY:%v AC:%v INTE:%v",
        c.PC, c.SP, c.A, c.B, c.C, c.D, c.E, c.H, c.L, c.Z, c.S, c.P, c.CY, c.AC, c.INTE)
}

func (c *CPU) bc() uint16 { return uint16(c.B)<<8 | uint16(c.C) }
func (c *CPU) de() uint16 { return uint16(c.D)<<8 | uint16(c.E) }
func (c *CPU) hl() uint16 { return uint16(c.H)<<8 | uint16(c.L) }

func (c *CPU) setBC(v uint16) { c.B = uint8(v >> 8); c.C = uint8(v) }
func (c *CPU) setDE(v uint16) { c.D = uint8(v >> 8); c.E = uint8(v) }
func (c *CPU) setHL(v uint16) { c.H = uint8(v >> 8); c.L = uint8(v) }

// psw packs the flags into the 8080's fixed status-byte layout: bit 7
// S, bit 6 Z, bit 5 always 0, bit 4 AC, bit 3 always 0, bit 2 P, bit 1
// always 1, bit 0 CY.
func (c *CPU) psw() uint8 {
    f := uint8(0x02)
    if c.CY {
        f |= 0x01
    }
    if c.P {
        f |= 0x04
    }
    if c.AC {
        f |= 0x10
    }
    if c.Z {
        f |= 0x40
    }
    if c.S {
        f |= 0x80
    }
    return f
}

func (c *CPU) setPSW(f uint8) {
    c.CY = f&0x01 != 0
    c.P = f&0x04 != 0
    c.AC = f&0x10 != 0
    c.Z = f&0x40 != 0
    c.S = f&0x80 != 0
}

// reg reads one of the eight 3-bit-encoded operands (000=B .. 111=A,
// with 110 the memory reference through HL).
func (c *CPU) reg(m mem.MMU16, code uint8) uint8 {
    switch code & 0x07 {
    case 0:
        return c.B
    case 1:
        return c.C
    case 2:
        return c.D
    case 3:
        return c.E
    case 4:
        return c.H
    case 5:
        return c.L
    case 6:
        return m.R8(c.hl())
    default:
        return c.A
    }
}

func (c *CPU) setReg(m mem.MMU16, code uint8, v uint8) {
    switch code & 0x07 {
    case 0:
        c.B = v
    case 1:
        c.C = v
    case 2:
        c.D = v
    case 3:
        c.E = v
    case 4:
        c.H = v
    case 5:
        c.L = v
    case 6:
        m.W8(c.hl(), v)
    default:
        c.A = v
    }
}

// rp reads one of the four register-pair operands encoded in bits 5-4
// of an opcode (00=BC, 01=DE, 10=HL, 11=SP).
func (c *CPU) rp(code uint8) uint16 {
    switch code & 0x03 {
    case 0:
        return c.bc()
    case 1:
        return c.de()
    case 2:
        return c.hl()
    default:
        return c.SP
    }
}

func (c *CPU) setRP(code uint8, v uint16) {
    switch code & 0x03 {
    case 0:
        c.setBC(v)
    case 1:
        c.setDE(v)
    case 2:
        c.setHL(v)
    default:
        c.SP = v
    }
}

func (c *CPU) push(m mem.MMU16, v uint16) {
    c.SP -= 2
    m.W16(c.SP, v)
}

func (c *CPU) pop(m mem.MMU16) uint16 {
    v := m.R16(c.SP)
    c.SP += 2
    return v
}

// Interrupt injects a host-initiated RST: it checks INTE, clears it,
// pushes PC, and jumps to vector. A no-op when INTE is clear, matching
// invariant 6 (F2/F3 have no effect while interrupts are masked).
func (c *CPU) Interrupt(m mem.MMU16, vector uint16) {
    if !c.INTE {
        return
    }
    c.INTE = false
    c.Halted = false
    c.push(m, c.PC)
    c.PC = vector
}
