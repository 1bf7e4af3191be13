// Package machine implements the Triton's frame loop (C7): it metes
// out 8080 execution in T-state-budgeted chunks, intercepts IN/OUT
// before they reach the CPU core, and turns front-panel hotkeys into
// resets, injected interrupts, and pause toggles.
package machine

import (
    "github.com/triton-emu/triton/cpu/i8080"
    "github.com/triton-emu/triton/mem"
    "github.com/triton-emu/triton/pia"
    "github.com/triton-emu/triton/ui"
)

// Hotkey names one of the host front-panel buttons (§6).
type Hotkey int

const (
    HotkeyNone Hotkey = iota
    HotkeyReset
    HotkeyRST1
    HotkeyRST2
    HotkeyPause
)

const (
    rst1Vector = 0x0008
    rst2Vector = 0x0010
)

// Machine wires one CPU to one memory bus and one port block and
// drives them together, one frame at a time.
type Machine struct {
    CPU *i8080.CPU
    Mem mem.MMU16
    IO  pia.Ports

    ClockHz   int
    Framerate int
    Paused    bool
}

// New returns a Machine configured for the Triton's reference timing:
// an 800 kHz clock serviced at 25 frames per second, i.e. 32 000
// T-states per frame.
func New(cpu *i8080.CPU, m mem.MMU16, io pia.Ports) *Machine {
    return &Machine{CPU: cpu, Mem: m, IO: io, ClockHz: 800000, Framerate: 25}
}

// RunFrame executes instructions until the frame's T-state budget is
// spent, a halted CPU has nothing left to do, or the machine is
// paused. IN and OUT are peeked and routed to IO before the CPU ever
// sees them, exactly as §4.7 describes; every other opcode goes to
// the CPU's own Step.
func (mc *Machine) RunFrame() {
    if mc.Paused {
        return
    }
    budget := mc.ClockHz / mc.Framerate
    spent := 0
    for spent < budget {
        if mc.CPU.Halted {
            return
        }
        switch mc.Mem.R8(mc.CPU.PC) {
        case 0xDB: // IN port
            port := mc.Mem.R8(mc.CPU.PC + 1)
            mc.CPU.A = mc.IO.In(port, mc.CPU.A)
            mc.CPU.PC += 2
            mc.CPU.Cycles += 10
            spent += 10
        case 0xD3: // OUT port
            port := mc.Mem.R8(mc.CPU.PC + 1)
            mc.IO.Out(port, mc.CPU.A)
            mc.CPU.PC += 2
            mc.CPU.Cycles += 10
            spent += 10
        default:
            spent += mc.CPU.Step(mc.Mem)
        }
    }
}

// HandleHotkey dispatches one front-panel button. F9 (quit) is the
// host program's concern, not the machine's, and is not modeled here.
func (mc *Machine) HandleHotkey(key Hotkey) {
    switch key {
    case HotkeyReset:
        mc.CPU.PC = 0
        mc.CPU.INTE = false
        mc.CPU.Halted = false
        ui.Log("reset")
    case HotkeyRST1:
        mc.interrupt(rst1Vector)
    case HotkeyRST2:
        mc.interrupt(rst2Vector)
    case HotkeyPause:
        mc.Paused = !mc.Paused
    }
}

func (mc *Machine) interrupt(vector uint16) {
    if !mc.CPU.INTE {
        return
    }
    mc.CPU.Interrupt(mc.Mem, vector) // also clears INTE; guarded above per invariant 6
    ui.Log("interrupt injected")
}
