package i8080

import (
    "testing"

    "github.com/triton-emu/triton/mem/triton"
)

func TestAddFlagsScenario(t *testing.T) {
    // S4: A=0x3A, B=0x0F; ADD B -> A=0x49, Z=0, S=0, P=0 (0x49 has
    // three set bits, odd parity), CY=0, AC=1.
    c := New()
    m := triton.New()
    c.A = 0x3A
    c.B = 0x0F
    m.W8(0, 0x80) // ADD B
    c.Step(m)
    if c.A != 0x49 {
        t.Errorf("ADD B: expected A=0x49, got 0x%02X", c.A)
    }
    if c.Z || c.S || c.P || c.CY || !c.AC {
        t.Errorf("ADD B flags: Z=%v S=%v P=%v CY=%v AC=%v", c.Z, c.S, c.P, c.CY, c.AC)
    }
}

func TestDAAScenario(t *testing.T) {
    // S5: A=0x9B, CY=0, AC=0; DAA -> A=0x01, CY=1, AC=1, Z=0.
    c := New()
    m := triton.New()
    c.A = 0x9B
    m.W8(0, 0x27) // DAA
    c.Step(m)
    if c.A != 0x01 || !c.CY || !c.AC || c.Z {
        t.Errorf("DAA: expected A=0x01 CY=1 AC=1 Z=0, got A=0x%02X CY=%v AC=%v Z=%v", c.A, c.CY, c.AC, c.Z)
    }
}

func TestPSWRoundTrip(t *testing.T) {
    c := New()
    m := triton.New()
    c.SP = 0x2000
    c.A = 0x5A
    c.Z, c.S, c.P, c.CY, c.AC = true, false, true, true, false

    m.W8(0, 0xF5) // PUSH PSW
    m.W8(1, 0xF1) // POP PSW
    c.Step(m)
    c.Step(m)

    if c.A != 0x5A {
        t.Errorf("PSW round trip: A changed, got 0x%02X", c.A)
    }
    if !c.Z || c.S || !c.P || !c.CY || c.AC {
        t.Errorf("PSW round trip: flags changed: Z=%v S=%v P=%v CY=%v AC=%v", c.Z, c.S, c.P, c.CY, c.AC)
    }
    if c.SP != 0x2000 {
        t.Errorf("PSW round trip: SP not restored, got 0x%04X", c.SP)
    }
}

func TestPushPSWForcesFixedBits(t *testing.T) {
    c := New()
    m := triton.New()
    c.A = 0x00
    c.Z, c.S, c.P, c.CY, c.AC = false, false, false, false, false
    m.W8(0, 0xF5) // PUSH PSW
    c.Step(m)
    low := m.R8(c.SP)
    if low&0x02 == 0 {
        t.Errorf("PUSH PSW: bit 1 must be forced to 1, got 0x%02X", low)
    }
    if low&0x28 != 0 {
        t.Errorf("PUSH PSW: bits 3/5 must be forced to 0, got 0x%02X", low)
    }
}

func TestStackSymmetry(t *testing.T) {
    // CALL immediately followed by RET restores PC and SP.
    c := New()
    m := triton.New()
    c.SP = 0x2000
    c.PC = 0x0100
    m.W8(0x0100, 0xCD) // CALL 0x0200
    m.W16(0x0101, 0x0200)
    m.W8(0x0200, 0xC9) // RET
    startSP := c.SP
    c.Step(m) // CALL
    if c.PC != 0x0200 {
        t.Fatalf("CALL: expected PC=0x0200, got 0x%04X", c.PC)
    }
    c.Step(m) // RET
    if c.PC != 0x0103 {
        t.Errorf("RET: expected PC=0x0103, got 0x%04X", c.PC)
    }
    if c.SP != startSP {
        t.Errorf("RET: expected SP restored to 0x%04X, got 0x%04X", startSP, c.SP)
    }
}

func TestInterruptRequiresINTE(t *testing.T) {
    c := New()
    m := triton.New()
    c.INTE = false
    c.PC = 0x1234
    c.Interrupt(m, 0x0008)
    if c.PC != 0x1234 {
        t.Errorf("Interrupt with INTE=0: expected no-op, PC changed to 0x%04X", c.PC)
    }

    c.INTE = true
    c.SP = 0x2000
    c.Interrupt(m, 0x0008)
    if c.PC != 0x0008 {
        t.Errorf("Interrupt with INTE=1: expected PC=0x0008, got 0x%04X", c.PC)
    }
    if c.INTE {
        t.Errorf("Interrupt: expected INTE cleared")
    }
    if m.R16(c.SP) != 0x1234 {
        t.Errorf("Interrupt: expected pushed PC=0x1234, got 0x%04X", m.R16(c.SP))
    }
}

func TestParityFlag(t *testing.T) {
    cases := []struct {
        v    uint8
        even bool
    }{
        {0x00, true},
        {0x01, false},
        {0x03, true},
        {0xFF, true},
        {0x0F, true},
        {0x07, false},
    }
    for _, tc := range cases {
        if got := parity(tc.v); got != tc.even {
            t.Errorf("parity(0x%02X): expected %v, got %v", tc.v, tc.even, got)
        }
    }
}

func TestEIDelaysOneInstruction(t *testing.T) {
    c := New()
    m := triton.New()
    c.INTE = false
    m.W8(0, 0xFB) // EI
    m.W8(1, 0x00) // NOP
    m.W8(2, 0x00) // NOP

    c.Step(m) // EI: INTE still false immediately after
    if c.INTE {
        t.Errorf("EI: INTE should not be set until after the following instruction")
    }
    c.Step(m) // the instruction following EI
    if c.INTE {
        t.Errorf("EI: INTE should still be false during the instruction right after EI")
    }
    c.Step(m) // one more instruction boundary
    if !c.INTE {
        t.Errorf("EI: INTE should be set by now")
    }
}

func TestDIImmediate(t *testing.T) {
    c := New()
    m := triton.New()
    c.INTE = true
    m.W8(0, 0xF3) // DI
    c.Step(m)
    if c.INTE {
        t.Errorf("DI: expected INTE cleared immediately")
    }
}

func TestRegisterMOVThroughMemory(t *testing.T) {
    c := New()
    m := triton.New()
    c.H, c.L = 0x20, 0x00
    m.W8(0x2000, 0x77)
    m.W8(0, 0x46) // MOV B,M
    cycles := c.Step(m)
    if c.B != 0x77 {
        t.Errorf("MOV B,M: expected B=0x77, got 0x%02X", c.B)
    }
    if cycles != 7 {
        t.Errorf("MOV B,M: expected 7 cycles, got %d", cycles)
    }
}

func TestLogicalANDAuxCarryRule(t *testing.T) {
    c := New()
    m := triton.New()
    c.A = 0x0F
    c.B = 0x01
    m.W8(0, 0xA0) // ANA B
    c.Step(m)
    if c.A != 0x01 {
        t.Errorf("ANA B: expected A=0x01, got 0x%02X", c.A)
    }
    if !c.AC {
        t.Errorf("ANA B: expected AC=1 since (0x0F|0x01)&0x08 != 0")
    }
    if c.CY {
        t.Errorf("ANA B: expected CY cleared")
    }
}

func TestDADUpdatesOnlyCY(t *testing.T) {
    c := New()
    m := triton.New()
    c.H, c.L = 0xFF, 0xFF
    c.B, c.C = 0x00, 0x01
    c.Z = true // sentinel: DAD must not touch Z
    m.W8(0, 0x09) // DAD B
    c.Step(m)
    if c.H != 0x00 || c.L != 0x00 {
        t.Errorf("DAD B: expected HL=0x0000, got 0x%02X%02X", c.H, c.L)
    }
    if !c.CY {
        t.Errorf("DAD B: expected CY set on overflow")
    }
    if !c.Z {
        t.Errorf("DAD B: must not touch Z")
    }
}
