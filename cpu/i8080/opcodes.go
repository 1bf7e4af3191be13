package i8080

import "github.com/triton-emu/triton/mem"

// Step fetches and executes one instruction and returns the number of
// T-states it consumed. It never touches ports: IN and OUT are left
// for the machine loop to intercept (§4.7); if Step ever does see one
// directly it consumes the port byte and charges 10 cycles without
// otherwise acting, so a bare CPU is still well-behaved in isolation.
func (c *CPU) Step(m mem.MMU16) int {
    if c.eiDelay > 0 {
        c.eiDelay--
        if c.eiDelay == 0 {
            c.INTE = true
        }
    }
    if c.Halted {
        return 4
    }
    op := m.R8(c.PC)
    c.PC++
    cycles := c.execute(m, op)
    c.Cycles += uint64(cycles)
    return cycles
}

func (c *CPU) condition(bits uint8) bool {
    switch bits & 0x07 {
    case 0:
        return !c.Z
    case 1:
        return c.Z
    case 2:
        return !c.CY
    case 3:
        return c.CY
    case 4:
        return !c.P
    case 5:
        return c.P
    case 6:
        return !c.S
    default:
        return c.S
    }
}

func (c *CPU) execute(m mem.MMU16, op uint8) int {
    switch {
    case op == 0x76: // HLT
        c.Halted = true
        return 7

    case op&0xC0 == 0x40: // MOV r,r'
        src := op & 0x07
        dst := (op >> 3) & 0x07
        c.setReg(m, dst, c.reg(m, src))
        if src == 6 || dst == 6 {
            return 7
        }
        return 5

    case op&0xC0 == 0x80: // ALU group: ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP r
        return c.aluGroup(m, op)

    case op&0xC7 == 0x04: // INR r
        return c.inr(m, op)

    case op&0xC7 == 0x05: // DCR r
        return c.dcr(m, op)

    case op&0xC7 == 0x06: // MVI r,d8
        return c.mvi(m, op)

    case op&0xCF == 0x01: // LXI rp,d16
        v := m.R16(c.PC)
        c.PC += 2
        c.setRP((op>>4)&0x03, v)
        return 10

    case op&0xCF == 0x03: // INX rp
        idx := (op >> 4) & 0x03
        c.setRP(idx, c.rp(idx)+1)
        return 5

    case op&0xCF == 0x0B: // DCX rp
        idx := (op >> 4) & 0x03
        c.setRP(idx, c.rp(idx)-1)
        return 5

    case op&0xCF == 0x09: // DAD rp
        idx := (op >> 4) & 0x03
        sum := uint32(c.hl()) + uint32(c.rp(idx))
        c.setHL(uint16(sum))
        c.CY = sum > 0xFFFF
        return 10

    case op&0xCF == 0xC5: // PUSH rp2 (BC, DE, HL, PSW)
        idx := (op >> 4) & 0x03
        var v uint16
        switch idx {
        case 0:
            v = c.bc()
        case 1:
            v = c.de()
        case 2:
            v = c.hl()
        default:
            v = uint16(c.A)<<8 | uint16(c.psw())
        }
        c.push(m, v)
        return 11

    case op&0xCF == 0xC1: // POP rp2
        idx := (op >> 4) & 0x03
        v := c.pop(m)
        switch idx {
        case 0:
            c.setBC(v)
        case 1:
            c.setDE(v)
        case 2:
            c.setHL(v)
        default:
            c.A = uint8(v >> 8)
            c.setPSW(uint8(v))
        }
        return 10

    case op&0xC7 == 0xC2: // Jcond addr
        addr := m.R16(c.PC)
        c.PC += 2
        if c.condition(op >> 3) {
            c.PC = addr
        }
        return 10

    case op&0xC7 == 0xC4: // Ccond addr
        addr := m.R16(c.PC)
        c.PC += 2
        if c.condition(op >> 3) {
            c.push(m, c.PC)
            c.PC = addr
            return 17
        }
        return 11

    case op&0xC7 == 0xC0: // Rcond
        if c.condition(op >> 3) {
            c.PC = c.pop(m)
            return 11
        }
        return 5

    case op&0xC7 == 0xC7: // RST n
        n := (op >> 3) & 0x07
        c.push(m, c.PC)
        c.PC = uint16(n) * 8
        return 11
    }

    switch op {
    case 0x02: // STAX B
        m.W8(c.bc(), c.A)
        return 7
    case 0x0A: // LDAX B
        c.A = m.R8(c.bc())
        return 7
    case 0x12: // STAX D
        m.W8(c.de(), c.A)
        return 7
    case 0x1A: // LDAX D
        c.A = m.R8(c.de())
        return 7
    case 0x22: // SHLD addr
        addr := m.R16(c.PC)
        c.PC += 2
        m.W16(addr, c.hl())
        return 16
    case 0x2A: // LHLD addr
        addr := m.R16(c.PC)
        c.PC += 2
        c.setHL(m.R16(addr))
        return 16
    case 0x32: // STA addr
        addr := m.R16(c.PC)
        c.PC += 2
        m.W8(addr, c.A)
        return 13
    case 0x3A: // LDA addr
        addr := m.R16(c.PC)
        c.PC += 2
        c.A = m.R8(addr)
        return 13

    case 0x07: // RLC
        bit7 := c.A&0x80 != 0
        c.A <<= 1
        if bit7 {
            c.A |= 0x01
        }
        c.CY = bit7
        return 4
    case 0x0F: // RRC
        bit0 := c.A&0x01 != 0
        c.A >>= 1
        if bit0 {
            c.A |= 0x80
        }
        c.CY = bit0
        return 4
    case 0x17: // RAL
        bit7 := c.A&0x80 != 0
        newA := c.A << 1
        if c.CY {
            newA |= 0x01
        }
        c.A = newA
        c.CY = bit7
        return 4
    case 0x1F: // RAR
        bit0 := c.A&0x01 != 0
        newA := c.A >> 1
        if c.CY {
            newA |= 0x80
        }
        c.A = newA
        c.CY = bit0
        return 4
    case 0x27: // DAA
        c.daa()
        return 4
    case 0x2F: // CMA
        c.A = ^c.A
        return 4
    case 0x37: // STC
        c.CY = true
        return 4
    case 0x3F: // CMC
        c.CY = !c.CY
        return 4

    case 0xEB: // XCHG
        c.D, c.H = c.H, c.D
        c.E, c.L = c.L, c.E
        return 4
    case 0xE3: // XTHL
        lo := m.R8(c.SP)
        hi := m.R8(c.SP + 1)
        m.W8(c.SP, c.L)
        m.W8(c.SP+1, c.H)
        c.L, c.H = lo, hi
        return 18
    case 0xF9: // SPHL
        c.SP = c.hl()
        return 5
    case 0xE9: // PCHL
        c.PC = c.hl()
        return 5

    case 0xF3: // DI
        c.INTE = false
        c.eiDelay = 0
        return 4
    case 0xFB: // EI
        c.eiDelay = 2
        return 4

    case 0xC3: // JMP addr
        c.PC = m.R16(c.PC)
        return 10
    case 0xCD: // CALL addr
        addr := m.R16(c.PC)
        c.PC += 2
        c.push(m, c.PC)
        c.PC = addr
        return 17
    case 0xC9: // RET
        c.PC = c.pop(m)
        return 10

    case 0xC6: // ADI d8
        d := m.R8(c.PC)
        c.PC++
        r, cy, ac := addFlags(c.A, d, 0)
        c.A, c.CY, c.AC = r, cy, ac
        c.setZSP(r)
        return 7
    case 0xCE: // ACI d8
        d := m.R8(c.PC)
        c.PC++
        r, cy, ac := addFlags(c.A, d, boolToU8(c.CY))
        c.A, c.CY, c.AC = r, cy, ac
        c.setZSP(r)
        return 7
    case 0xD6: // SUI d8
        d := m.R8(c.PC)
        c.PC++
        r, cy, ac := subFlags(c.A, d, 0)
        c.A, c.CY, c.AC = r, cy, ac
        c.setZSP(r)
        return 7
    case 0xDE: // SBI d8
        d := m.R8(c.PC)
        c.PC++
        r, cy, ac := subFlags(c.A, d, boolToU8(c.CY))
        c.A, c.CY, c.AC = r, cy, ac
        c.setZSP(r)
        return 7
    case 0xE6: // ANI d8
        d := m.R8(c.PC)
        c.PC++
        c.AC = (c.A|d)&0x08 != 0
        c.A &= d
        c.CY = false
        c.setZSP(c.A)
        return 7
    case 0xEE: // XRI d8
        d := m.R8(c.PC)
        c.PC++
        c.A ^= d
        c.CY, c.AC = false, false
        c.setZSP(c.A)
        return 7
    case 0xF6: // ORI d8
        d := m.R8(c.PC)
        c.PC++
        c.A |= d
        c.CY, c.AC = false, false
        c.setZSP(c.A)
        return 7
    case 0xFE: // CPI d8
        d := m.R8(c.PC)
        c.PC++
        r, cy, ac := subFlags(c.A, d, 0)
        c.CY, c.AC = cy, ac
        c.setZSP(r)
        return 7

    case 0xDB, 0xD3: // IN/OUT: the machine loop intercepts these before
        // Step is ever called with them at PC; reaching here means a
        // caller stepped the CPU directly. Consume the port byte and
        // charge the documented cycle count without touching A.
        c.PC++
        return 10
    }

    // Undocumented opcodes (0x08,0x10,0x18,0x20,0x28,0x30,0x38,0xCB,
    // 0xD9,0xDD,0xED,0xFD) and the real NOP (0x00) all land here.
    return 4
}

func (c *CPU) aluGroup(m mem.MMU16, op uint8) int {
    src := op & 0x07
    v := c.reg(m, src)
    switch (op >> 3) & 0x07 {
    case 0: // ADD
        r, cy, ac := addFlags(c.A, v, 0)
        c.A, c.CY, c.AC = r, cy, ac
        c.setZSP(r)
    case 1: // ADC
        r, cy, ac := addFlags(c.A, v, boolToU8(c.CY))
        c.A, c.CY, c.AC = r, cy, ac
        c.setZSP(r)
    case 2: // SUB
        r, cy, ac := subFlags(c.A, v, 0)
        c.A, c.CY, c.AC = r, cy, ac
        c.setZSP(r)
    case 3: // SBB
        r, cy, ac := subFlags(c.A, v, boolToU8(c.CY))
        c.A, c.CY, c.AC = r, cy, ac
        c.setZSP(r)
    case 4: // ANA
        c.AC = (c.A|v)&0x08 != 0
        c.A &= v
        c.CY = false
        c.setZSP(c.A)
    case 5: // XRA
        c.A ^= v
        c.CY, c.AC = false, false
        c.setZSP(c.A)
    case 6: // ORA
        c.A |= v
        c.CY, c.AC = false, false
        c.setZSP(c.A)
    default: // CMP
        r, cy, ac := subFlags(c.A, v, 0)
        c.CY, c.AC = cy, ac
        c.setZSP(r)
    }
    if src == 6 {
        return 7
    }
    return 4
}

func (c *CPU) inr(m mem.MMU16, op uint8) int {
    code := (op >> 3) & 0x07
    v := c.reg(m, code)
    r, _, ac := addFlags(v, 1, 0)
    c.setReg(m, code, r)
    c.AC = ac
    c.setZSP(r)
    if code == 6 {
        return 10
    }
    return 5
}

func (c *CPU) dcr(m mem.MMU16, op uint8) int {
    code := (op >> 3) & 0x07
    v := c.reg(m, code)
    r, _, ac := subFlags(v, 1, 0)
    c.setReg(m, code, r)
    c.AC = ac
    c.setZSP(r)
    if code == 6 {
        return 10
    }
    return 5
}

func (c *CPU) mvi(m mem.MMU16, op uint8) int {
    code := (op >> 3) & 0x07
    d := m.R8(c.PC)
    c.PC++
    c.setReg(m, code, d)
    if code == 6 {
        return 10
    }
    return 7
}

// daa performs the documented two-step BCD adjustment: correct the low
// nibble first (tracking the auxiliary carry it produces), then the
// high nibble, accumulating carry out of either step.
func (c *CPU) daa() {
    a := c.A
    cy := c.CY
    ac := c.AC

    low := a & 0x0F
    if ac || low > 9 {
        ac = low+6 > 0x0F
        a += 6
    } else {
        ac = false
    }

    high := a >> 4
    if cy || high > 9 {
        cy = true
        a += 0x60
    }

    c.A = a
    c.CY = cy
    c.AC = ac
    c.setZSP(a)
}
