package cpu

import (
    "github.com/triton-emu/triton/mem"
)

// CPU16 is a 16-bit-addressed processor core driven one instruction at
// a time by a machine loop. Step fetches and executes a single
// instruction from mmu at the current PC and returns the number of
// clock cycles it consumed.
type CPU16 interface {
    Step(mmu mem.MMU16) int
    Reset()
}
