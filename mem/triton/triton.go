// Package triton implements the Transam Triton's memory bus: a flat
// 64 KiB byte store with ROM images loaded at fixed offsets depending
// on the selected ROM set.
package triton

import (
    "fmt"
    "io/ioutil"
)

// Memory is the Triton's entire address space. There is no bank
// switching and no memory-mapped device window: video RAM is just an
// ordinary region of RAM that the VDU controller and the presenter
// both happen to read and write.
type Memory struct {
    RAM [1 << 16]uint8
}

func New() *Memory {
    return &Memory{}
}

func (m *Memory) Reset() {
    for i := range m.RAM {
        m.RAM[i] = 0
    }
}

func (m *Memory) R8(addr uint16) uint8 {
    return m.RAM[addr]
}

func (m *Memory) W8(addr uint16, val uint8) {
    m.RAM[addr] = val
}

// R16/W16 are little-endian: low byte at addr, high byte at addr+1,
// matching the 8080's native word order for LXI/LHLD/SHLD/stack ops.
func (m *Memory) R16(addr uint16) uint16 {
    lo := uint16(m.RAM[addr])
    hi := uint16(m.RAM[addr+1])
    return (hi << 8) | lo
}

func (m *Memory) W16(addr uint16, val uint16) {
    m.RAM[addr] = uint8(val)
    m.RAM[addr+1] = uint8(val >> 8)
}

type romFile struct {
    name string
    addr uint16
}

// romSets mirrors the file layouts of the reference Triton firmware
// dumps, one entry per distribution. "default" is the layout the
// reference loads when given no argument at all (MONA72/MONB72/
// BASIC72); "7.2" is its distinct layout for the explicit "7.2"
// argument (the split ROM_7.2A/B monitor plus eight 1K BASIC pages).
var romSets = map[string][]romFile{
    "default": {
        {"MONA72.ROM", 0x0000},
        {"MONB72.ROM", 0x0c00},
        {"BASIC72.ROM", 0xe000},
    },
    "4.1": {
        {"L4.1 MONITOR.BIN", 0x0000},
        {"L4.1A BASIC.BIN", 0x0400},
        {"L4.1B BASIC.BIN", 0x0800},
    },
    "5.1": {
        {"ROM_5.1A.BIN", 0x0000},
        {"ROM_5.1A BASIC.BIN", 0x0400},
        {"ROM_5.1B BASIC.BIN", 0x0800},
        {"ROM_5.1B.BIN", 0x0c00},
    },
    "5.2": {
        {"ROM_5.2A.BIN", 0x0000},
        {"ROM_5.1A BASIC.BIN", 0x0400},
        {"ROM_5.1B BASIC.BIN", 0x0800},
        {"ROM_5.2B.BIN", 0x0c00},
    },
    "7.2": {
        {"ROM_7.2A.BIN", 0x0000},
        {"ROM_7.2B.BIN", 0x0c00},
        {"L7.2A BASIC.BIN", 0xe000},
        {"L7.2B BASIC.BIN", 0xe400},
        {"L7.2C BASIC.BIN", 0xe800},
        {"L7.2D BASIC.BIN", 0xec00},
        {"L7.2E BASIC.BIN", 0xf000},
        {"L7.2F BASIC.BIN", 0xf400},
        {"L7.2G BASIC.BIN", 0xf800},
        {"L7.2H BASIC.BIN", 0xfc00},
    },
    "7.2DEC": {
        {"ROM_7.2A.BIN", 0x0000},
        {"ROM_7.2B.BIN", 0x0c00},
        {"L7.2A BASIC 31DECEMBER2020.BIN", 0xe000},
        {"L7.2B BASIC 31DECEMBER2020.BIN", 0xe400},
        {"L7.2C BASIC 31DECEMBER2020.BIN", 0xe800},
        {"L7.2D BASIC 31DECEMBER2020.BIN", 0xec00},
        {"L7.2E BASIC 31DECEMBER2020.BIN", 0xf000},
        {"L7.2F BASIC 31DECEMBER2020.BIN", 0xf400},
        {"L7.2G BASIC 31DECEMBER2020.BIN", 0xf800},
        {"L7.2H BASIC 31DECEMBER2020.BIN", 0xfc00},
    },
}

// ROMSets lists the CLI-recognized ROM set names, in the order the
// external interface documents them.
var ROMSets = []string{"", "4.1", "5.1", "5.2", "7.2", "7.2DEC"}

// ValidROMSet reports whether name is one of the recognized ROM set
// selectors (including "" for the default).
func ValidROMSet(name string) bool {
    for _, s := range ROMSets {
        if s == name {
            return true
        }
    }
    return false
}

// LoadROMSet resolves name to its file layout (the no-argument
// default when name is ""), reads each file from dir, and writes its
// bytes into RAM at the documented load address. It returns an error
// if the set name is unrecognized or any ROM file cannot be read in
// full.
func (m *Memory) LoadROMSet(dir, name string) error {
    key := name
    if key == "" {
        key = "default"
    }
    files, ok := romSets[key]
    if !ok {
        return fmt.Errorf("unknown ROM set %q", name)
    }
    for _, f := range files {
        path := f.name
        if dir != "" {
            path = dir + "/" + f.name
        }
        data, err := ioutil.ReadFile(path)
        if err != nil {
            return fmt.Errorf("loading %s: %w", f.name, err)
        }
        if int(f.addr)+len(data) > len(m.RAM) {
            return fmt.Errorf("%s does not fit at $%04X", f.name, f.addr)
        }
        copy(m.RAM[f.addr:], data)
    }
    return nil
}
