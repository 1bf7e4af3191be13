package triton

import (
    "io/ioutil"
    "path/filepath"
    "testing"
)

func TestR8W8(t *testing.T) {
    m := New()
    m.W8(0x1234, 0xAB)
    if got := m.R8(0x1234); got != 0xAB {
        t.Errorf("R8: expected 0xAB, got 0x%02X", got)
    }
}

func TestR16W16LittleEndian(t *testing.T) {
    m := New()
    m.W16(0x2000, 0xBEEF)
    if got := m.R8(0x2000); got != 0xEF {
        t.Errorf("W16: expected low byte 0xEF at addr, got 0x%02X", got)
    }
    if got := m.R8(0x2001); got != 0xBE {
        t.Errorf("W16: expected high byte 0xBE at addr+1, got 0x%02X", got)
    }
    if got := m.R16(0x2000); got != 0xBEEF {
        t.Errorf("R16: expected 0xBEEF, got 0x%04X", got)
    }
}

func TestReset(t *testing.T) {
    m := New()
    m.W8(0x0010, 0xFF)
    m.Reset()
    if got := m.R8(0x0010); got != 0 {
        t.Errorf("Reset: expected RAM cleared, got 0x%02X", got)
    }
}

func TestValidROMSet(t *testing.T) {
    cases := []struct {
        name string
        want bool
    }{
        {"", true},
        {"4.1", true},
        {"5.1", true},
        {"5.2", true},
        {"7.2", true},
        {"7.2DEC", true},
        {"bogus", false},
    }
    for _, tc := range cases {
        if got := ValidROMSet(tc.name); got != tc.want {
            t.Errorf("ValidROMSet(%q): expected %v, got %v", tc.name, tc.want, got)
        }
    }
}

func TestLoadROMSetUnknownName(t *testing.T) {
    m := New()
    if err := m.LoadROMSet(".", "bogus"); err == nil {
        t.Errorf("LoadROMSet: expected error for unknown ROM set name")
    }
}

func TestLoadROMSetMissingFile(t *testing.T) {
    dir := t.TempDir()
    m := New()
    if err := m.LoadROMSet(dir, "4.1"); err == nil {
        t.Errorf("LoadROMSet: expected error when ROM files are absent")
    }
}

func TestLoadROMSetLoadsAtDocumentedAddresses(t *testing.T) {
    dir := t.TempDir()
    writeFixture(t, dir, "L4.1 MONITOR.BIN", []byte{0x11, 0x22})
    writeFixture(t, dir, "L4.1A BASIC.BIN", []byte{0x33, 0x44})
    writeFixture(t, dir, "L4.1B BASIC.BIN", []byte{0x55, 0x66})

    m := New()
    if err := m.LoadROMSet(dir, "4.1"); err != nil {
        t.Fatalf("LoadROMSet: unexpected error: %v", err)
    }
    if m.R8(0x0000) != 0x11 || m.R8(0x0001) != 0x22 {
        t.Errorf("LoadROMSet: monitor not loaded at 0x0000")
    }
    if m.R8(0x0400) != 0x33 || m.R8(0x0401) != 0x44 {
        t.Errorf("LoadROMSet: BASIC A not loaded at 0x0400")
    }
    if m.R8(0x0800) != 0x55 || m.R8(0x0801) != 0x66 {
        t.Errorf("LoadROMSet: BASIC B not loaded at 0x0800")
    }
}

func TestLoadROMSetNoArgumentDefault(t *testing.T) {
    dir := t.TempDir()
    writeFixture(t, dir, "MONA72.ROM", []byte{0x01})
    writeFixture(t, dir, "MONB72.ROM", []byte{0x02})
    writeFixture(t, dir, "BASIC72.ROM", []byte{0x03})

    m := New()
    if err := m.LoadROMSet(dir, ""); err != nil {
        t.Fatalf("LoadROMSet: unexpected error: %v", err)
    }
    if m.R8(0x0000) != 0x01 || m.R8(0x0c00) != 0x02 || m.R8(0xe000) != 0x03 {
        t.Errorf("LoadROMSet: no-argument default not loaded at documented offsets")
    }
}

func TestLoadROMSetExplicitSevenTwo(t *testing.T) {
    // The explicit "7.2" selector is a distinct layout from the
    // no-argument default: a split ROM_7.2A/B monitor plus eight 1K
    // BASIC pages at 0xE000-0xFC00.
    dir := t.TempDir()
    writeFixture(t, dir, "ROM_7.2A.BIN", []byte{0x10})
    writeFixture(t, dir, "ROM_7.2B.BIN", []byte{0x20})
    writeFixture(t, dir, "L7.2A BASIC.BIN", []byte{0x30})
    writeFixture(t, dir, "L7.2B BASIC.BIN", []byte{0x31})
    writeFixture(t, dir, "L7.2C BASIC.BIN", []byte{0x32})
    writeFixture(t, dir, "L7.2D BASIC.BIN", []byte{0x33})
    writeFixture(t, dir, "L7.2E BASIC.BIN", []byte{0x34})
    writeFixture(t, dir, "L7.2F BASIC.BIN", []byte{0x35})
    writeFixture(t, dir, "L7.2G BASIC.BIN", []byte{0x36})
    writeFixture(t, dir, "L7.2H BASIC.BIN", []byte{0x37})

    m := New()
    if err := m.LoadROMSet(dir, "7.2"); err != nil {
        t.Fatalf("LoadROMSet: unexpected error: %v", err)
    }
    if m.R8(0x0000) != 0x10 || m.R8(0x0c00) != 0x20 {
        t.Errorf("LoadROMSet: 7.2 monitor halves not loaded at documented offsets")
    }
    want := []struct {
        addr uint16
        val  uint8
    }{
        {0xe000, 0x30}, {0xe400, 0x31}, {0xe800, 0x32}, {0xec00, 0x33},
        {0xf000, 0x34}, {0xf400, 0x35}, {0xf800, 0x36}, {0xfc00, 0x37},
    }
    for _, w := range want {
        if got := m.R8(w.addr); got != w.val {
            t.Errorf("LoadROMSet: expected 0x%02X at 0x%04X, got 0x%02X", w.val, w.addr, got)
        }
    }
}

func writeFixture(t *testing.T, dir, name string, data []byte) {
    t.Helper()
    if err := ioutil.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
        t.Fatalf("writing fixture %s: %v", name, err)
    }
}
