// Command triton runs the Transam Triton emulator core against a
// terminal presenter: it loads a ROM set, wires the CPU, memory, and
// port block into a machine, and drives it one frame at a time until
// the user quits.
package main

import (
    "fmt"
    "os"
    "time"

    "github.com/gdamore/tcell"

    "github.com/triton-emu/triton/cpu/i8080"
    "github.com/triton-emu/triton/machine"
    "github.com/triton-emu/triton/mem/triton"
    triopia "github.com/triton-emu/triton/pia/triton"
    "github.com/triton-emu/triton/ui"
)

func main() {
    romSet := ""
    if len(os.Args) > 1 {
        romSet = os.Args[1]
    }
    if !triton.ValidROMSet(romSet) {
        fmt.Fprintln(os.Stderr, "Invalid CLI argument")
        os.Exit(1)
    }

    mem := triton.New()
    if err := mem.LoadROMSet("roms", romSet); err != nil {
        fmt.Fprintln(os.Stderr, "Unable to load ROM")
        os.Exit(1)
    }
    ui.Log(fmt.Sprintf("loaded ROM set %q", romSet))

    cpu := i8080.New()
    io := triopia.New(mem)
    mc := machine.New(cpu, mem, io)

    screen, err := tcell.NewScreen()
    if err != nil {
        fmt.Fprintln(os.Stderr, "Error opening screen:", err)
        os.Exit(1)
    }
    if err := screen.Init(); err != nil {
        fmt.Fprintln(os.Stderr, "Error opening screen:", err)
        os.Exit(1)
    }
    defer screen.Fini()

    if err := ui.StartAudio(ui.BeeperCallback(func() bool { return io.Oscillator })); err != nil {
        fmt.Fprintln(os.Stderr, "Couldn't start audio:", err)
    } else {
        defer ui.StopAudio()
    }

    dl := []ui.Draw{func() {
        ui.ScreenBox(screen, 1, 1, mem, io.VDUStartRow, io.CursorPos)
        ui.LEDBox(screen, 1, 19, io.LEDLit)
        ui.TapeBox(screen, 19, 19, io.TapeRelay, io.TapeStatus)
        ui.LogBox(screen, 1, 22, "Log")
    }}
    tui := ui.TextUI{
        Screen:      screen,
        Tick:        time.NewTicker(time.Second / time.Duration(mc.Framerate)),
        DisplayList: dl,
    }
    tui.Run()

    frameTick := time.NewTicker(time.Second / time.Duration(mc.Framerate))
    defer frameTick.Stop()
    go func() {
        for range frameTick.C {
            mc.RunFrame()
        }
    }()

    quit := make(chan struct{})
    go func() {
        for {
            evt := screen.PollEvent()
            switch e := evt.(type) {
            case *tcell.EventKey:
                if handleHotkey(mc, e) {
                    close(quit)
                    return
                }
                if sym, shift, ctrl, ok := ui.KeyEvent(e); ok {
                    io.KeyEvent(sym, shift, ctrl, true)
                }
            }
        }
    }()

    <-quit
}

// handleHotkey dispatches the front-panel hotkeys (§6) and reports
// whether F9 (quit) or Ctrl-C was pressed.
func handleHotkey(mc *machine.Machine, e *tcell.EventKey) (quit bool) {
    switch e.Key() {
    case tcell.KeyF1:
        mc.HandleHotkey(machine.HotkeyReset)
    case tcell.KeyF2:
        mc.HandleHotkey(machine.HotkeyRST1)
    case tcell.KeyF3:
        mc.HandleHotkey(machine.HotkeyRST2)
    case tcell.KeyF4:
        mc.HandleHotkey(machine.HotkeyPause)
    case tcell.KeyF9, tcell.KeyCtrlC:
        return true
    }
    return false
}
