package ui

import (
    "fmt"
    "log"
    "math"

    "github.com/gordonklaus/portaudio"
)

const beeperHz = 1000

// Audio streams the Triton's single-tone beeper (C10): a continuous
// 1 kHz sine, gated on or off by whatever the caller's sample callback
// reads from the oscillator flag, mirroring the teacher's own
// streaming-callback audio model.
type Audio struct {
    stream *portaudio.Stream
    fs     float64
}

var a *Audio

func NewAudio() *Audio {
    return &Audio{}
}

// BeeperCallback returns a portaudio sample callback that emits a
// continuous 1 kHz tone while on() is true and silence otherwise.
func BeeperCallback(on func() bool) func([]float32) {
    var ts float64
    return func(out []float32) {
        for i := 0; i < len(out); i += 2 {
            samp := float32(0)
            if on() {
                samp = float32(math.Sin(2 * math.Pi * beeperHz * ts))
            }
            out[i] = samp
            out[i+1] = samp
            ts += 1.0 / a.fs
        }
    }
}

func StartAudio(cb func([]float32)) error {
    portaudio.Initialize()

    log.Println(portaudio.VersionText())
    if ha, err := portaudio.HostApis(); err != nil {
        log.Fatal(err)
    } else {
        log.Println("Host APIs:")
        for _, hostapi := range ha {
            log.Println("   ", hostapi)
        }
    }

    do, _ := portaudio.DefaultOutputDevice()
    fmt.Println("Using output device:")
    fmt.Println("    OUT: ", do)

    a = NewAudio()

    host, err := portaudio.DefaultHostApi()
    if err != nil {
        log.Fatal(err)
    }

    parameters := portaudio.HighLatencyParameters(host.DefaultInputDevice, host.DefaultOutputDevice)
    a.fs = parameters.SampleRate

    stream, err := portaudio.OpenStream(parameters,
        func(in, out []float32, _ portaudio.StreamCallbackTimeInfo, _ portaudio.StreamCallbackFlags) {
            cb(out)
        })
    if err != nil {
        return err
    }
    a.stream = stream

    return stream.Start()
}

func StopAudio() {
    a.stream.Close()
    portaudio.Terminate()
}
