// Command blendosc renders, or plays, a note from a BlendOscillator reading
// two mip-mapped wavetables.
//
//	blendosc -wave1 saw303 -wave2 square303 -blend 0 -blend-to 1 -freq 55 -freq-to 880 -o sweep.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/gordonklaus/wavesynth"
	"github.com/gordonklaus/wavesynth/play"
	"github.com/gordonklaus/wavesynth/wavio"
)

var (
	wave1      = flag.String("wave1", "saw303", "waveform of the first table")
	wave2      = flag.String("wave2", "square303", "waveform of the second table")
	cycleFile  = flag.String("import", "", "WAV file holding one cycle to use as the first table")
	freq       = flag.Float64("freq", 110, "frequency in Hz")
	freqTo     = flag.Float64("freq-to", 0, "if set, glide to this frequency over the note")
	blend      = flag.Float64("blend", 0, "blend factor, 0 (first table) to 1 (second table)")
	blendTo    = flag.Float64("blend-to", -1, "if not negative, sweep the blend to this value over the note")
	pulseWidth = flag.Float64("pw", 50, "pulse width in percent")
	duration   = flag.Float64("dur", 2, "note length in seconds")
	sampleRate = flag.Int("sr", 44100, "sample rate in Hz")
	switchAt   = flag.Float64("switch-at", 0, "if set, change the second table to -switch-to after this many seconds (with -play, on a timer rather than the audio callback)")
	switchTo   = flag.String("switch-to", "square", "waveform for -switch-at")
	mipMargin  = flag.Int("mip-margin", wavesynth.DefaultBlendConfig.MipMargin, "extra mip levels of band-limiting")
	gain2      = flag.Float64("gain2", wavesynth.DefaultBlendConfig.Table2Gain, "gain of the second table")
	out        = flag.String("o", "", "write the note to this WAV file")
	playNote   = flag.Bool("play", false, "play the note on the default audio output")
	profileDir = flag.String("profile", "", "write a CPU profile of the render to this directory")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)
	if *out == "" && !*playNote {
		fmt.Fprintln(os.Stderr, "nothing to do: give -o or -play")
		flag.Usage()
		os.Exit(2)
	}
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	t1, t2 := wavesynth.NewWaveTable(), wavesynth.NewWaveTable()
	if err := setWaveform(t1, *wave1); err != nil {
		return err
	}
	if err := setWaveform(t2, *wave2); err != nil {
		return err
	}
	if *cycleFile != "" {
		x, _, err := wavio.Read(*cycleFile)
		if err != nil {
			return err
		}
		if err := t1.ImportWaveform(x); err != nil {
			return err
		}
	}
	log.Printf("tables: %s (crest %.2f), %s (crest %.2f)", t1.Waveform(), t1.CrestFactor(), t2.Waveform(), t2.CrestFactor())

	osc := wavesynth.NewBlendOscillator()
	osc.Config = wavesynth.BlendConfig{MipMargin: *mipMargin, Table2Gain: *gain2}
	osc.BindTables(t1, t2)
	osc.SetPulseWidth(*pulseWidth)
	osc.SetFrequency(*freq)
	osc.SetBlendFactor(*blend)

	p := &wavesynth.Patch{
		Osc:      osc,
		Env:      wavesynth.NewAttackReleaseEnv(.005, .05),
		Duration: *duration,
	}
	if *freqTo > 0 {
		p.Freq = wavesynth.NewControl(
			wavesynth.ControlPoint{Time: 0, Value: *freq},
			wavesynth.ControlPoint{Time: *duration, Value: *freqTo},
		)
	}
	if *blendTo >= 0 {
		p.Blend = wavesynth.NewControl(
			wavesynth.ControlPoint{Time: 0, Value: *blend},
			wavesynth.ControlPoint{Time: *duration, Value: *blendTo},
		)
	}
	params := wavesynth.Params{SampleRate: float64(*sampleRate)}
	wavesynth.Init(p, params)

	if *switchAt > 0 {
		w, err := wavesynth.ParseWaveform(*switchTo)
		if err != nil {
			return err
		}
		scheduleSwitch(p, *switchAt, *playNote, func() { t2.SetWaveform(w) })
	}

	if *playNote {
		return play.Play(p, params)
	}

	if *profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir)).Stop()
	}
	x := render(p)
	meter := wavesynth.NewAmpMeter(*duration)
	meter.InitAudio(params)
	for _, x := range x {
		meter.Add(x)
	}
	log.Printf("rendered %d samples, peak %.3f, rms %.3f", len(x), meter.Peak(), meter.RMS())
	wavesynth.SaturateAll(x)
	return wavio.Write(*out, x, *sampleRate)
}

// scheduleSwitch runs f t seconds into the note.  Offline it runs between
// two samples of the render.  In real time it runs on a timer goroutine, as
// regenerating a table on the audio callback would stall it.
func scheduleSwitch(p *wavesynth.Patch, t float64, realtime bool, f func()) {
	if realtime {
		time.AfterFunc(time.Duration(t*float64(time.Second)), f)
		return
	}
	p.Events.Delay(t, f)
}

func setWaveform(t *wavesynth.WaveTable, name string) error {
	w, err := wavesynth.ParseWaveform(name)
	if err != nil {
		return err
	}
	t.SetWaveform(w)
	return nil
}

// render runs p until it is done, in blocks.
func render(p *wavesynth.Patch) []float64 {
	const blockSize = 256
	var x []float64
	block := make([]float64, blockSize)
	for !p.Done() {
		p.Render(block)
		x = append(x, block...)
	}
	return x
}
