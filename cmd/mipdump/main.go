// Command mipdump writes every mip level of the given waveforms to WAV
// files, one cycle repeated to fill a second, for listening to and
// inspecting the band-limiting.
//
//	mipdump -dir out saw square303 peak
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/gordonklaus/wavesynth"
	"github.com/gordonklaus/wavesynth/wavio"
)

var (
	dir        = flag.String("dir", "mip", "output directory")
	sampleRate = flag.Int("sr", 44100, "sample rate of the written files")
	symmetry   = flag.Float64("symmetry", .5, "symmetry of the prototype")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	names := flag.Args()
	if len(names) == 0 {
		for _, w := range wavesynth.Waveforms() {
			names = append(names, w.String())
		}
	}
	if err := os.MkdirAll(*dir, os.ModePerm); err != nil {
		log.Fatal(err)
	}

	g, ctx := errgroup.WithContext(context.Background())
	for _, name := range names {
		w, err := wavesynth.ParseWaveform(name)
		if err != nil {
			log.Fatal(err)
		}
		g.Go(func() error { return dump(ctx, w) })
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d waveforms to %s", len(names), *dir)
}

func dump(ctx context.Context, w wavesynth.Waveform) error {
	t := wavesynth.NewWaveTable()
	t.SetSymmetry(*symmetry)
	t.SetWaveform(w)
	for k := 0; k < t.NumLevels(); k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		cycle := t.Level(k)
		x := make([]float64, 0, *sampleRate)
		for len(x)+len(cycle) <= *sampleRate {
			x = append(x, cycle...)
		}
		path := filepath.Join(*dir, fmt.Sprintf("%s_%02d.wav", w, k))
		if err := wavio.Write(path, x, *sampleRate); err != nil {
			return err
		}
	}
	log.Printf("%s: %d levels, crest factor %.2f", w, t.NumLevels(), t.CrestFactor())
	return nil
}
