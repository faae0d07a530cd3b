package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"pathboard/internal/board"
	"pathboard/internal/config"
	"pathboard/internal/viewer"
)

func main() {
	var in string
	var cfgPath string

	flag.StringVar(&in, "in", "-", "board file to read, or - for stdin")
	flag.StringVar(&cfgPath, "config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	var raw []byte
	if in == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(in)
	}
	if err != nil {
		log.Fatal(err)
	}

	b, err := board.Parse(string(raw))
	if err != nil {
		log.Fatal(err)
	}
	path, err := b.Solve()
	if err != nil {
		log.Fatal(err)
	}

	v := viewer.New(b, path, cfg.Viewer.TicksPerStep)
	w, h := v.Layout(0, 0)

	ebiten.SetWindowTitle("Pathboard")
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
