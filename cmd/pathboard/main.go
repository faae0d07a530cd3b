package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"

	"pathboard/internal/board"
	"pathboard/internal/config"
	"pathboard/internal/nav"
	"pathboard/internal/render"
)

func main() {
	var in string
	var out string
	var text bool
	var copyText bool
	var label bool
	var cfgPath string

	flag.StringVar(&in, "in", "-", "board file to read, or - for stdin")
	flag.StringVar(&out, "out", "path.gif", "animated GIF to write, empty to skip")
	flag.BoolVar(&text, "text", false, "print the solved board as text")
	flag.BoolVar(&copyText, "copy", false, "copy the solved board text to the clipboard")
	flag.BoolVar(&label, "label", false, "draw a step counter on each frame")
	flag.StringVar(&cfgPath, "config", "", "optional YAML config file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Error("loading config", "error", err)
		os.Exit(1)
	}

	raw, err := readBoard(in)
	if err != nil {
		logger.Error("reading board", "error", err)
		os.Exit(1)
	}

	b, err := board.Parse(string(raw))
	if err != nil {
		logger.Error("parsing board", "error", err)
		os.Exit(1)
	}
	path, err := b.Solve()
	if err != nil {
		logger.Error("search failed", "error", err)
		os.Exit(1)
	}
	logger.Info("solved",
		"board", fmt.Sprintf("%dx%d", b.Grid.Width, b.Grid.Height),
		"steps", len(path),
		"cost", nav.PathCost(path),
		"reachedEnd", path[len(path)-1] == b.End,
	)

	if out != "" {
		opts := render.Options{
			CellSize:   cfg.Render.CellSize,
			FrameDelay: cfg.Render.FrameDelayMs,
			StepLabel:  cfg.Render.StepLabel || label,
		}
		if err := writeGIF(out, b, path, opts); err != nil {
			logger.Error("writing gif", "error", err)
			os.Exit(1)
		}
		logger.Info("wrote animation", "file", out, "frames", len(path))
	}

	if text || copyText {
		solution := board.FormatSolution(b, path)
		if text {
			fmt.Print(solution)
		}
		if copyText {
			if err := clipboard.WriteAll(solution); err != nil {
				logger.Error("copying to clipboard", "error", err)
				os.Exit(1)
			}
			logger.Info("copied solution to clipboard")
		}
	}
}

func readBoard(in string) ([]byte, error) {
	if in == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(in)
}

func writeGIF(path string, b *board.Board, route []nav.Coord, opts render.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.EncodeGIF(f, b, route, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
