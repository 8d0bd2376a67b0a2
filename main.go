package main

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/spectral-circles/internal/audio"
	"github.com/iburimskiy/spectral-circles/internal/config"
	"github.com/iburimskiy/spectral-circles/internal/game"
	"github.com/iburimskiy/spectral-circles/internal/pattern"
)

type options struct {
	width       int
	height      int
	seed        uint64
	screenshots string
	debug       bool
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "spectral-circles [audio-file]",
		Short: "Audio-reactive grid of concentric circle patterns",
		Long: `spectral-circles tiles the window with concentric circle patterns whose
inner rings and colors follow the frequency spectrum of the playing track.
Without an audio file argument a file dialog is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(opts, path)
		},
	}

	rootCmd.Flags().IntVarP(&opts.width, "width", "W", config.WindowWidth, "Initial window width")
	rootCmd.Flags().IntVarP(&opts.height, "height", "H", config.WindowHeight, "Initial window height")
	rootCmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for pattern colors (0 picks a random seed)")
	rootCmd.Flags().StringVar(&opts.screenshots, "screenshots", ".", "Directory screenshots are saved to")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

func newRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	var key [32]byte
	_, _ = crand.Read(key[:])
	return rand.New(rand.NewChaCha8(key))
}

func run(opts options, path string) error {
	log := newLogger(opts.debug)

	instances := pattern.Setup(pattern.DefaultGrid(), float64(opts.width), float64(opts.height), newRand(opts.seed))
	bins := pattern.BinCount(len(instances))
	if len(instances) > bins {
		log.Warn("more patterns than spectrum bins, extra patterns get no energy", "patterns", len(instances), "bins", bins)
	}
	log.Debug("laid out patterns", "patterns", len(instances), "bins", bins, "width", opts.width, "height", opts.height)

	player := audio.NewPlayer(log)
	defer player.Close()

	if path == "" {
		var err error
		if path, err = game.SelectFile(); err != nil {
			return fmt.Errorf("select file: %w", err)
		}
	}
	if path != "" {
		if err := player.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}

	g := game.New(log, player, audio.NewAnalyzer(bins, config.FFTSmoothing), instances, game.Options{
		Width:         opts.width,
		Height:        opts.height,
		ScreenshotDir: opts.screenshots,
	})

	ebiten.SetWindowSize(opts.width, opts.height)
	ebiten.SetWindowTitle("Spectral Circles - Space: Play/Pause, O: Open, S: Screenshot, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
