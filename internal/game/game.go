package game

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/spectral-circles/internal/audio"
	"github.com/iburimskiy/spectral-circles/internal/pattern"
)

// Player is the audio engine the game reads from.
type Player interface {
	audio.SampleSource
	Load(path string) error
	Loaded() bool
	Name() string
	Playing() bool
	Toggle()
	Position() (pos, total time.Duration)
}

type Options struct {
	Width         int
	Height        int
	ScreenshotDir string
}

// Game is the ebiten.Game driving the pattern grid.
type Game struct {
	log      *slog.Logger
	player   Player
	analyzer *audio.Analyzer

	// viz
	instances []*pattern.Instance
	spectrum  []float64
	playing   bool

	// window
	width  int
	height int
	button *button

	// input edge detection
	prevKey map[ebiten.Key]bool

	screenshotDir string
	capture       bool
	lastErr       error
}

func New(log *slog.Logger, player Player, analyzer *audio.Analyzer, instances []*pattern.Instance, opts Options) *Game {
	g := &Game{
		log:           log,
		player:        player,
		analyzer:      analyzer,
		instances:     instances,
		width:         opts.Width,
		height:        opts.Height,
		button:        newButton("Play/Pause"),
		prevKey:       map[ebiten.Key]bool{},
		screenshotDir: opts.ScreenshotDir,
	}
	g.button.place(g.width, g.height)
	return g
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	clicked := g.button.update(mouseX, mouseY,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))
	if clicked || justPressed(ebiten.KeySpace) {
		g.player.Toggle()
	}
	if justPressed(ebiten.KeyO) {
		g.openFile()
	}
	if justPressed(ebiten.KeyS) {
		g.capture = true
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.step()
	return nil
}

// step reads the spectrum and updates every pattern for this tick.
func (g *Game) step() {
	g.playing = g.player.Playing()
	g.spectrum = g.analyzer.Analyze(g.player)
	pattern.Step(pattern.Frame{
		Instances: g.instances,
		Spectrum:  g.spectrum,
		Playing:   g.playing,
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	pattern.DrawAll(screenSurface{dst: screen}, g.instances)
	g.button.draw(screen)
	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)

	if g.capture {
		g.capture = false
		g.saveScreenshot(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.button.place(g.width, g.height)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) status() string {
	status := "Press O to open an audio file"
	if g.player.Loaded() {
		pos, total := g.player.Position()
		state := "Paused"
		if g.playing {
			state = "Playing"
		}
		status = fmt.Sprintf("%s %s %s / %s - Space: play/pause, O: open, S: screenshot, Esc: quit",
			state, g.player.Name(), formatDuration(pos), formatDuration(total))
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) openFile() {
	path, err := SelectFile()
	if err != nil {
		g.lastErr = err
		return
	}
	if path == "" {
		return
	}
	if err := g.player.Load(path); err != nil {
		g.log.Error("load track", "path", path, "err", err)
		g.lastErr = err
		return
	}
	g.lastErr = nil
}

func (g *Game) saveScreenshot(screen *ebiten.Image) {
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)

	name := filepath.Join(g.screenshotDir, "spectral-circles-"+time.Now().Format("20060102-150405")+".png")
	go func() {
		if err := os.MkdirAll(g.screenshotDir, 0o755); err != nil {
			g.log.Error("create screenshot directory", "dir", g.screenshotDir, "err", err)
			return
		}
		if err := imaging.Save(img, name); err != nil {
			g.log.Error("save screenshot", "path", name, "err", err)
			return
		}
		g.log.Info("saved screenshot", "path", name)
	}()
}
