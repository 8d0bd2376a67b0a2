package audio

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/spectral-circles/internal/config"
)

// Player plays one track at a time on the speaker, looping it, and exposes
// the samples it plays through a Tap.
type Player struct {
	log *slog.Logger

	name     string
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *Tap

	initDone bool
}

func NewPlayer(log *slog.Logger) *Player {
	return &Player{log: log}
}

// Load decodes path and queues it on the speaker, paused. Any track already
// loaded is stopped and closed.
func (p *Player) Load(path string) error {
	streamer, format, err := Decode(path)
	if err != nil {
		return err
	}
	p.log.Info("loaded track", "path", path, "rate", int(format.SampleRate), "channels", format.NumChannels)

	t := NewTap(beep.Loop(-1, streamer), config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t, Paused: true}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if !p.initDone || p.format.SampleRate != format.SampleRate {
		if p.initDone {
			speaker.Clear()
		}
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			return err
		}
		p.initDone = true
	} else {
		speaker.Clear()
	}
	p.closeStreamer()

	speaker.Lock()
	p.name = filepath.Base(path)
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.tap = t
	speaker.Unlock()

	speaker.Play(ctrl)
	return nil
}

// Loaded reports whether a track is ready to play.
func (p *Player) Loaded() bool { return p.ctrl != nil }

// Name is the file name of the loaded track.
func (p *Player) Name() string { return p.name }

// Playing reports whether audio is currently playing.
func (p *Player) Playing() bool {
	if p.ctrl == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !p.ctrl.Paused
}

// Toggle pauses or resumes playback.
func (p *Player) Toggle() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	paused := p.ctrl.Paused
	speaker.Unlock()
	p.log.Debug("toggled playback", "paused", paused)
}

// Position returns the playback position within the track and its length.
func (p *Player) Position() (pos, total time.Duration) {
	if p.streamer == nil {
		return 0, 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.format.SampleRate.D(p.streamer.Position()), p.format.SampleRate.D(p.streamer.Len())
}

// Snapshot implements SampleSource. It leaves dst untouched when nothing is loaded.
func (p *Player) Snapshot(dst []float64) {
	if p.tap == nil {
		return
	}
	p.tap.Snapshot(dst)
}

// Close stops playback and releases the track.
func (p *Player) Close() error {
	if p.initDone {
		speaker.Clear()
	}
	p.ctrl = nil
	p.tap = nil
	return p.closeStreamer()
}

func (p *Player) closeStreamer() error {
	if p.streamer == nil {
		return nil
	}
	err := p.streamer.Close()
	p.streamer = nil
	return err
}
