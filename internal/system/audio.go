// internal/system/audio.go
package system

import (
	"encoding/binary"
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/clonkbot/neon-pinball-1a356e/internal/event"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind — тип звукового эффекта.
type SoundKind int

const (
	SoundBumper SoundKind = iota
	SoundFlipper
	SoundWall
	SoundLaunch
	SoundDrain
	SoundGameOver
)

// AudioSystem воспроизводит процедурно сгенерированные звуки по событиям
// столкновений. Чистая косметика: если звук не поднялся, игра живёт без него.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

func NewAudioSystem() (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return nil, err
	}
	return &AudioSystem{ctx: ctx, ready: ready}, nil
}

// OnEvent — подписка на все шумящие события.
func (a *AudioSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.BumperHit:
		a.play(SoundBumper)
	case event.FlipperHit:
		a.play(SoundFlipper)
	case event.WallHit, event.GutterHit:
		a.play(SoundWall)
	case event.BallLaunched:
		a.play(SoundLaunch)
	case event.BallDrained:
		a.play(SoundDrain)
	case event.GameOver:
		a.play(SoundGameOver)
	}
}

func (a *AudioSystem) play(kind SoundKind) {
	select {
	case <-a.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		player := a.ctx.NewPlayer(&pcmReader{data: samples})
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

func generateSound(kind SoundKind) []float32 {
	switch kind {
	case SoundBumper:
		return sweep(880, 1320, 0.09, 0.5)
	case SoundFlipper:
		return sweep(220, 180, 0.06, 0.6)
	case SoundWall:
		return sweep(330, 300, 0.04, 0.25)
	case SoundLaunch:
		return sweep(200, 900, 0.25, 0.5)
	case SoundDrain:
		return sweep(440, 110, 0.35, 0.5)
	case SoundGameOver:
		return sweep(330, 55, 0.8, 0.5)
	}
	return nil
}

// sweep генерирует стерео-синус с линейным свипом частоты f0→f1 и
// экспоненциальным затуханием.
func sweep(f0, f1, dur, gain float64) []float32 {
	n := int(dur * sampleRate)
	out := make([]float32, 0, n*channelCount)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		f := f0 + (f1-f0)*t
		phase += 2 * math.Pi * f / sampleRate
		env := math.Exp(-4 * t)
		v := float32(math.Sin(phase) * env * gain)
		out = append(out, v, v)
	}
	return out
}

// pcmReader отдаёт float32-сэмплы как little-endian байты.
type pcmReader struct {
	data []float32
	pos  int
}

func (r *pcmReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := 0
	for n+4 <= len(p) && r.pos < len(r.data) {
		binary.LittleEndian.PutUint32(p[n:], math.Float32bits(r.data[r.pos]))
		n += 4
		r.pos++
	}
	return n, nil
}
