// Package media plays alarm sounds and records custom alarm clips.
package media

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/chime/internal/models"
	"github.com/ayoisaiah/chime/internal/static"
)

// Handle refers to a sound that was started with Play.
type Handle interface {
	// Done is closed when playback finishes or the handle is released.
	Done() <-chan struct{}
}

// Player plays sounds referenced by name or file path.
type Player interface {
	Play(ref string) (Handle, error)
	Release(h Handle) error
}

const (
	sampleRate beep.SampleRate = 44100
	// resampleQuality trades CPU for fidelity when a file is not 44.1kHz.
	resampleQuality = 4
)

// BeepPlayer plays sounds through the system speaker. Built-in sound names
// are read from the embedded assets and anything else is treated as a path.
type BeepPlayer struct {
	initErr  error
	initOnce sync.Once
}

// NewBeepPlayer returns a speaker backed Player. The audio device is opened
// lazily on the first Play.
func NewBeepPlayer() *BeepPlayer {
	return &BeepPlayer{}
}

type beepHandle struct {
	stream beep.StreamSeekCloser
	ctrl   *beep.Ctrl
	done   chan struct{}
	once   sync.Once
}

func (h *beepHandle) Done() <-chan struct{} {
	return h.done
}

func (h *beepHandle) finish() {
	h.once.Do(func() {
		close(h.done)
	})
}

type nopCloser struct {
	*bytes.Reader
}

func (nopCloser) Close() error {
	return nil
}

func (p *BeepPlayer) initSpeaker() error {
	p.initOnce.Do(func() {
		p.initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})

	return p.initErr
}

// open reads the asset behind ref. Built-in sounds are matched
// case-insensitively.
func open(ref string) (io.ReadCloser, string, error) {
	if models.IsKnownSound(ref) {
		b, err := static.Sound(ref)
		if err != nil {
			return nil, "", err
		}

		return nopCloser{bytes.NewReader(b)}, ".wav", nil
	}

	b, err := os.ReadFile(ref)
	if err != nil {
		return nil, "", err
	}

	return nopCloser{bytes.NewReader(b)}, strings.ToLower(filepath.Ext(ref)), nil
}

// decode returns a stream for the sound referenced by ref.
func decode(ref string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	r, ext, err := open(ref)
	if err != nil {
		return nil, format, ErrMediaUnavailable.Wrap(err)
	}

	switch ext {
	case ".ogg":
		stream, format, err = vorbis.Decode(r)
	case ".mp3":
		stream, format, err = mp3.Decode(r)
	case ".flac":
		stream, format, err = flac.Decode(r)
	case ".wav":
		stream, format, err = wav.Decode(r)
	default:
		return nil, format, ErrMediaUnavailable.Wrap(errUnsupportedFormat.Fmt(ext))
	}

	if err != nil {
		return nil, format, ErrMediaUnavailable.Wrap(err)
	}

	return stream, format, nil
}

// Play starts playing ref and returns immediately.
func (p *BeepPlayer) Play(ref string) (Handle, error) {
	stream, format, err := decode(ref)
	if err != nil {
		return nil, err
	}

	err = p.initSpeaker()
	if err != nil {
		_ = stream.Close()
		return nil, ErrMediaUnavailable.Wrap(err)
	}

	var s beep.Streamer = stream
	if format.SampleRate != sampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, sampleRate, stream)
	}

	h := &beepHandle{
		stream: stream,
		ctrl:   &beep.Ctrl{Streamer: s},
		done:   make(chan struct{}),
	}

	speaker.Play(beep.Seq(h.ctrl, beep.Callback(h.finish)))

	return h, nil
}

// Release stops the sound if it is still playing and frees its decoder.
// Releasing a handle more than once is harmless.
func (p *BeepPlayer) Release(h Handle) error {
	bh, ok := h.(*beepHandle)
	if !ok || bh == nil {
		return nil
	}

	speaker.Lock()
	bh.ctrl.Streamer = nil
	speaker.Unlock()

	bh.finish()

	return bh.stream.Close()
}
