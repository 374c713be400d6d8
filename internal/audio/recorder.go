// Package audio records microphone clips for the assistant chat.
package audio

import (
	"errors"
	"sync"

	"farmguard/internal/models"
)

// Device is a raw PCM capture source. Start delivers chunks until Stop.
type Device interface {
	Start(onChunk func([]byte)) error
	Stop() error
}

// Recorder buffers PCM chunks between Start and Stop. It is either idle or
// recording; a failed device start leaves it idle.
type Recorder struct {
	device Device

	mu        sync.Mutex
	recording bool
	chunks    []byte
}

func NewRecorder(device Device) *Recorder {
	return &Recorder{device: device}
}

// Recording reports whether a capture is in progress.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// Start begins capturing. With no device available, or when the device
// refuses to start, the recorder stays idle and the error is returned for
// the UI to surface.
func (r *Recorder) Start() error {
	r.mu.Lock()
	if r.device == nil {
		r.mu.Unlock()
		return errors.New("audio: no capture device available")
	}
	if r.recording {
		r.mu.Unlock()
		return errors.New("audio: already recording")
	}
	r.chunks = nil
	r.recording = true
	r.mu.Unlock()

	// The device callback takes the lock, so it must not be held here.
	if err := r.device.Start(r.append); err != nil {
		r.mu.Lock()
		r.recording = false
		r.mu.Unlock()
		return err
	}
	return nil
}

// Stop ends the capture and returns the clip as a WAV attachment.
func (r *Recorder) Stop() (*models.Attachment, error) {
	r.mu.Lock()
	if !r.recording {
		r.mu.Unlock()
		return nil, errors.New("audio: not recording")
	}
	r.recording = false
	r.mu.Unlock()

	if err := r.device.Stop(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	clip := &models.Attachment{
		MIMEType: "audio/wav",
		Data:     wrapWAV(r.chunks),
	}
	r.chunks = nil
	r.mu.Unlock()
	return clip, nil
}

// append runs on the device's capture goroutine.
func (r *Recorder) append(chunk []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recording {
		return
	}
	r.chunks = append(r.chunks, chunk...)
}
