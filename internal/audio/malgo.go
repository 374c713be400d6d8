package audio

import (
	"github.com/gen2brain/malgo"
)

// Mic is the malgo-backed capture device.
type Mic struct {
	ctx    *malgo.AllocatedContext
	device *malgo.Device
}

// NewMic initializes the audio backend. Fails on systems without a usable
// capture stack; the caller degrades to text-and-image-only chat.
func NewMic() (*Mic, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, err
	}
	return &Mic{ctx: ctx}, nil
}

func (m *Mic) Start(onChunk func([]byte)) error {
	cfg := malgo.DefaultDeviceConfig(malgo.Capture)
	cfg.Capture.Format = malgo.FormatS16
	cfg.Capture.Channels = channels
	cfg.SampleRate = sampleRate

	callbacks := malgo.DeviceCallbacks{
		Data: func(_, input []byte, _ uint32) {
			buf := make([]byte, len(input))
			copy(buf, input)
			onChunk(buf)
		},
	}
	device, err := malgo.InitDevice(m.ctx.Context, cfg, callbacks)
	if err != nil {
		return err
	}
	if err := device.Start(); err != nil {
		device.Uninit()
		return err
	}
	m.device = device
	return nil
}

func (m *Mic) Stop() error {
	if m.device == nil {
		return nil
	}
	err := m.device.Stop()
	m.device.Uninit()
	m.device = nil
	return err
}

// Close releases the audio backend.
func (m *Mic) Close() {
	if m.ctx != nil {
		_ = m.ctx.Uninit()
		m.ctx.Free()
		m.ctx = nil
	}
}
