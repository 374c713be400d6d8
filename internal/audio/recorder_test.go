package audio

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDevice struct {
	startErr error
	stopErr  error
	onChunk  func([]byte)
	started  bool
	stopped  bool
}

func (d *fakeDevice) Start(onChunk func([]byte)) error {
	if d.startErr != nil {
		return d.startErr
	}
	d.onChunk = onChunk
	d.started = true
	return nil
}

func (d *fakeDevice) Stop() error {
	d.stopped = true
	return d.stopErr
}

func TestRecordStopProducesWAV(t *testing.T) {
	dev := &fakeDevice{}
	r := NewRecorder(dev)

	require.NoError(t, r.Start())
	assert.True(t, r.Recording())

	dev.onChunk([]byte{0x01, 0x02})
	dev.onChunk([]byte{0x03, 0x04})

	clip, err := r.Stop()
	require.NoError(t, err)
	assert.False(t, r.Recording())
	assert.True(t, dev.stopped)

	assert.Equal(t, "audio/wav", clip.MIMEType)
	require.Greater(t, len(clip.Data), 44)
	assert.Equal(t, "RIFF", string(clip.Data[:4]))
	assert.Equal(t, "WAVE", string(clip.Data[8:12]))
	assert.Equal(t, uint32(16000), binary.LittleEndian.Uint32(clip.Data[24:28]))
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, clip.Data[44:])
}

func TestDeniedStartStaysIdle(t *testing.T) {
	dev := &fakeDevice{startErr: errors.New("permission denied")}
	r := NewRecorder(dev)

	err := r.Start()
	assert.Error(t, err)
	assert.False(t, r.Recording())

	_, err = r.Stop()
	assert.Error(t, err, "stop without a live capture must fail")
}

func TestNilDeviceGuard(t *testing.T) {
	r := NewRecorder(nil)
	assert.Error(t, r.Start())
	assert.False(t, r.Recording())
}

func TestDoubleStartRefused(t *testing.T) {
	dev := &fakeDevice{}
	r := NewRecorder(dev)

	require.NoError(t, r.Start())
	assert.Error(t, r.Start())
	assert.True(t, r.Recording())
}

func TestChunksAfterStopAreDropped(t *testing.T) {
	dev := &fakeDevice{}
	r := NewRecorder(dev)

	require.NoError(t, r.Start())
	dev.onChunk([]byte{0x01, 0x02})
	clip, err := r.Stop()
	require.NoError(t, err)

	dev.onChunk([]byte{0x05, 0x06}) // late delivery from the capture thread
	assert.Equal(t, []byte{0x01, 0x02}, clip.Data[44:])

	require.NoError(t, r.Start())
	clip2, err := r.Stop()
	require.NoError(t, err)
	assert.Len(t, clip2.Data, 44, "new capture starts from an empty buffer")
}
