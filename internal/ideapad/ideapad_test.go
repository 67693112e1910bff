package ideapad_test

import (
	"bytes"
	"testing"

	"codeberg.org/mutker/ideapadctl/internal/attribute"
	"codeberg.org/mutker/ideapadctl/internal/device"
	"codeberg.org/mutker/ideapadctl/internal/errors"
	"codeberg.org/mutker/ideapadctl/internal/ideapad"
	"codeberg.org/mutker/ideapadctl/internal/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const devDir = "/sys/bus/platform/devices/VPC2004:00"

func newFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(devDir, 0o755))
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, devDir+"/"+name, []byte(content), 0o644))
	}
	return fs
}

func newReader(fs afero.Fs) *ideapad.Reader {
	return ideapad.NewReader(fs, device.NewLocator(fs, device.Pattern))
}

func TestReadTrimsNewline(t *testing.T) {
	r := newReader(newFs(t, map[string]string{"camera_power": "1\n"}))

	b, err := r.ReadBool(attribute.CameraPower)
	require.NoError(t, err)
	assert.True(t, b)
}

func TestReadRejectsWordValue(t *testing.T) {
	r := newReader(newFs(t, map[string]string{"fn_lock": " true"}))

	_, err := r.ReadBool(attribute.FnLock)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, attribute.ErrInvalidValue))
}

func TestReadFanMode(t *testing.T) {
	r := newReader(newFs(t, map[string]string{"fan_mode": "2\n"}))

	n, err := r.ReadUint8(attribute.FanMode)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), n)

	_, err = r.ReadBool(attribute.FanMode)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidArgument))
}

func TestReadMissingAttribute(t *testing.T) {
	r := newReader(newFs(t, nil))

	_, err := r.Read(attribute.UsbCharging)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, attribute.ErrUnreadable))
}

func TestNoDeviceEveryParameterUnknown(t *testing.T) {
	fs := afero.NewMemMapFs()
	r := newReader(fs)

	for _, p := range attribute.All() {
		_, err := r.Read(p)
		assert.True(t, errors.HasCode(err, device.ErrNotFound), p.String())
	}

	var buf bytes.Buffer
	c := ideapad.NewClient(r, &recordingWriter{}, logger.New(&buf))

	_, ok := c.GetCameraPower()
	assert.False(t, ok)
	_, ok = c.GetConservationMode()
	assert.False(t, ok)
	_, ok = c.GetFanMode()
	assert.False(t, ok)
	_, ok = c.GetFnLock()
	assert.False(t, ok)
	_, ok = c.GetUsbCharging()
	assert.False(t, ok)

	for _, reading := range c.Snapshot() {
		assert.False(t, reading.Known())
		assert.True(t, errors.HasCode(reading.Err, device.ErrNotFound))
	}
	assert.Contains(t, buf.String(), "value unknown")
}

func TestSnapshot(t *testing.T) {
	r := newReader(newFs(t, map[string]string{
		"camera_power":      "1\n",
		"conservation_mode": "0\n",
		"fan_mode":          "4\n",
		"fn_lock":           "garbage\n",
	}))

	readings := r.Snapshot()
	require.Len(t, readings, 5)

	want := map[attribute.Parameter]attribute.Value{
		attribute.CameraPower:      attribute.Bool(true),
		attribute.ConservationMode: attribute.Bool(false),
		attribute.FanMode:          attribute.Uint8(4),
	}
	for _, reading := range readings {
		if v, ok := want[reading.Parameter]; ok {
			require.True(t, reading.Known(), reading.Parameter.String())
			assert.Equal(t, v, reading.Value)
			continue
		}
		assert.False(t, reading.Known(), reading.Parameter.String())
	}
	assert.True(t, errors.HasCode(readings[3].Err, attribute.ErrInvalidValue))
	assert.True(t, errors.HasCode(readings[4].Err, attribute.ErrUnreadable))
}

func TestClientGetters(t *testing.T) {
	r := newReader(newFs(t, map[string]string{
		"camera_power":      "0",
		"conservation_mode": "1",
		"fan_mode":          "3",
		"fn_lock":           "1",
		"usb_charging":      "0",
	}))
	c := ideapad.NewClient(r, &recordingWriter{}, logger.New(&bytes.Buffer{}))

	v, ok := c.GetCameraPower()
	assert.True(t, ok)
	assert.False(t, v)

	v, ok = c.GetConservationMode()
	assert.True(t, ok)
	assert.True(t, v)

	n, ok := c.GetFanMode()
	assert.True(t, ok)
	assert.Equal(t, uint8(3), n)

	v, ok = c.GetFnLock()
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = c.GetUsbCharging()
	assert.True(t, ok)
	assert.False(t, v)
}
