package status_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"codeberg.org/mutker/ideapadctl/internal/attribute"
	"codeberg.org/mutker/ideapadctl/internal/device"
	"codeberg.org/mutker/ideapadctl/internal/errors"
	"codeberg.org/mutker/ideapadctl/internal/ideapad"
	"codeberg.org/mutker/ideapadctl/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readings() []ideapad.Reading {
	notFound := errors.New().New(device.ErrNotFound)
	return []ideapad.Reading{
		{Parameter: attribute.CameraPower, Value: attribute.Bool(true)},
		{Parameter: attribute.ConservationMode, Value: attribute.Bool(false)},
		{Parameter: attribute.FanMode, Value: attribute.Uint8(2)},
		{Parameter: attribute.FnLock, Err: notFound},
		{Parameter: attribute.UsbCharging, Err: notFound},
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "on", status.FormatValue(attribute.Bool(true)))
	assert.Equal(t, "off", status.FormatValue(attribute.Bool(false)))
	assert.Equal(t, "4", status.FormatValue(attribute.Uint8(4)))
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	status.RenderText(&buf, readings())

	out := buf.String()
	for _, want := range []string{"PARAMETER", "Camera Power", "Fan Mode", "USB Charging", "on", "off", "2", "unknown"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, status.RenderJSON(&buf, readings()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, true, got["camera_power"])
	assert.Equal(t, false, got["conservation_mode"])
	assert.InDelta(t, 2, got["fan_mode"], 0)
	assert.Contains(t, got, "fn_lock")
	assert.Nil(t, got["fn_lock"])
	assert.Nil(t, got["usb_charging"])
}

func TestRenderParams(t *testing.T) {
	var buf bytes.Buffer
	status.RenderParams(&buf)

	out := buf.String()
	assert.Contains(t, out, "fan_mode")
	assert.Contains(t, out, "0-4")
	assert.Contains(t, out, "Always on USB charging")
}
