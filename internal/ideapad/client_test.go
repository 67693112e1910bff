package ideapad_test

import (
	"bytes"
	"testing"

	"codeberg.org/mutker/ideapadctl/internal/attribute"
	"codeberg.org/mutker/ideapadctl/internal/errors"
	"codeberg.org/mutker/ideapadctl/internal/escalate"
	"codeberg.org/mutker/ideapadctl/internal/ideapad"
	"codeberg.org/mutker/ideapadctl/internal/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type write struct {
	param attribute.Parameter
	value attribute.Value
}

type recordingWriter struct {
	writes []write
	err    error
}

func (w *recordingWriter) Write(p attribute.Parameter, v attribute.Value) error {
	w.writes = append(w.writes, write{p, v})
	return w.err
}

func TestSettersRouteToOwnParameter(t *testing.T) {
	w := &recordingWriter{}
	c := ideapad.NewClient(newReader(afero.NewMemMapFs()), w, logger.New(&bytes.Buffer{}))

	require.NoError(t, c.SetCameraPower(true))
	require.NoError(t, c.SetConservationMode(false))
	require.NoError(t, c.SetFanMode(2))
	require.NoError(t, c.SetFnLock(true))
	require.NoError(t, c.SetUsbCharging(false))

	assert.Equal(t, []write{
		{attribute.CameraPower, attribute.Bool(true)},
		{attribute.ConservationMode, attribute.Bool(false)},
		{attribute.FanMode, attribute.Uint8(2)},
		{attribute.FnLock, attribute.Bool(true)},
		{attribute.UsbCharging, attribute.Bool(false)},
	}, w.writes)
}

func TestSetReturnsWriterError(t *testing.T) {
	var buf bytes.Buffer
	w := &recordingWriter{err: errors.New().WithData(escalate.ErrEscalationFailed, 126)}
	c := ideapad.NewClient(newReader(afero.NewMemMapFs()), w, logger.New(&buf))

	err := c.Set(attribute.FnLock, attribute.Bool(false))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, escalate.ErrEscalationFailed))
	assert.Contains(t, buf.String(), "write failed")
	assert.Contains(t, buf.String(), `"parameter":"fn_lock"`)
}
