package errors_test

import (
	"fmt"
	"io/fs"
	"testing"

	"codeberg.org/mutker/ideapadctl/internal/errors"
	"github.com/stretchr/testify/assert"
)

const (
	errOuter  = errors.ErrorCode("test_outer")
	errInner  = errors.ErrorCode("test_inner")
	errExited = errors.ErrorCode("test_exited")
)

func init() {
	errors.RegisterMessages(map[errors.ErrorCode]string{
		errOuter:  "Failed to read attribute",
		errInner:  "Unknown parameter",
		errExited: "Helper exited",
	})
}

func TestErrorMessages(t *testing.T) {
	f := errors.New()

	assert.Equal(t, "Unknown parameter", f.New(errInner).Error())
	assert.Equal(t, "Unknown parameter: bogus", f.WithData(errInner, "bogus").Error())
	assert.Equal(t, "custom", f.WithMessage(errors.ErrInvalidArgument, "custom").Error())
	assert.Equal(t, "Failed to read attribute: file does not exist",
		f.Wrap(errOuter, fs.ErrNotExist).Error())
	assert.Equal(t, "Invalid usage", f.New(errors.ErrInvalidUsage).Error())
	assert.Equal(t, "not_a_code", f.New("not_a_code").Error())
}

func TestRegisterMessagesOverrides(t *testing.T) {
	code := errors.ErrorCode("test_registered")
	assert.Equal(t, "test_registered", errors.GetErrorMessage(code))

	errors.RegisterMessages(map[errors.ErrorCode]string{code: "Registered"})
	assert.Equal(t, "Registered", errors.GetErrorMessage(code))
}

func TestWrapKeepsCause(t *testing.T) {
	err := errors.New().Wrap(errOuter, fs.ErrPermission)
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Equal(t, errOuter, err.Code())
}

func TestWithMessageKeepsData(t *testing.T) {
	err := errors.New().WithData(errExited, 2).WithMessage("Helper exited")
	assert.Equal(t, 2, err.GetData())
	assert.Equal(t, "Helper exited: 2", err.Error())
}

func TestHasCode(t *testing.T) {
	inner := errors.New().New(errInner)
	outer := errors.New().Wrap(errOuter, fmt.Errorf("ctx: %w", inner))

	assert.True(t, errors.HasCode(outer, errOuter))
	assert.True(t, errors.HasCode(outer, errInner))
	assert.False(t, errors.HasCode(outer, errExited))
	assert.False(t, errors.HasCode(nil, errOuter))

	code, ok := errors.CodeOf(fmt.Errorf("wrapped: %w", outer))
	assert.True(t, ok)
	assert.Equal(t, errOuter, code)

	_, ok = errors.CodeOf(fs.ErrClosed)
	assert.False(t, ok)
}
