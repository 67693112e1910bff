// Package ideapad reads the ideapad_laptop tunables and requests elevated
// writes for them. It never runs with elevated privilege itself.
package ideapad

import (
	"codeberg.org/mutker/ideapadctl/internal/attribute"
	"codeberg.org/mutker/ideapadctl/internal/device"
	"codeberg.org/mutker/ideapadctl/internal/errors"
	"github.com/spf13/afero"
)

// Reader decodes attribute files without elevation. Every call resolves
// the device again.
type Reader struct {
	fs      afero.Fs
	locator *device.Locator
}

func NewReader(fs afero.Fs, locator *device.Locator) *Reader {
	return &Reader{fs: fs, locator: locator}
}

// DefaultReader reads the live sysfs tree.
func DefaultReader() *Reader {
	fs := afero.NewOsFs()
	return NewReader(fs, device.NewLocator(fs, device.Pattern))
}

// Read returns the current value of p.
func (r *Reader) Read(p attribute.Parameter) (attribute.Value, error) {
	dev, err := r.locator.Locate()
	if err != nil {
		return attribute.Value{}, err
	}

	return r.readAt(dev, p)
}

func (r *Reader) readAt(dev device.Path, p attribute.Parameter) (attribute.Value, error) {
	data, err := afero.ReadFile(r.fs, dev.Attribute(p))
	if err != nil {
		return attribute.Value{}, errors.New().Wrap(attribute.ErrUnreadable, err)
	}

	return attribute.Decode(p, string(data))
}

func (r *Reader) ReadBool(p attribute.Parameter) (bool, error) {
	v, err := r.Read(p)
	if err != nil {
		return false, err
	}

	b, ok := v.Bool()
	if !ok {
		return false, errors.New().WithData(errors.ErrInvalidArgument, p.String()+" is not a boolean")
	}

	return b, nil
}

func (r *Reader) ReadUint8(p attribute.Parameter) (uint8, error) {
	v, err := r.Read(p)
	if err != nil {
		return 0, err
	}

	n, ok := v.Uint8()
	if !ok {
		return 0, errors.New().WithData(errors.ErrInvalidArgument, p.String()+" is not an integer")
	}

	return n, nil
}

// Reading is one entry of a Snapshot. Err is set when the value is unknown.
type Reading struct {
	Parameter attribute.Parameter
	Value     attribute.Value
	Err       error
}

// Known reports whether the value could be read.
func (r Reading) Known() bool {
	return r.Err == nil
}

// Snapshot reads every parameter against a single resolved device. When
// the device is missing every reading carries the locate error.
func (r *Reader) Snapshot() []Reading {
	params := attribute.All()
	readings := make([]Reading, len(params))

	dev, err := r.locator.Locate()
	for i, p := range params {
		readings[i].Parameter = p
		if err != nil {
			readings[i].Err = err
			continue
		}
		readings[i].Value, readings[i].Err = r.readAt(dev, p)
	}

	return readings
}
