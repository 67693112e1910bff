package ideapad

import (
	"codeberg.org/mutker/ideapadctl/internal/attribute"
	"codeberg.org/mutker/ideapadctl/internal/logger"
)

// Writer performs an elevated write of one parameter.
type Writer interface {
	Write(p attribute.Parameter, v attribute.Value) error
}

// Client is the per-parameter surface used by front ends. Getters report
// ok=false instead of failing; setters return the write error unchanged.
type Client struct {
	reader *Reader
	writer Writer
	log    logger.Logger
}

func NewClient(reader *Reader, writer Writer, log logger.Logger) *Client {
	return &Client{reader: reader, writer: writer, log: log}
}

func (c *Client) getBool(p attribute.Parameter) (bool, bool) {
	b, err := c.reader.ReadBool(p)
	if err != nil {
		c.log.Debug().Err(err).Str("parameter", p.String()).Msg("value unknown")
		return false, false
	}

	return b, true
}

func (c *Client) set(p attribute.Parameter, v attribute.Value) error {
	if err := c.writer.Write(p, v); err != nil {
		c.log.Warn().Err(err).Str("parameter", p.String()).Str("value", v.String()).Msg("write failed")
		return err
	}

	c.log.Info().Str("parameter", p.String()).Str("value", v.String()).Msg("parameter written")

	return nil
}

func (c *Client) GetCameraPower() (bool, bool) {
	return c.getBool(attribute.CameraPower)
}

func (c *Client) GetConservationMode() (bool, bool) {
	return c.getBool(attribute.ConservationMode)
}

func (c *Client) GetFanMode() (uint8, bool) {
	n, err := c.reader.ReadUint8(attribute.FanMode)
	if err != nil {
		c.log.Debug().Err(err).Str("parameter", attribute.FanMode.String()).Msg("value unknown")
		return 0, false
	}

	return n, true
}

func (c *Client) GetFnLock() (bool, bool) {
	return c.getBool(attribute.FnLock)
}

func (c *Client) GetUsbCharging() (bool, bool) {
	return c.getBool(attribute.UsbCharging)
}

func (c *Client) SetCameraPower(v bool) error {
	return c.set(attribute.CameraPower, attribute.Bool(v))
}

func (c *Client) SetConservationMode(v bool) error {
	return c.set(attribute.ConservationMode, attribute.Bool(v))
}

func (c *Client) SetFanMode(v uint8) error {
	return c.set(attribute.FanMode, attribute.Uint8(v))
}

func (c *Client) SetFnLock(v bool) error {
	return c.set(attribute.FnLock, attribute.Bool(v))
}

func (c *Client) SetUsbCharging(v bool) error {
	return c.set(attribute.UsbCharging, attribute.Bool(v))
}

// Get reads any parameter, for callers that dispatch on name.
func (c *Client) Get(p attribute.Parameter) (attribute.Value, error) {
	return c.reader.Read(p)
}

// Set writes any parameter through the writer.
func (c *Client) Set(p attribute.Parameter, v attribute.Value) error {
	return c.set(p, v)
}

// Snapshot reads all parameters, logging the ones that are unknown.
func (c *Client) Snapshot() []Reading {
	readings := c.reader.Snapshot()
	for _, r := range readings {
		if !r.Known() {
			c.log.Debug().Err(r.Err).Str("parameter", r.Parameter.String()).Msg("value unknown")
		}
	}

	return readings
}
