// Package attribute describes the tunables exposed by the ideapad_laptop
// platform driver and converts their values to and from the text the
// kernel attribute files hold.
package attribute

import (
	"codeberg.org/mutker/ideapadctl/internal/errors"
)

// Kind is the value domain of a parameter.
type Kind int

const (
	KindBool Kind = iota
	KindUint8

	kindUnknown Kind = -1
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindUint8:
		return "uint8"
	default:
		return "unknown"
	}
}

// Parameter identifies one attribute file of the driver.
type Parameter int

const (
	CameraPower Parameter = iota
	ConservationMode
	FanMode
	FnLock
	UsbCharging
)

type parameterInfo struct {
	name        string
	label       string
	kind        Kind
	max         uint8
	description string
}

// Documented in Documentation/ABI/testing/sysfs-platform-ideapad-laptop.
var parameters = [...]parameterInfo{
	CameraPower:      {name: "camera_power", label: "Camera Power", kind: KindBool, max: 1, description: "Power of camera module"},
	ConservationMode: {name: "conservation_mode", label: "Conservation Mode", kind: KindBool, max: 1, description: "Limit the maximum battery charge"},
	FanMode:          {name: "fan_mode", label: "Fan Mode", kind: KindUint8, max: 4, description: "Change fan mode"},
	FnLock:           {name: "fn_lock", label: "Fn Lock", kind: KindBool, max: 1, description: "Control fn-lock mode"},
	UsbCharging:      {name: "usb_charging", label: "USB Charging", kind: KindBool, max: 1, description: "Always on USB charging"},
}

// All returns every parameter in declaration order.
func All() []Parameter {
	return []Parameter{CameraPower, ConservationMode, FanMode, FnLock, UsbCharging}
}

// Parse resolves an attribute file name to its parameter.
func Parse(name string) (Parameter, error) {
	for i := range parameters {
		if parameters[i].name == name {
			return Parameter(i), nil
		}
	}

	return 0, errors.New().WithData(ErrUnknownParameter, name)
}

func (p Parameter) valid() bool {
	return p >= 0 && int(p) < len(parameters)
}

// String returns the attribute file name.
func (p Parameter) String() string {
	if !p.valid() {
		return "unknown"
	}
	return parameters[p].name
}

// Label is the display name of p.
func (p Parameter) Label() string {
	if !p.valid() {
		return "Unknown"
	}
	return parameters[p].label
}

func (p Parameter) Kind() Kind {
	if !p.valid() {
		return kindUnknown
	}
	return parameters[p].kind
}

// Max is the largest value the driver accepts.
func (p Parameter) Max() uint8 {
	if !p.valid() {
		return 0
	}
	return parameters[p].max
}

func (p Parameter) Description() string {
	if !p.valid() {
		return ""
	}
	return parameters[p].description
}

func unknown(p Parameter) error {
	return errors.New().WithData(ErrUnknownParameter, int(p))
}
