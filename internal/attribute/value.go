package attribute

import (
	"fmt"

	"codeberg.org/mutker/ideapadctl/internal/errors"
)

// Value is a typed attribute value.
type Value struct {
	kind Kind
	b    bool
	n    uint8
}

func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func Uint8(n uint8) Value {
	return Value{kind: KindUint8, n: n}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean held by v, ok is false for integer values.
func (v Value) Bool() (b, ok bool) {
	return v.b, v.kind == KindBool
}

// Uint8 returns the integer held by v, ok is false for boolean values.
func (v Value) Uint8() (n uint8, ok bool) {
	return v.n, v.kind == KindUint8
}

// String renders v in the canonical attribute encoding.
func (v Value) String() string {
	if v.kind == KindBool {
		return EncodeBool(v.b)
	}
	return EncodeUint8(v.n)
}

// InvalidValue is attached to invalid_value errors.
type InvalidValue struct {
	Parameter string
	Text      string
}

func (v InvalidValue) String() string {
	return fmt.Sprintf("%s=%q", v.Parameter, v.Text)
}

func invalid(p Parameter, text string) error {
	return errors.New().WithData(ErrInvalidValue, InvalidValue{Parameter: p.String(), Text: text})
}

// Validate checks v against the domain of p.
func Validate(p Parameter, v Value) error {
	if !p.valid() {
		return unknown(p)
	}

	if v.kind != p.Kind() {
		return invalid(p, v.String())
	}

	if v.kind == KindUint8 && v.n > p.Max() {
		return invalid(p, v.String())
	}

	return nil
}
