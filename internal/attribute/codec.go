package attribute

import (
	"strconv"
	"strings"
)

// DecodeBool accepts exactly "0" or "1" once surrounding whitespace is trimmed.
func DecodeBool(p Parameter, text string) (bool, error) {
	switch strings.TrimSpace(text) {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, invalid(p, text)
	}
}

// DecodeUint8 parses trimmed base-10 text into a byte. The driver's own
// range is not checked here.
func DecodeUint8(p Parameter, text string) (uint8, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(text), 10, 8)
	if err != nil {
		return 0, invalid(p, text)
	}

	return uint8(n), nil
}

func EncodeBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func EncodeUint8(n uint8) string {
	return strconv.FormatUint(uint64(n), 10)
}

// Decode dispatches on the kind of p.
func Decode(p Parameter, text string) (Value, error) {
	if !p.valid() {
		return Value{}, unknown(p)
	}

	if p.Kind() == KindBool {
		b, err := DecodeBool(p, text)
		if err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	}

	n, err := DecodeUint8(p, text)
	if err != nil {
		return Value{}, err
	}

	return Uint8(n), nil
}

// ParseArg parses a command line value for p. Booleans accept true, false,
// 1 and 0 in any case; integers accept untrimmed decimal 0-255.
func ParseArg(p Parameter, text string) (Value, error) {
	if !p.valid() {
		return Value{}, unknown(p)
	}

	if p.Kind() == KindBool {
		switch strings.ToLower(text) {
		case "true", "1":
			return Bool(true), nil
		case "false", "0":
			return Bool(false), nil
		default:
			return Value{}, invalid(p, text)
		}
	}

	n, err := strconv.ParseUint(text, 10, 8)
	if err != nil {
		return Value{}, invalid(p, text)
	}

	return Uint8(uint8(n)), nil
}
