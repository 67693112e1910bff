package attribute

import "codeberg.org/mutker/ideapadctl/internal/errors"

const (
	ErrUnknownParameter = errors.ErrorCode("unknown_parameter")
	ErrInvalidValue     = errors.ErrorCode("invalid_value")

	// Attribute file access
	ErrUnreadable = errors.ErrorCode("attribute_unreadable")
	ErrUnwritable = errors.ErrorCode("attribute_unwritable")
)

func init() {
	errors.RegisterMessages(map[errors.ErrorCode]string{
		ErrUnknownParameter: "Unknown parameter",
		ErrInvalidValue:     "Invalid attribute value",
		ErrUnreadable:       "Failed to read attribute",
		ErrUnwritable:       "Failed to write attribute",
	})
}
