package device

import "codeberg.org/mutker/ideapadctl/internal/errors"

const ErrNotFound = errors.ErrorCode("device_not_found")

func init() {
	errors.RegisterMessages(map[errors.ErrorCode]string{
		ErrNotFound: "No ideapad device found, is the ideapad_laptop module loaded?",
	})
}
