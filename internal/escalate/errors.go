package escalate

import "codeberg.org/mutker/ideapadctl/internal/errors"

const (
	ErrHelperPathUnresolved = errors.ErrorCode("helper_path_unresolvable")
	ErrEscalationFailed     = errors.ErrorCode("escalation_failed")
	ErrAbnormalTermination  = errors.ErrorCode("abnormal_termination")
)

func init() {
	errors.RegisterMessages(map[errors.ErrorCode]string{
		ErrHelperPathUnresolved: "Failed to resolve helper path",
		ErrEscalationFailed:     "Helper exited with non-zero status",
		ErrAbnormalTermination:  "Helper terminated by signal",
	})
}
