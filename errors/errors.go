package errors

import "fmt"

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrGroupNotFound   = fmt.Errorf("group not found")
	ErrMemberNotFound  = fmt.Errorf("member not found")
	ErrSettingsInvalid = fmt.Errorf("invalid group settings")
)
