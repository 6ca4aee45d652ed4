package guard

import "errors"

var (
	ErrTargetRunning = errors.New("target application running")
	ErrBackupFailed  = errors.New("backup failed")
	ErrWriteFailed   = errors.New("write failed")
)
