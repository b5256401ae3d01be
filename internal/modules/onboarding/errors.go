package onboarding

import "errors"

var ErrPersistence = errors.New("failed to persist submission")
