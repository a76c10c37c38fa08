package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrRecordNotFound    = errors.New("engagement record doesn't exist")
	ErrBackdatedActivity = errors.New("activity date is earlier than last active date")
	ErrTitleNotEarned    = errors.New("title is not earned")
	ErrUnknownTitle      = errors.New("unknown title")

	ErrArchiveExists   = errors.New("archive for this period already exists")
	ErrArchiveNotFound = errors.New("archive for this period doesn't exist")
	ErrInvalidPeriod   = errors.New("invalid archive period")

	ErrValidation = errors.New("validation error")
)
