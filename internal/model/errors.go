package model

import "errors"

// Sentinel errors returned by the contact model. Operations wrap them together with the offending
// value, so callers should compare with errors.Is.
var (
	ErrInvalidPhone       = errors.New("phone number must be 10 digits")
	ErrInvalidDate        = errors.New("invalid date format, use DD.MM.YYYY")
	ErrOldPhoneNotFound   = errors.New("old phone number does not exist")
	ErrBirthdayAlreadySet = errors.New("only one birthday is allowed per record")
	ErrEmptyName          = errors.New("contact name must not be empty")
)
