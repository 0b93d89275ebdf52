package domain

import "errors"

var (
	// ErrNotFound means the device registry or subscription does not exist.
	ErrNotFound = errors.New("subscription not found")
	// ErrForbidden means the requester is neither the owner nor an admin.
	ErrForbidden = errors.New("not allowed to modify this subscription")
	// ErrInvalidURL means the subscriber URL failed validation.
	ErrInvalidURL = errors.New("invalid webhook url")
	// ErrInvalidEvent means the event name is not a known event type.
	ErrInvalidEvent = errors.New("invalid event type")
)
