package service

import "errors"

var (
	ErrInternal          = errors.New("internal server error")
	ErrSpamDetected      = errors.New("spam detected")
	ErrMissingFields     = errors.New("missing required fields")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrEmailDelivery     = errors.New("failed to send email")
	ErrAlreadySubscribed = errors.New("email already subscribed")
	ErrSubscribe         = errors.New("failed to subscribe to newsletter")
)
