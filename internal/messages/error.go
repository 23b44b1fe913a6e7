package messages

import "errors"

var (
	ErrMessageNotFound = errors.New("message not found")

	errNameRequired    = errors.New("name is required")
	errEmailRequired   = errors.New("email is required")
	errSubjectRequired = errors.New("subject is required")
	errBodyRequired    = errors.New("message body is required")
)
