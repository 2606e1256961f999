package device

import "errors"

var (
	// ErrNotFound indicates a device id is not registered
	ErrNotFound = errors.New("device not found")

	// ErrUnsupported indicates an action is not supported by the device
	ErrUnsupported = errors.New("action not supported")

	// ErrInvalidParams indicates a required action parameter is missing or malformed
	ErrInvalidParams = errors.New("invalid action parameters")

	// ErrValidation indicates action parameters failed schema validation
	ErrValidation = errors.New("validation error")

	// ErrUnreachable indicates the device microservice could not be reached
	ErrUnreachable = errors.New("device unreachable")

	// ErrBadStatus indicates the device answered with a non-200 status
	ErrBadStatus = errors.New("unexpected device response status")

	// ErrInvalidPayload indicates the status body is not a JSON object
	ErrInvalidPayload = errors.New("invalid status payload")

	// ErrUnknownKind indicates a device kind name is not recognised
	ErrUnknownKind = errors.New("unknown device type")
)
