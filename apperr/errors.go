// Package apperr defines the shared error contract for the receipt
// pipeline. Collaborator packages wrap their failures in these types so
// callers can classify a failure (caller mistake vs. backend fault vs.
// fatal misconfiguration) without inspecting error strings.
package apperr

// AppError is the common interface implemented by all typed errors in
// this module.
type AppError interface {
	Error() string
	Retryable() bool
	ClientError() bool
}

// InternalErr represents a backend/system failure. Not retryable by
// default and never the caller's fault.
type InternalErr struct {
	msg string
}

func (e *InternalErr) Error() string {
	return e.msg
}

func (e *InternalErr) Retryable() bool {
	return false
}

func (e *InternalErr) ClientError() bool {
	return false
}

func NewInternalError(err error) *InternalErr {
	if err == nil {
		return nil
	}
	return &InternalErr{
		msg: err.Error(),
	}
}

// ClientErr represents a failure caused by the caller's input
// (bad recipient, malformed record, unknown resource).
type ClientErr struct {
	msg string
}

func (e *ClientErr) Error() string {
	return e.msg
}

func (e *ClientErr) Retryable() bool {
	return false
}

func (e *ClientErr) ClientError() bool {
	return true
}

func NewClientError(err error) *ClientErr {
	if err == nil {
		return nil
	}
	return &ClientErr{
		msg: err.Error(),
	}
}

// RetryableInternalErr represents a transient backend failure
// (throttling, timeouts). The run does not retry these itself; the
// classification exists for callers and operators.
type RetryableInternalErr struct {
	msg string
}

func (e *RetryableInternalErr) Error() string {
	return e.msg
}

func (e *RetryableInternalErr) Retryable() bool {
	return true
}

func (e *RetryableInternalErr) ClientError() bool {
	return false
}

func NewRetryableInternalError(err error) *RetryableInternalErr {
	if err == nil {
		return nil
	}
	return &RetryableInternalErr{
		msg: err.Error(),
	}
}

// ConfigErr represents missing or invalid process configuration.
// Always fatal: the run must abort before any I/O begins.
type ConfigErr struct {
	msg string
}

func (e *ConfigErr) Error() string {
	return e.msg
}

func (e *ConfigErr) Retryable() bool {
	return false
}

func (e *ConfigErr) ClientError() bool {
	return false
}

func NewConfigError(err error) *ConfigErr {
	if err == nil {
		return nil
	}
	return &ConfigErr{
		msg: err.Error(),
	}
}
