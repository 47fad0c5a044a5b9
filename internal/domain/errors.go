package domain

import (
	"errors"
	"fmt"
)

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents invalid caller input (empty or too short text, unsupported
// option). It is never retried.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// CapabilityUnavailableErr is returned when a probe reports that a capability cannot be
// used. Callers fall to the next tier or to the demo result.
type CapabilityUnavailableErr struct {
	domainErr
	Capability CapabilityName
	Status     AvailabilityStatus
}

// NewCapabilityUnavailableErr creates a new CapabilityUnavailableErr.
func NewCapabilityUnavailableErr(name CapabilityName, status AvailabilityStatus) *CapabilityUnavailableErr {
	return &CapabilityUnavailableErr{
		domainErr:  domainErr{message: fmt.Sprintf("%s unavailable: %s", name, status)},
		Capability: name,
		Status:     status,
	}
}

// TransientInvocationErr wraps a host invocation failure that triggers the degrading
// retry ladder.
type TransientInvocationErr struct {
	domainErr
	cause error
}

// NewTransientInvocationErr creates a new TransientInvocationErr.
func NewTransientInvocationErr(cause error) *TransientInvocationErr {
	return &TransientInvocationErr{
		domainErr: domainErr{message: fmt.Sprintf("invocation failed: %v", cause)},
		cause:     cause,
	}
}

// Unwrap returns the underlying host error.
func (e *TransientInvocationErr) Unwrap() error {
	return e.cause
}

// DelegationFailedErr is returned when a delegated request was never acknowledged
// after all delivery attempts.
type DelegationFailedErr struct {
	domainErr
	Attempts int
	LastErr  error
}

// NewDelegationFailedErr creates a new DelegationFailedErr.
func NewDelegationFailedErr(attempts int, lastErr error) *DelegationFailedErr {
	return &DelegationFailedErr{
		domainErr: domainErr{message: fmt.Sprintf("delegation failed after %d attempts: %v", attempts, lastErr)},
		Attempts:  attempts,
		LastErr:   lastErr,
	}
}

// Unwrap returns the error of the last delivery attempt.
func (e *DelegationFailedErr) Unwrap() error {
	return e.LastErr
}

// RemoteOperationErr is returned when the target context ran a delegated operation and
// it failed there. It carries the acknowledgment's error field.
type RemoteOperationErr struct {
	domainErr
	Operation OperationType
}

// NewRemoteOperationErr creates a new RemoteOperationErr.
func NewRemoteOperationErr(op OperationType, message string) *RemoteOperationErr {
	if message == "" {
		message = fmt.Sprintf("delegated %s failed", op)
	}
	return &RemoteOperationErr{
		domainErr: domainErr{message: message},
		Operation: op,
	}
}

// LowConfidenceErr is returned when a language detector answered below the confidence
// threshold. The best candidate is kept for display.
type LowConfidenceErr struct {
	domainErr
	Detection LanguageDetection
}

// NewLowConfidenceErr creates a new LowConfidenceErr.
func NewLowConfidenceErr(d LanguageDetection) *LowConfidenceErr {
	return &LowConfidenceErr{
		domainErr: domainErr{message: "Low confidence detection"},
		Detection: d,
	}
}

// ErrorKind classifies errors crossing the orchestration boundary.
type ErrorKind string

const (
	ErrorKind_None                  ErrorKind = ""
	ErrorKind_CapabilityUnavailable ErrorKind = "CapabilityUnavailable"
	ErrorKind_InvalidInput          ErrorKind = "InvalidInput"
	ErrorKind_TransientInvocation   ErrorKind = "TransientInvocationFailure"
	ErrorKind_DelegationFailed      ErrorKind = "DelegationFailed"
	ErrorKind_DomainError           ErrorKind = "DomainError"
	ErrorKind_NotFound              ErrorKind = "NotFound"
	ErrorKind_Internal              ErrorKind = "Internal"
)

// KindOf classifies err into an ErrorKind.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ErrorKind_None
	}
	var (
		unavailableErr *CapabilityUnavailableErr
		validationErr  *ValidationErr
		transientErr   *TransientInvocationErr
		delegationErr  *DelegationFailedErr
		remoteErr      *RemoteOperationErr
		lowConfErr     *LowConfidenceErr
		notFoundErr    *NotFoundErr
	)
	switch {
	case errors.As(err, &validationErr):
		return ErrorKind_InvalidInput
	case errors.As(err, &unavailableErr):
		return ErrorKind_CapabilityUnavailable
	case errors.As(err, &delegationErr):
		return ErrorKind_DelegationFailed
	case errors.As(err, &remoteErr), errors.As(err, &lowConfErr):
		return ErrorKind_DomainError
	case errors.As(err, &transientErr):
		return ErrorKind_TransientInvocation
	case errors.As(err, &notFoundErr):
		return ErrorKind_NotFound
	default:
		return ErrorKind_Internal
	}
}
