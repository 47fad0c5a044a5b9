package domain

import (
	"fmt"
	"strings"
)

// AvailabilityState is the closed set of probe outcomes.
type AvailabilityState string

const (
	AvailabilityState_Unavailable  AvailabilityState = "unavailable"
	AvailabilityState_Downloadable AvailabilityState = "downloadable"
	AvailabilityState_Available    AvailabilityState = "available"
	AvailabilityState_Error        AvailabilityState = "error"
)

// AvailabilityStatus is the result of probing a capability.
type AvailabilityStatus struct {
	State  AvailabilityState
	Reason string
}

// Usable reports whether a session can be created for the status.
func (s AvailabilityStatus) Usable() bool {
	return s.State == AvailabilityState_Available || s.State == AvailabilityState_Downloadable
}

// String returns a short human-readable form of the status.
func (s AvailabilityStatus) String() string {
	if s.Reason == "" {
		return string(s.State)
	}
	return fmt.Sprintf("%s (%s)", s.State, s.Reason)
}

// Available returns an available status.
func Available() AvailabilityStatus {
	return AvailabilityStatus{State: AvailabilityState_Available}
}

// Unavailable returns an unavailable status with a reason.
func Unavailable(reason string) AvailabilityStatus {
	return AvailabilityStatus{State: AvailabilityState_Unavailable, Reason: reason}
}

// AvailabilityError returns an error status with a reason.
func AvailabilityError(reason string) AvailabilityStatus {
	return AvailabilityStatus{State: AvailabilityState_Error, Reason: reason}
}

// ParseAvailability maps a host availability string onto the closed enum.
// "downloading" is treated as downloadable; unknown strings are unavailable.
func ParseAvailability(raw string) AvailabilityStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "available", "readily":
		return AvailabilityStatus{State: AvailabilityState_Available}
	case "downloadable", "downloading", "after-download":
		return AvailabilityStatus{State: AvailabilityState_Downloadable}
	case "unavailable", "no", "":
		return Unavailable("Status: unavailable")
	default:
		return Unavailable(fmt.Sprintf("Status: %s", raw))
	}
}
