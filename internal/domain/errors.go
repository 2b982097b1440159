package domain

import "errors"

// Every failure of the engine is one of these flat sentinels, returned
// synchronously as an error value. Callers match with errors.Is; wrapping
// adds context (domain name, step) at the facade and CLI boundary.
var (
	// ErrDomainNotFound means the descriptor table has no entry for the
	// requested identifier or name.
	ErrDomainNotFound = errors.New("power domain not found")

	// ErrDependencyNotMet means a parent was inactive on a power-on
	// attempt, or a child was still active on a power-off attempt.
	ErrDependencyNotMet = errors.New("power dependency not met")

	// ErrTimeout means main-power stabilization polling exhausted its
	// iteration bound.
	ErrTimeout = errors.New("power state stabilization timeout")

	// ErrMemoryPowerTimeout means the memory array never reached the
	// expected power state.
	ErrMemoryPowerTimeout = errors.New("memory power stabilization timeout")

	// ErrIdleAckTimeout means the bus never acknowledged an idle request
	// or cancellation.
	ErrIdleAckTimeout = errors.New("bus idle acknowledgment timeout")

	// ErrIdleRequestTimeout means the bus acknowledged but never reached
	// the requested idle state.
	ErrIdleRequestTimeout = errors.New("bus idle state timeout")

	// ErrRepairTimeout means memory self-repair never completed after
	// power-on.
	ErrRepairTimeout = errors.New("memory repair timeout")

	// ErrQoSNotSaved means a QoS restore was attempted without a prior
	// successful save.
	ErrQoSNotSaved = errors.New("qos restore without saved state")

	// ErrInvalidQoSConfig means a QoS controller was constructed with an
	// empty port list or more ports than the hardware supports.
	ErrInvalidQoSConfig = errors.New("invalid qos port configuration")

	// ErrHardware is reserved for caller-detected hardware faults.
	ErrHardware = errors.New("hardware error")

	// ErrInvalidOperation means the requested transition violates a
	// caller-visible precondition, e.g. powering off an always-on domain.
	ErrInvalidOperation = errors.New("invalid operation")
)
