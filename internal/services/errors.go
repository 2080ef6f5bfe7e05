package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks input defects: malformed or missing required fields.
	ErrValidation = errors.New("validation error")
	// ErrConfiguration marks unusable configuration discovered at runtime.
	ErrConfiguration = errors.New("configuration error")
	// ErrTransient marks retryable failures: network, timeout, throttling.
	ErrTransient = errors.New("transient failure")
	// ErrContract marks oracle responses outside the declared contract.
	// Contract violations always fail closed; they are never retried.
	ErrContract = errors.New("contract violation")
	// ErrNotFound marks lookups with no result.
	ErrNotFound = errors.New("not found")
	// ErrTimeout marks exhausted deadlines.
	ErrTimeout = errors.New("timeout")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
