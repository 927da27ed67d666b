package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSourceFatal marks failures that must terminate the pipeline loop.
	ErrSourceFatal = errors.New("source failure")
	// ErrConfiguration marks invalid or missing settings discovered at call
	// time. These surface per failing call, never as process exits.
	ErrConfiguration = errors.New("configuration error")
	// ErrExternalService marks unreachable endpoints and malformed responses.
	ErrExternalService = errors.New("external service error")
	// ErrTimeout marks bounded-deadline expirations on external calls.
	ErrTimeout = errors.New("timeout")
	// ErrTransient marks per-tick failures the loop absorbs and retries.
	ErrTransient = errors.New("transient failure")
)

// Wrap builds an error that carries component context while tagging it with
// the provided sentinel for later classification. The marker should be one
// of the exported sentinels above.
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

// Fatal reports whether the error must terminate the pipeline loop.
func Fatal(err error) bool {
	return errors.Is(err, ErrSourceFatal)
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
