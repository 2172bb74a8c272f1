package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for registry lookups.
var (
	ErrAgentNotFound     = errors.New("agent not found")
	ErrMCPServerNotFound = errors.New("mcp server not found")
	ErrChainNotFound     = errors.New("chain not found")
)

// ValidationError reports an invalid configuration value with its YAML path.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// LoadError reports a failure to read or parse a configuration file.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NewLoadError creates a LoadError.
func NewLoadError(file string, err error) *LoadError {
	return &LoadError{File: file, Err: err}
}

// DuplicateChainIDError reports two definitions claiming the same chain id.
type DuplicateChainIDError struct {
	ChainID string
}

func (e *DuplicateChainIDError) Error() string {
	return fmt.Sprintf("duplicate chain id %q", e.ChainID)
}

// AlertTypeConflictError reports an alert type claimed by two chains.
type AlertTypeConflictError struct {
	AlertType string
	ChainIDs  []string // both claimants, sorted
}

func (e *AlertTypeConflictError) Error() string {
	return fmt.Sprintf("alert type %q claimed by multiple chains: %s",
		e.AlertType, strings.Join(e.ChainIDs, ", "))
}

// UnknownAlertTypeError reports a submission for an alert type no chain
// handles. KnownTypes is sorted lexicographically for stable messages.
type UnknownAlertTypeError struct {
	AlertType  string
	KnownTypes []string
}

func (e *UnknownAlertTypeError) Error() string {
	return fmt.Sprintf("no chain handles alert type %q (known types: %s)",
		e.AlertType, strings.Join(e.KnownTypes, ", "))
}
