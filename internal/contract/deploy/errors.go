package deploy

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptySource     = errors.New("contract source is empty")
	ErrMissingPragma   = errors.New("contract source must include a pragma solidity version declaration")
	ErrMissingContract = errors.New("contract source must declare at least one contract")
	// ErrInvalidContractName is returned when the name cannot be used as a file and artifact name.
	ErrInvalidContractName = errors.New("invalid contract name")
	// ErrContractNotDeclared is returned when the source does not declare the contract being deployed.
	ErrContractNotDeclared = errors.New("contract not declared in source")
	// ErrAddressNotFound is returned when a deployment command succeeds without printing an address.
	ErrAddressNotFound = errors.New("deployed address not found in command output")
)

// CommandError describes an external command that failed.
type CommandError struct {
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(e.Stdout)
	}
	if msg == "" {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Command, e.Err, msg)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
