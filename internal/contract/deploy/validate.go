package deploy

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goodnatureofminers/blockforge-backend/internal/contract/solidity"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/templates"
)

const (
	minGasEstimate = 200000
	gasPerLine     = 1000
	gasPerFunction = 50000
)

// Report is the outcome of the pre-flight checks on a contract source.
type Report struct {
	ContractName string
	GasEstimate  uint64
	Lines        int
	Functions    int
}

// Validate runs the substring checks required before compiling source.
func Validate(source string) error {
	if strings.TrimSpace(source) == "" {
		return ErrEmptySource
	}
	if !strings.Contains(source, "pragma solidity") {
		return ErrMissingPragma
	}
	if !strings.Contains(source, "contract") {
		return ErrMissingContract
	}
	return nil
}

// EstimateGas returns a rough deployment gas figure derived from the size of source.
func EstimateGas(source string) uint64 {
	lines := strings.Count(source, "\n") + 1
	functions := strings.Count(source, "function")
	gas := uint64(lines*gasPerLine + functions*gasPerFunction)
	if gas < minGasEstimate {
		return minGasEstimate
	}
	return gas
}

// Preflight validates source and reports its contract name and gas estimate.
func Preflight(source string) (Report, error) {
	if err := Validate(source); err != nil {
		return Report{}, err
	}
	name, ok := templates.ExtractContractName(source)
	if !ok {
		return Report{}, ErrMissingContract
	}
	return Report{
		ContractName: name,
		GasEstimate:  EstimateGas(source),
		Lines:        strings.Count(source, "\n") + 1,
		Functions:    strings.Count(source, "function"),
	}, nil
}

// declares reports whether source declares a contract called name.
func declares(source, name string) bool {
	re, err := regexp.Compile(`\bcontract\s+` + regexp.QuoteMeta(name) + `(?:[^A-Za-z0-9_$]|$)`)
	if err != nil {
		return false
	}
	return re.MatchString(source)
}

func checkContract(source, contractName string) error {
	if err := Validate(source); err != nil {
		return err
	}
	if !solidity.IsIdentifier(contractName) {
		return fmt.Errorf("%w: %q", ErrInvalidContractName, contractName)
	}
	if !declares(source, contractName) {
		return fmt.Errorf("%w: %s", ErrContractNotDeclared, contractName)
	}
	return nil
}
