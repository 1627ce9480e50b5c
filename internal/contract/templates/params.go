package templates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/blockforge-backend/internal/contract/solidity"
)

var (
	// ErrInvalidContractName is returned when the contract name is not a Solidity identifier.
	ErrInvalidContractName = errors.New("invalid contract name")
	// ErrInvalidParam is returned when a substitution value cannot be placed in the source safely.
	ErrInvalidParam = errors.New("invalid template parameter")
	// ErrUnknownTemplate is returned for template ids outside the bank.
	ErrUnknownTemplate = errors.New("unknown template")
)

const (
	DefaultDecimals       = 18
	DefaultInitialSupply  = 1000000
	DefaultVotingDuration = 604800
	DefaultPlatformFee    = 250
	// MaxPlatformFee is the highest fee in basis points the marketplace accepts.
	MaxPlatformFee = 1000
	// DefaultSymbol is used when the contract name yields no symbol.
	DefaultSymbol = "MC"
)

var placeholders = []string{
	"__CONTRACT__",
	"__NAME__",
	"__SYMBOL__",
	"__DECIMALS__",
	"__INITIAL_SUPPLY__",
	"__VOTING_DURATION__",
	"__PLATFORM_FEE__",
}

// Params are the substitution values of a template. Zero values select
// defaults, except Decimals where only nil does.
type Params struct {
	ContractName string `json:"contract_name"`
	// Name is the display name; it defaults to ContractName.
	Name string `json:"name,omitempty"`
	// Symbol defaults to the first three letters of ContractName, upper-cased.
	Symbol         string `json:"symbol,omitempty"`
	Decimals       *uint8 `json:"decimals,omitempty"`
	InitialSupply  uint64 `json:"initial_supply,omitempty"`
	VotingDuration uint64 `json:"voting_duration,omitempty"`
	PlatformFee    uint32 `json:"platform_fee,omitempty"`
}

// withDefaults validates p and fills zero values.
func (p Params) withDefaults() (Params, error) {
	if !solidity.IsIdentifier(p.ContractName) {
		return p, fmt.Errorf("%w: %q", ErrInvalidContractName, p.ContractName)
	}
	if p.Name == "" {
		p.Name = p.ContractName
	}
	if p.Symbol == "" {
		p.Symbol = defaultSymbol(p.ContractName)
	}
	decimals := uint8(DefaultDecimals)
	if p.Decimals != nil {
		decimals = *p.Decimals
	}
	p.Decimals = &decimals
	if p.InitialSupply == 0 {
		p.InitialSupply = DefaultInitialSupply
	}
	if p.VotingDuration == 0 {
		p.VotingDuration = DefaultVotingDuration
	}
	if p.PlatformFee == 0 {
		p.PlatformFee = DefaultPlatformFee
	}
	if p.PlatformFee > MaxPlatformFee {
		return p, fmt.Errorf("%w: platform fee %d exceeds %d basis points", ErrInvalidParam, p.PlatformFee, MaxPlatformFee)
	}
	if decimals > 77 {
		return p, fmt.Errorf("%w: decimals %d overflow uint256", ErrInvalidParam, decimals)
	}
	if err := checkDisplay(p.Name); err != nil {
		return p, fmt.Errorf("name: %w", err)
	}
	if err := checkDisplay(p.Symbol); err != nil {
		return p, fmt.Errorf("symbol: %w", err)
	}
	return p, nil
}

func defaultSymbol(contractName string) string {
	if len(contractName) < 3 {
		if contractName == "" {
			return DefaultSymbol
		}
		return strings.ToUpper(contractName)
	}
	return strings.ToUpper(contractName[:3])
}

func checkDisplay(v string) error {
	if strings.ContainsAny(v, "\"\\\r\n") {
		return fmt.Errorf("%w: %q contains a quote, backslash or line break", ErrInvalidParam, v)
	}
	for _, token := range placeholders {
		if strings.Contains(v, token) {
			return fmt.Errorf("%w: %q contains placeholder %s", ErrInvalidParam, v, token)
		}
	}
	return nil
}

func (p Params) replacer() *strings.Replacer {
	return strings.NewReplacer(
		"__CONTRACT__", p.ContractName,
		"__NAME__", solidity.Quote(p.Name),
		"__SYMBOL__", solidity.Quote(p.Symbol),
		"__DECIMALS__", strconv.FormatUint(uint64(*p.Decimals), 10),
		"__INITIAL_SUPPLY__", strconv.FormatUint(p.InitialSupply, 10),
		"__VOTING_DURATION__", strconv.FormatUint(p.VotingDuration, 10),
		"__PLATFORM_FEE__", strconv.FormatUint(uint64(p.PlatformFee), 10),
	)
}
