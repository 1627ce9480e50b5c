package model

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a deployment record does not exist.
var ErrNotFound = errors.New("deployment not found")

// DeployMethod describes how a contract reached the chain.
type DeployMethod string

var (
	// DeployHardhat deploys through the Hardhat Ignition CLI.
	DeployHardhat DeployMethod = "hardhat"
	// DeployRPC sends a signed contract-creation transaction over JSON-RPC.
	DeployRPC DeployMethod = "rpc"
)

// Deployment is the record of a successfully deployed contract.
// TxHash, BlockNumber and GasUsed are zero when the deploy method does not report them.
type Deployment struct {
	ID           uuid.UUID
	Network      string
	ContractName string
	Address      common.Address
	TxHash       common.Hash
	BlockNumber  uint64
	GasUsed      uint64
	ExplorerURL  string
	Source       string
	ABI          string
	Deployer     common.Address
	Method       DeployMethod
	CreatedAt    time.Time
}
