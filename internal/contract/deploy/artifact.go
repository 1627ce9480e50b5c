package deploy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ErrEmptyBytecode is returned for artifacts of abstract contracts and interfaces.
var ErrEmptyBytecode = errors.New("artifact has no deployable bytecode")

// Artifact is the subset of a Hardhat compilation artifact needed for deployment.
type Artifact struct {
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     string          `json:"bytecode"`
}

// ArtifactPath returns the artifact location of contractName inside a Hardhat project.
func ArtifactPath(projectDir, contractName string) string {
	return filepath.Join(projectDir, "artifacts", "contracts", contractName+".sol", contractName+".json")
}

// LoadArtifact reads the compiled artifact of contractName.
func LoadArtifact(projectDir, contractName string) (Artifact, error) {
	data, err := os.ReadFile(ArtifactPath(projectDir, contractName))
	if err != nil {
		return Artifact{}, fmt.Errorf("read artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return Artifact{}, fmt.Errorf("decode artifact: %w", err)
	}
	return a, nil
}

// Code returns the creation bytecode.
func (a Artifact) Code() ([]byte, error) {
	code, err := hexutil.Decode(a.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("decode bytecode: %w", err)
	}
	if len(code) == 0 {
		return nil, ErrEmptyBytecode
	}
	return code, nil
}

// ParsedABI parses the artifact ABI.
func (a Artifact) ParsedABI() (abi.ABI, error) {
	parsed, err := abi.JSON(bytes.NewReader(a.ABI))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("parse abi: %w", err)
	}
	return parsed, nil
}
