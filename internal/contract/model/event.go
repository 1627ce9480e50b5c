package model

import (
	"time"

	"github.com/google/uuid"
)

// GenerationKind identifies which code path produced a contract.
type GenerationKind string

var (
	GenerationBlocks   GenerationKind = "blocks"
	GenerationTemplate GenerationKind = "template"
	GenerationCompose  GenerationKind = "compose"
)

// GenerationEvent records one generation call for analytics.
type GenerationEvent struct {
	ID              uuid.UUID
	Kind            GenerationKind
	ContractName    string
	Features        []string
	BlockCount      uint32
	DiagnosticCount uint32
	SourceBytes     uint32
	CreatedAt       time.Time
}
