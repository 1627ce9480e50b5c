package codegen

import (
	"fmt"

	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
)

// Severity grades a diagnostic.
type Severity string

var (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diagnostic describes a problem found while generating code for a block.
type Diagnostic struct {
	BlockID  string         `json:"block_id,omitempty"`
	Tag      model.BlockTag `json:"tag,omitempty"`
	Field    string         `json:"field,omitempty"`
	Severity Severity       `json:"severity"`
	Message  string         `json:"message"`
}

func (d Diagnostic) String() string {
	if d.Field != "" {
		return fmt.Sprintf("%s %s[%s].%s: %s", d.Severity, d.Tag, d.BlockID, d.Field, d.Message)
	}
	return fmt.Sprintf("%s %s[%s]: %s", d.Severity, d.Tag, d.BlockID, d.Message)
}

// HasErrors reports whether any diagnostic has error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
