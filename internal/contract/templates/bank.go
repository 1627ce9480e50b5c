// Package templates holds the hand-written contract templates and the combined-feature composer.
package templates

import (
	"fmt"
	"regexp"

	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
)

// Template is a complete contract source with placeholder tokens.
type Template struct {
	ID          model.FeatureID
	Title       string
	Description string
	Source      string
}

// Bank renders templates by feature id.
type Bank struct {
	templates map[model.FeatureID]Template
	order     []model.FeatureID
}

// NewBank creates a bank over the given templates.
func NewBank(templates []Template) *Bank {
	b := &Bank{templates: make(map[model.FeatureID]Template, len(templates))}
	for _, t := range templates {
		if _, ok := b.templates[t.ID]; !ok {
			b.order = append(b.order, t.ID)
		}
		b.templates[t.ID] = t
	}
	return b
}

// DefaultBank returns the bank with the built-in templates.
func DefaultBank() *Bank {
	return NewBank([]Template{
		{ID: model.Loyalty, Title: "Loyalty Program", Description: "ERC20-style reward points with mint and burn", Source: loyaltySource},
		{ID: model.Certificates, Title: "Digital Certificates", Description: "NFT certificates with token URIs", Source: certificatesSource},
		{ID: model.Governance, Title: "Community Governance", Description: "Member proposals, voting and execution", Source: governanceSource},
		{ID: model.Marketplace, Title: "Local Marketplace", Description: "Item listings with a platform fee", Source: marketplaceSource},
	})
}

// Templates returns the templates in registration order.
func (b *Bank) Templates() []Template {
	out := make([]Template, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.templates[id])
	}
	return out
}

// Render substitutes p into the template registered for id.
func (b *Bank) Render(id model.FeatureID, p Params) (string, error) {
	t, ok := b.templates[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	p, err := p.withDefaults()
	if err != nil {
		return "", err
	}
	return p.replacer().Replace(t.Source), nil
}

// Compose builds a contract for a feature selection. No features yields the
// basic scaffold, one feature renders its template and several features are
// merged into one contract. Repeated ids are ignored.
func (b *Bank) Compose(ids []model.FeatureID, p Params) (string, error) {
	unique := make([]model.FeatureID, 0, len(ids))
	seen := make(map[model.FeatureID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := combinedFragments[id]; !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
		}
		unique = append(unique, id)
	}

	switch len(unique) {
	case 1:
		return b.Render(unique[0], p)
	case 0:
		p, err := p.withDefaults()
		if err != nil {
			return "", err
		}
		return p.replacer().Replace(scaffold()), nil
	}

	p, err := p.withDefaults()
	if err != nil {
		return "", err
	}
	titles := make(map[model.FeatureID]string, len(unique))
	for _, id := range unique {
		titles[id] = string(id)
		if t, ok := b.templates[id]; ok {
			titles[id] = t.Title
		}
	}
	return p.replacer().Replace(combined(unique, titles)), nil
}

var contractNamePattern = regexp.MustCompile(`\bcontract\s+([A-Za-z_$][A-Za-z0-9_$]*)`)

// ExtractContractName returns the name of the first contract declared in source.
func ExtractContractName(source string) (string, bool) {
	m := contractNamePattern.FindStringSubmatch(source)
	if m == nil {
		return "", false
	}
	return m[1], true
}
