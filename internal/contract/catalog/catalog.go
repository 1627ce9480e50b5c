// Package catalog holds the static table of builder features and block descriptors.
package catalog

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
)

// ErrUnknownFeature is returned when a feature id is not in the catalog.
var ErrUnknownFeature = errors.New("unknown feature")

// Catalog is an immutable lookup over features and block descriptors.
type Catalog struct {
	features []model.Feature
	byID     map[model.FeatureID]int
	blocks   []model.BlockDescriptor
	byTag    map[model.BlockTag]int
}

// New builds a catalog. Later descriptors with an already seen tag are ignored.
func New(features []model.Feature, blocks []model.BlockDescriptor) *Catalog {
	c := &Catalog{
		byID:  make(map[model.FeatureID]int, len(features)),
		byTag: make(map[model.BlockTag]int, len(blocks)),
	}
	for _, f := range features {
		if _, ok := c.byID[f.ID]; ok {
			continue
		}
		c.byID[f.ID] = len(c.features)
		c.features = append(c.features, f)
	}
	for _, b := range blocks {
		if _, ok := c.byTag[b.Type]; ok {
			continue
		}
		c.byTag[b.Type] = len(c.blocks)
		c.blocks = append(c.blocks, b)
	}
	return c
}

// Default returns the catalog with the built-in features and blocks.
func Default() *Catalog {
	blocks := append(ConstructionBlocks(), FeatureBlocks()...)
	return New(Features(), blocks)
}

// Features returns the features in declaration order.
func (c *Catalog) Features() []model.Feature {
	out := make([]model.Feature, len(c.features))
	copy(out, c.features)
	return out
}

// Feature returns the feature with the given id.
func (c *Catalog) Feature(id model.FeatureID) (model.Feature, error) {
	i, ok := c.byID[id]
	if !ok {
		return model.Feature{}, fmt.Errorf("%w: %q", ErrUnknownFeature, id)
	}
	return c.features[i], nil
}

// Blocks returns every block descriptor in declaration order.
func (c *Catalog) Blocks() []model.BlockDescriptor {
	out := make([]model.BlockDescriptor, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// Block returns the descriptor registered for tag.
func (c *Catalog) Block(tag model.BlockTag) (model.BlockDescriptor, bool) {
	i, ok := c.byTag[tag]
	if !ok {
		return model.BlockDescriptor{}, false
	}
	return c.blocks[i], true
}

// Default returns the default value of the named argument of a block, or "".
func (c *Catalog) Default(tag model.BlockTag, arg string) string {
	b, ok := c.Block(tag)
	if !ok {
		return ""
	}
	for _, a := range b.Args {
		if a.Name == arg {
			return a.Default
		}
	}
	return ""
}
