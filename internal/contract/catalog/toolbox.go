package catalog

import "github.com/goodnatureofminers/blockforge-backend/internal/contract/model"

// ToolboxItem is a node of the visual editor's category toolbox.
type ToolboxItem struct {
	Kind     string        `json:"kind"`
	Name     string        `json:"name,omitempty"`
	Colour   string        `json:"colour,omitempty"`
	Type     string        `json:"type,omitempty"`
	Contents []ToolboxItem `json:"contents,omitempty"`
}

// ArgDefinition is a block argument in the editor's JSON block format.
type ArgDefinition struct {
	Type    string      `json:"type"`
	Name    string      `json:"name"`
	Text    string      `json:"text,omitempty"`
	Check   string      `json:"check,omitempty"`
	Options [][2]string `json:"options,omitempty"`
}

// BlockDefinition is a block in the editor's JSON block format.
type BlockDefinition struct {
	Type              string          `json:"type"`
	Message0          string          `json:"message0"`
	Args0             []ArgDefinition `json:"args0,omitempty"`
	Colour            string          `json:"colour"`
	Tooltip           string          `json:"tooltip"`
	HelpURL           string          `json:"helpUrl"`
	PreviousStatement *string         `json:"previousStatement"`
	NextStatement     *string         `json:"nextStatement"`
}

func blockItems(types ...string) []ToolboxItem {
	items := make([]ToolboxItem, 0, len(types))
	for _, t := range types {
		items = append(items, ToolboxItem{Kind: "block", Type: t})
	}
	return items
}

func (c *Catalog) baseToolbox() []ToolboxItem {
	construct := make([]string, 0, 8)
	for _, b := range c.blocks {
		if b.Feature == "" {
			construct = append(construct, string(b.Type))
		}
	}
	return []ToolboxItem{
		{Kind: "category", Name: "Contract Construction", Colour: colourConstruct, Contents: blockItems(construct...)},
		{Kind: "category", Name: "Logic", Colour: colourStandard, Contents: blockItems("controls_if", "logic_compare", "logic_operation", "logic_boolean")},
		{Kind: "category", Name: "Math", Colour: colourStandard, Contents: blockItems("math_number", "math_arithmetic")},
		{Kind: "category", Name: "Text", Colour: colourStandard, Contents: blockItems("text", "text_join")},
	}
}

// Toolbox builds the category toolbox for the selected features.
// Base categories come first, followed by one category per distinct feature in selection order.
func (c *Catalog) Toolbox(selected []model.FeatureID) (ToolboxItem, error) {
	contents := c.baseToolbox()
	seen := make(map[model.FeatureID]struct{}, len(selected))
	for _, id := range selected {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		f, err := c.Feature(id)
		if err != nil {
			return ToolboxItem{}, err
		}
		colour := colourStandard
		if len(f.Blocks) > 0 {
			colour = f.Blocks[0].Colour
		}
		types := make([]string, 0, len(f.Blocks))
		for _, b := range f.Blocks {
			types = append(types, string(b.Type))
		}
		contents = append(contents, ToolboxItem{Kind: "category", Name: f.Name, Colour: colour, Contents: blockItems(types...)})
	}
	return ToolboxItem{Kind: "categoryToolbox", Contents: contents}, nil
}

// Definitions returns JSON block definitions for the selected features.
// Construction blocks are always included; feature blocks use the feature-flavoured descriptor.
func (c *Catalog) Definitions(selected []model.FeatureID) ([]BlockDefinition, error) {
	defs := make([]BlockDefinition, 0, len(c.blocks))
	index := make(map[model.BlockTag]int)
	add := func(b model.BlockDescriptor) {
		def := definition(b)
		if i, ok := index[b.Type]; ok {
			defs[i] = def
			return
		}
		index[b.Type] = len(defs)
		defs = append(defs, def)
	}
	for _, b := range c.blocks {
		if b.Feature == "" {
			add(b)
		}
	}
	for _, id := range selected {
		f, err := c.Feature(id)
		if err != nil {
			return nil, err
		}
		for _, b := range f.Blocks {
			add(b)
		}
	}
	return defs, nil
}

func definition(b model.BlockDescriptor) BlockDefinition {
	def := BlockDefinition{
		Type:     string(b.Type),
		Message0: b.Message,
		Colour:   b.Colour,
		Tooltip:  b.Tooltip,
	}
	for _, a := range b.Args {
		ad := ArgDefinition{Type: string(a.Kind), Name: a.Name, Check: a.Check}
		switch a.Kind {
		case model.ArgFieldInput:
			ad.Text = a.Default
		case model.ArgFieldDropdown:
			for _, o := range a.Options {
				ad.Options = append(ad.Options, [2]string{o.Label, o.Value})
			}
		}
		def.Args0 = append(def.Args0, ad)
	}
	return def
}
