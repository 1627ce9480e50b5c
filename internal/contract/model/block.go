package model

// BlockTag is the type tag of a visual block.
type BlockTag string

var (
	TagContractStart     BlockTag = "contract_start"
	TagVariableDeclare   BlockTag = "variable_declare"
	TagFunctionPublic    BlockTag = "function_public"
	TagFunctionPrivate   BlockTag = "function_private"
	TagModifierOnlyOwner BlockTag = "modifier_onlyowner"
	TagRequireStatement  BlockTag = "require_statement"
	TagEmitEvent         BlockTag = "emit_event"

	TagTokenCreate    BlockTag = "token_create"
	TagTokenMint      BlockTag = "token_mint"
	TagTokenTransfer  BlockTag = "token_transfer"
	TagNFTCreate      BlockTag = "nft_create"
	TagNFTMint        BlockTag = "nft_mint"
	TagProposalCreate BlockTag = "proposal_create"
	TagVoteCast       BlockTag = "vote_cast"
	TagItemList       BlockTag = "item_list"
	TagItemBuy        BlockTag = "item_buy"
)

// ArgKind is the kind of an argument slot on a block.
type ArgKind string

var (
	ArgFieldInput    ArgKind = "field_input"
	ArgFieldDropdown ArgKind = "field_dropdown"
	ArgInputValue    ArgKind = "input_value"
)

// Option is a dropdown entry: a display label and the stored value.
type Option struct {
	Label string
	Value string
}

// ArgSlot describes one typed argument of a block.
type ArgSlot struct {
	Kind    ArgKind
	Name    string
	Default string
	Check   string
	Options []Option
}

// BlockDescriptor is the static definition of a block type.
type BlockDescriptor struct {
	Type    BlockTag
	Message string
	Args    []ArgSlot
	Colour  string
	Tooltip string
	// Feature is empty for construction blocks.
	Feature FeatureID
}
