package codegen

import "github.com/goodnatureofminers/blockforge-backend/internal/contract/model"

// Block is one decoded node of a block graph. Each block kind is its own type.
type Block interface {
	Tag() model.BlockTag
	ID() string
}

// Meta carries the editor id of a block.
type Meta struct {
	BlockID string
}

// ID returns the editor id of the block.
func (m Meta) ID() string { return m.BlockID }

// Unknown is a block whose tag has no dedicated type.
type Unknown struct {
	Meta
	Type string
}

func (u Unknown) Tag() model.BlockTag { return model.BlockTag(u.Type) }

type ContractStart struct{ Meta }

func (ContractStart) Tag() model.BlockTag { return model.TagContractStart }

type VariableDeclare struct {
	Meta
	Name string
	Type string
}

func (VariableDeclare) Tag() model.BlockTag { return model.TagVariableDeclare }

// FunctionPublic is a public function stub. Body holds the statements stacked below it.
type FunctionPublic struct {
	Meta
	Name string
	Body []Block
}

func (FunctionPublic) Tag() model.BlockTag { return model.TagFunctionPublic }

// FunctionPrivate is a private function stub. Body holds the statements stacked below it.
type FunctionPrivate struct {
	Meta
	Name string
	Body []Block
}

func (FunctionPrivate) Tag() model.BlockTag { return model.TagFunctionPrivate }

type ModifierOnlyOwner struct{ Meta }

func (ModifierOnlyOwner) Tag() model.BlockTag { return model.TagModifierOnlyOwner }

type RequireStatement struct {
	Meta
	Condition string
}

func (RequireStatement) Tag() model.BlockTag { return model.TagRequireStatement }

type EmitEvent struct {
	Meta
	EventName string
}

func (EmitEvent) Tag() model.BlockTag { return model.TagEmitEvent }

type TokenCreate struct {
	Meta
	Name   string
	Symbol string
}

func (TokenCreate) Tag() model.BlockTag { return model.TagTokenCreate }

type TokenMint struct {
	Meta
	Amount string
	To     string
}

func (TokenMint) Tag() model.BlockTag { return model.TagTokenMint }

type TokenTransfer struct {
	Meta
	Amount string
	To     string
}

func (TokenTransfer) Tag() model.BlockTag { return model.TagTokenTransfer }

type NFTCreate struct {
	Meta
	Name   string
	Symbol string
}

func (NFTCreate) Tag() model.BlockTag { return model.TagNFTCreate }

type NFTMint struct {
	Meta
	TokenID string
	To      string
}

func (NFTMint) Tag() model.BlockTag { return model.TagNFTMint }

type ProposalCreate struct {
	Meta
	Description string
}

func (ProposalCreate) Tag() model.BlockTag { return model.TagProposalCreate }

type VoteCast struct {
	Meta
	Vote       string
	ProposalID string
}

func (VoteCast) Tag() model.BlockTag { return model.TagVoteCast }

type ItemList struct {
	Meta
	ItemID string
	Price  string
}

func (ItemList) Tag() model.BlockTag { return model.TagItemList }

type ItemBuy struct {
	Meta
	ItemID string
}

func (ItemBuy) Tag() model.BlockTag { return model.TagItemBuy }
