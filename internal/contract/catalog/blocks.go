package catalog

import "github.com/goodnatureofminers/blockforge-backend/internal/contract/model"

var (
	colourConstruct   = "#FF6B35"
	colourToken       = "#4CAF50"
	colourNFT         = "#9C27B0"
	colourGovernance  = "#FF9800"
	colourMarketplace = "#2196F3"
	colourStandard    = "#5C81A6"
)

func numberInput(name string) model.ArgSlot {
	return model.ArgSlot{Kind: model.ArgInputValue, Name: name, Check: "Number", Default: "0"}
}

func addressInput(name string) model.ArgSlot {
	return model.ArgSlot{Kind: model.ArgInputValue, Name: name, Check: "String", Default: "msg.sender"}
}

func textField(name, def string) model.ArgSlot {
	return model.ArgSlot{Kind: model.ArgFieldInput, Name: name, Default: def}
}

// ConstructionBlocks returns the general-purpose contract construction blocks.
func ConstructionBlocks() []model.BlockDescriptor {
	return []model.BlockDescriptor{
		{
			Type:    model.TagContractStart,
			Message: "Start contract",
			Colour:  colourConstruct,
			Tooltip: "Starts a smart contract definition",
		},
		{
			Type:    model.TagVariableDeclare,
			Message: "Declare variable %1 of type %2",
			Args: []model.ArgSlot{
				textField("NAME", "myVariable"),
				{
					Kind:    model.ArgFieldDropdown,
					Name:    "TYPE",
					Default: "uint256",
					Options: []model.Option{
						{Label: "uint256", Value: "uint256"},
						{Label: "address", Value: "address"},
						{Label: "string", Value: "string"},
						{Label: "bool", Value: "bool"},
						{Label: "mapping", Value: "mapping"},
					},
				},
			},
			Colour:  "#4A90E2",
			Tooltip: "Declares a new contract state variable",
		},
		{
			Type:    model.TagFunctionPublic,
			Message: "Public function %1",
			Args:    []model.ArgSlot{textField("NAME", "myFunction")},
			Colour:  "#7ED321",
			Tooltip: "Defines a public function",
		},
		{
			Type:    model.TagFunctionPrivate,
			Message: "Private function %1",
			Args:    []model.ArgSlot{textField("NAME", "myFunction")},
			Colour:  "#F5A623",
			Tooltip: "Defines a private function",
		},
		{
			Type:    model.TagModifierOnlyOwner,
			Message: "Only the owner can execute",
			Colour:  "#D0021B",
			Tooltip: "Modifier restricting access to the contract owner",
		},
		{
			Type:    model.TagRequireStatement,
			Message: "Require that %1",
			Args:    []model.ArgSlot{{Kind: model.ArgInputValue, Name: "CONDITION", Check: "Boolean", Default: "true"}},
			Colour:  "#9013FE",
			Tooltip: "Checks a condition and reverts the transaction when it is false",
		},
		{
			Type:    model.TagEmitEvent,
			Message: "Emit event %1",
			Args:    []model.ArgSlot{textField("EVENT_NAME", "MyEvent")},
			Colour:  "#50E3C2",
			Tooltip: "Emits a contract event",
		},
	}
}

// FeatureBlocks returns the generic descriptors of every feature block.
func FeatureBlocks() []model.BlockDescriptor {
	return []model.BlockDescriptor{
		{
			Type:    model.TagTokenCreate,
			Message: "Create token %1 %2",
			Args:    []model.ArgSlot{textField("NAME", "MyToken"), textField("SYMBOL", "MTK")},
			Colour:  colourToken,
			Tooltip: "Creates a new ERC20 token",
			Feature: model.Loyalty,
		},
		{
			Type:    model.TagTokenMint,
			Message: "Mint %1 tokens to %2",
			Args:    []model.ArgSlot{numberInput("AMOUNT"), addressInput("TO")},
			Colour:  colourToken,
			Tooltip: "Mints new tokens to an address",
			Feature: model.Loyalty,
		},
		{
			Type:    model.TagTokenTransfer,
			Message: "Transfer %1 tokens to %2",
			Args:    []model.ArgSlot{numberInput("AMOUNT"), addressInput("TO")},
			Colour:  colourToken,
			Tooltip: "Transfers tokens to another address",
			Feature: model.Loyalty,
		},
		{
			Type:    model.TagNFTCreate,
			Message: "Create NFT %1 %2",
			Args:    []model.ArgSlot{textField("NAME", "MyNFT"), textField("SYMBOL", "MNF")},
			Colour:  colourNFT,
			Tooltip: "Creates a new NFT collection",
			Feature: model.Certificates,
		},
		{
			Type:    model.TagNFTMint,
			Message: "Mint NFT #%1 to %2",
			Args:    []model.ArgSlot{numberInput("TOKEN_ID"), addressInput("TO")},
			Colour:  colourNFT,
			Tooltip: "Mints a new NFT with a specific id",
			Feature: model.Certificates,
		},
		{
			Type:    model.TagProposalCreate,
			Message: "Create proposal: %1",
			Args:    []model.ArgSlot{textField("DESCRIPTION", "New proposal")},
			Colour:  colourGovernance,
			Tooltip: "Creates a new voting proposal",
			Feature: model.Governance,
		},
		{
			Type:    model.TagVoteCast,
			Message: "Vote %1 on proposal %2",
			Args: []model.ArgSlot{
				{
					Kind:    model.ArgFieldDropdown,
					Name:    "VOTE",
					Default: "yes",
					Options: []model.Option{
						{Label: "Yes", Value: "yes"},
						{Label: "No", Value: "no"},
						{Label: "Abstain", Value: "abstain"},
					},
				},
				numberInput("PROPOSAL_ID"),
			},
			Colour:  colourGovernance,
			Tooltip: "Casts a vote on a proposal",
			Feature: model.Governance,
		},
		{
			Type:    model.TagItemList,
			Message: "List item %1 for %2 tokens",
			Args:    []model.ArgSlot{numberInput("ITEM_ID"), numberInput("PRICE")},
			Colour:  colourMarketplace,
			Tooltip: "Lists an item on the marketplace",
			Feature: model.Marketplace,
		},
		{
			Type:    model.TagItemBuy,
			Message: "Buy item %1",
			Args:    []model.ArgSlot{numberInput("ITEM_ID")},
			Colour:  colourMarketplace,
			Tooltip: "Buys an item from the marketplace",
			Feature: model.Marketplace,
		},
	}
}
