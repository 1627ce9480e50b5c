package catalog

import "github.com/goodnatureofminers/blockforge-backend/internal/contract/model"

// Features returns the feature table shown in the builder.
// Block messages here are the feature-flavoured variants of the generic blocks.
func Features() []model.Feature {
	return []model.Feature{
		{
			ID:          model.Loyalty,
			Name:        "Loyalty Program",
			Description: "Points and rewards program for customers",
			Category:    model.CategoryRetail,
			Blocks: []model.BlockDescriptor{
				{
					Type:    model.TagTokenCreate,
					Message: "Create reward token %1 %2",
					Args:    []model.ArgSlot{textField("NAME", "MyToken"), textField("SYMBOL", "MTK")},
					Colour:  colourToken,
					Tooltip: "Creates a token for the loyalty program",
					Feature: model.Loyalty,
				},
				{
					Type:    model.TagTokenMint,
					Message: "Award %1 points to %2",
					Args:    []model.ArgSlot{numberInput("AMOUNT"), addressInput("TO")},
					Colour:  colourToken,
					Tooltip: "Awards reward points",
					Feature: model.Loyalty,
				},
			},
		},
		{
			ID:          model.Certificates,
			Name:        "Digital Certificates",
			Description: "Issue verifiable certificates on chain",
			Category:    model.CategoryEducation,
			Blocks: []model.BlockDescriptor{
				{
					Type:    model.TagNFTCreate,
					Message: "Create certificate %1 %2",
					Args:    []model.ArgSlot{textField("NAME", "MyNFT"), textField("SYMBOL", "MNF")},
					Colour:  colourNFT,
					Tooltip: "Creates an NFT certificate registry",
					Feature: model.Certificates,
				},
				{
					Type:    model.TagNFTMint,
					Message: "Issue certificate to %1",
					Args:    []model.ArgSlot{addressInput("TO")},
					Colour:  colourNFT,
					Tooltip: "Issues a digital certificate",
					Feature: model.Certificates,
				},
			},
		},
		{
			ID:          model.Governance,
			Name:        "Community Governance",
			Description: "Voting system for community decisions",
			Category:    model.CategoryDAO,
			Blocks: []model.BlockDescriptor{
				{
					Type:    model.TagProposalCreate,
					Message: "Create proposal: %1",
					Args:    []model.ArgSlot{textField("DESCRIPTION", "New proposal")},
					Colour:  colourGovernance,
					Tooltip: "Creates a governance proposal",
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
					Tooltip: "Casts a vote on the proposal",
					Feature: model.Governance,
				},
			},
		},
		{
			ID:          model.Marketplace,
			Name:        "Local Marketplace",
			Description: "Platform for buying and selling local products",
			Category:    model.CategoryEcommerce,
			Blocks: []model.BlockDescriptor{
				{
					Type:    model.TagItemList,
					Message: "List product for %1 tokens",
					Args:    []model.ArgSlot{numberInput("PRICE")},
					Colour:  colourMarketplace,
					Tooltip: "Lists a product on the marketplace",
					Feature: model.Marketplace,
				},
				{
					Type:    model.TagItemBuy,
					Message: "Buy product %1",
					Args:    []model.ArgSlot{numberInput("ITEM_ID")},
					Colour:  colourMarketplace,
					Tooltip: "Buys a product from the marketplace",
					Feature: model.Marketplace,
				},
			},
		},
	}
}
