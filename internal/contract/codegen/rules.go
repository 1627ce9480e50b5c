package codegen

import (
	"fmt"

	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/solidity"
)

const (
	markerToken          = "token"
	markerTokenMint      = "token_mint"
	markerTokenTransfer  = "token_transfer"
	markerNFT            = "nft"
	markerNFTMint        = "nft_mint"
	markerGovernance     = "governance"
	markerVoting         = "voting"
	markerMarketplace    = "marketplace"
	markerMarketplaceBuy = "marketplace_buy"
)

// DefaultRules returns the rule table for every catalogued block.
func DefaultRules() map[model.BlockTag]Rule {
	return map[model.BlockTag]Rule{
		model.TagContractStart:     func(*Emitter, Block) {},
		model.TagModifierOnlyOwner: func(*Emitter, Block) {},
		model.TagVariableDeclare:   typed(variableDeclare),
		model.TagFunctionPublic:    typed(func(e *Emitter, b FunctionPublic) { function(e, b, b.Name, "public", b.Body) }),
		model.TagFunctionPrivate:   typed(func(e *Emitter, b FunctionPrivate) { function(e, b, b.Name, "private", b.Body) }),
		model.TagRequireStatement:  typed(requireOutsideFunction),
		model.TagEmitEvent:         typed(emitEventDeclaration),
		model.TagTokenCreate:       typed(func(e *Emitter, b TokenCreate) { tokenDeclarations(e, b) }),
		model.TagTokenMint:         typed(tokenMint),
		model.TagTokenTransfer:     typed(tokenTransfer),
		model.TagNFTCreate:         typed(func(e *Emitter, b NFTCreate) { nftDeclarations(e, b) }),
		model.TagNFTMint:           typed(nftMint),
		model.TagProposalCreate:    typed(proposalCreate),
		model.TagVoteCast:          typed(voteCast),
		model.TagItemList:          typed(itemList),
		model.TagItemBuy:           typed(itemBuy),
	}
}

func typed[T Block](fn func(e *Emitter, b T)) Rule {
	return func(e *Emitter, b Block) {
		v, ok := b.(T)
		if !ok {
			var want T
			e.Errorf(b, "", "rule for %s cannot handle %T", want.Tag(), b)
			return
		}
		fn(e, v)
	}
}

// declareUser reserves name for a user declaration. It reports false, with a
// diagnostic, when name is already taken.
func declareUser(e *Emitter, b Block, name string) bool {
	if e.Has("feature:" + name) {
		e.Errorf(b, "NAME", "%s is already declared by a generated feature", name)
		return false
	}
	if !e.Mark("ident:" + name) {
		e.Warnf(b, "NAME", "%s is already declared", name)
		return false
	}
	return true
}

// declareFeature reserves the state variables and functions a feature emits.
// Names already taken by user declarations produce an error diagnostic.
func declareFeature(e *Emitter, b Block, names ...string) {
	for _, name := range names {
		if e.Has("ident:" + name) {
			e.Errorf(b, "", "%s clashes with a declared variable or function", name)
		}
		e.Mark("feature:" + name)
	}
}

func variableDeclare(e *Emitter, b VariableDeclare) {
	name := e.Ident(b, "NAME", b.Name)
	if !declareUser(e, b, name) {
		return
	}
	switch b.Type {
	case "mapping":
		e.Line(fmt.Sprintf("mapping(address => uint256) public %s;", name))
	case "uint256", "address", "string", "bool":
		e.Line(fmt.Sprintf("%s public %s;", b.Type, name))
	default:
		var typ string
		if b.Type == "" {
			typ = e.Value(b, "TYPE", "")
		} else {
			typ = e.catalog.Default(b.Tag(), "TYPE")
			e.Warnf(b, "TYPE", "unsupported type %q, using %s", b.Type, typ)
		}
		e.Line(fmt.Sprintf("%s public %s;", typ, name))
	}
}

func function(e *Emitter, b Block, rawName, visibility string, body []Block) {
	name := e.Ident(b, "NAME", rawName)
	if !declareUser(e, b, name) {
		return
	}
	e.Line(fmt.Sprintf("function %s() %s {", name, visibility))
	if len(body) == 0 {
		e.Line("    // Function logic")
	}
	for _, stmt := range body {
		switch s := stmt.(type) {
		case RequireStatement:
			cond := e.Value(s, "CONDITION", s.Condition)
			e.Line(fmt.Sprintf("    require(%s, \"Condition not met\");", cond))
		case EmitEvent:
			ev := e.Ident(s, "EVENT_NAME", s.EventName)
			e.Event(fmt.Sprintf("event %s();", ev))
			e.Line(fmt.Sprintf("    emit %s();", ev))
		}
	}
	e.Line("}")
}

func requireOutsideFunction(e *Emitter, b RequireStatement) {
	e.Warnf(b, "", "require statement outside a function is ignored")
}

func emitEventDeclaration(e *Emitter, b EmitEvent) {
	ev := e.Ident(b, "EVENT_NAME", b.EventName)
	e.Event(fmt.Sprintf("event %s();", ev))
}

func nameAndSymbol(e *Emitter, tag model.BlockTag) (string, string) {
	name := e.catalog.Default(tag, "NAME")
	symbol := e.catalog.Default(tag, "SYMBOL")
	first, ok := e.First(tag)
	if !ok {
		return name, symbol
	}
	switch v := first.(type) {
	case TokenCreate:
		return e.Value(v, "NAME", v.Name), e.Value(v, "SYMBOL", v.Symbol)
	case NFTCreate:
		return e.Value(v, "NAME", v.Name), e.Value(v, "SYMBOL", v.Symbol)
	}
	return name, symbol
}

func tokenDeclarations(e *Emitter, b Block) {
	if !e.Mark(markerToken) {
		return
	}
	declareFeature(e, b, "name", "symbol", "decimals", "totalSupply", "balanceOf", "allowance")
	name, symbol := nameAndSymbol(e, model.TagTokenCreate)
	e.Line(
		"string public name = "+solidity.Quote(name)+";",
		"string public symbol = "+solidity.Quote(symbol)+";",
		"uint8 public decimals = 18;",
		"uint256 public totalSupply = 0;",
		"mapping(address => uint256) public balanceOf;",
		"mapping(address => mapping(address => uint256)) public allowance;",
	)
}

func tokenMint(e *Emitter, b TokenMint) {
	tokenDeclarations(e, b)
	if e.Mark(markerTokenMint) {
		declareFeature(e, b, "mint")
		e.Line(
			"function mint(address to, uint256 amount) public onlyOwner {",
			`    require(to != address(0), "Invalid address");`,
			"    totalSupply += amount;",
			"    balanceOf[to] += amount;",
			"    emit Transfer(address(0), to, amount);",
			"}",
		)
	}
	e.Line(fmt.Sprintf("// usage: mint(%s, %s)", e.Value(b, "TO", b.To), e.Value(b, "AMOUNT", b.Amount)))
}

func tokenTransfer(e *Emitter, b TokenTransfer) {
	tokenDeclarations(e, b)
	if e.Mark(markerTokenTransfer) {
		declareFeature(e, b, "transfer")
		e.Line(
			"function transfer(address to, uint256 amount) public returns (bool) {",
			`    require(balanceOf[msg.sender] >= amount, "Insufficient balance");`,
			"    balanceOf[msg.sender] -= amount;",
			"    balanceOf[to] += amount;",
			"    emit Transfer(msg.sender, to, amount);",
			"    return true;",
			"}",
		)
	}
	e.Line(fmt.Sprintf("// usage: transfer(%s, %s)", e.Value(b, "TO", b.To), e.Value(b, "AMOUNT", b.Amount)))
}

func nftDeclarations(e *Emitter, b Block) {
	if !e.Mark(markerNFT) {
		return
	}
	declareFeature(e, b, "name", "symbol", "nextTokenId", "ownerOf", "balanceOf")
	name, symbol := nameAndSymbol(e, model.TagNFTCreate)
	e.Line(
		"string public name = "+solidity.Quote(name)+";",
		"string public symbol = "+solidity.Quote(symbol)+";",
		"uint256 public nextTokenId = 1;",
		"mapping(uint256 => address) public ownerOf;",
		"mapping(address => uint256) public balanceOf;",
	)
}

func nftMint(e *Emitter, b NFTMint) {
	nftDeclarations(e, b)
	if e.Mark(markerNFTMint) {
		declareFeature(e, b, "mint")
		e.Line(
			"function mint(address to) public onlyOwner returns (uint256) {",
			`    require(to != address(0), "Invalid address");`,
			"    uint256 tokenId = nextTokenId++;",
			"    ownerOf[tokenId] = to;",
			"    balanceOf[to]++;",
			"    emit Transfer(address(0), to, tokenId);",
			"    return tokenId;",
			"}",
		)
	}
	e.Line(fmt.Sprintf("// usage: mint(%s)", e.Value(b, "TO", b.To)))
}

func governanceDeclarations(e *Emitter, b Block) {
	if !e.Mark(markerGovernance) {
		return
	}
	declareFeature(e, b, "Proposal", "proposals", "nextProposalId", "votingDuration", "createProposal")
	e.Line(
		"struct Proposal {",
		"    string description;",
		"    uint256 yesVotes;",
		"    uint256 noVotes;",
		"    bool executed;",
		"    uint256 deadline;",
		"}",
		"mapping(uint256 => Proposal) public proposals;",
		"uint256 public nextProposalId = 1;",
		"uint256 public votingDuration = 7 days;",
		"function createProposal(string memory description) public onlyOwner returns (uint256) {",
		"    uint256 proposalId = nextProposalId++;",
		"    proposals[proposalId] = Proposal(description, 0, 0, false, block.timestamp + votingDuration);",
		"    emit ProposalCreated(proposalId, description);",
		"    return proposalId;",
		"}",
	)
}

func proposalCreate(e *Emitter, b ProposalCreate) {
	governanceDeclarations(e, b)
	e.Line(fmt.Sprintf("// usage: createProposal(%s)", solidity.Quote(e.Value(b, "DESCRIPTION", b.Description))))
}

func voteCast(e *Emitter, b VoteCast) {
	governanceDeclarations(e, b)
	if e.Mark(markerVoting) {
		declareFeature(e, b, "hasVoted", "vote")
		e.Line(
			"mapping(uint256 => mapping(address => bool)) public hasVoted;",
			"function vote(uint256 proposalId, bool support) public {",
			`    require(proposals[proposalId].deadline > block.timestamp, "Voting closed");`,
			`    require(!hasVoted[proposalId][msg.sender], "Already voted");`,
			"    hasVoted[proposalId][msg.sender] = true;",
			"    if (support) {",
			"        proposals[proposalId].yesVotes++;",
			"    } else {",
			"        proposals[proposalId].noVotes++;",
			"    }",
			"    emit VoteCast(proposalId, msg.sender, support);",
			"}",
		)
	}
	vote := e.Value(b, "VOTE", b.Vote)
	switch vote {
	case "yes", "no":
	case "abstain":
		e.Warnf(b, "VOTE", "abstain is recorded as a vote against")
	default:
		e.Warnf(b, "VOTE", "unknown vote %q is recorded as a vote against", vote)
	}
	e.Line(fmt.Sprintf("// usage: vote(%s, %t)", e.Value(b, "PROPOSAL_ID", b.ProposalID), vote == "yes"))
}

func marketplaceDeclarations(e *Emitter, b Block) {
	if !e.Mark(markerMarketplace) {
		return
	}
	declareFeature(e, b, "Item", "items", "nextItemId", "listItem")
	e.Line(
		"struct Item {",
		"    uint256 id;",
		"    address seller;",
		"    uint256 price;",
		"    bool isListed;",
		"}",
		"mapping(uint256 => Item) public items;",
		"uint256 public nextItemId = 1;",
		"function listItem(uint256 price) public returns (uint256) {",
		"    uint256 itemId = nextItemId++;",
		"    items[itemId] = Item(itemId, msg.sender, price, true);",
		"    emit ItemListed(itemId, msg.sender, price);",
		"    return itemId;",
		"}",
	)
}

func itemList(e *Emitter, b ItemList) {
	marketplaceDeclarations(e, b)
	e.Line(fmt.Sprintf("// usage: listItem(%s)", e.Value(b, "PRICE", b.Price)))
}

func itemBuy(e *Emitter, b ItemBuy) {
	marketplaceDeclarations(e, b)
	if e.Mark(markerMarketplaceBuy) {
		declareFeature(e, b, "buyItem")
		e.Line(
			"function buyItem(uint256 itemId) public payable {",
			"    Item storage item = items[itemId];",
			`    require(item.isListed, "Item not available");`,
			`    require(msg.value >= item.price, "Insufficient payment");`,
			"    item.isListed = false;",
			"    payable(item.seller).transfer(item.price);",
			"    if (msg.value > item.price) {",
			"        payable(msg.sender).transfer(msg.value - item.price);",
			"    }",
			"    emit ItemBought(itemId, msg.sender, item.price);",
			"}",
		)
	}
	e.Line(fmt.Sprintf("// usage: buyItem(%s)", e.Value(b, "ITEM_ID", b.ItemID)))
}
