// Package codegen turns block graphs into Solidity source.
package codegen

import (
	"strings"

	"github.com/goodnatureofminers/blockforge-backend/internal/contract/catalog"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/solidity"
)

// DefaultContractName is used when the requested name is not a valid identifier.
const DefaultContractName = "MyContract"

// Rule emits the Solidity fragment for one block.
type Rule func(e *Emitter, b Block)

// Result is the outcome of a generation pass.
type Result struct {
	Source      string
	Diagnostics []Diagnostic
	// Features lists the catalog features touched by recognised blocks, in first-use order.
	Features []model.FeatureID
	// Blocks counts recognised blocks, including function bodies.
	Blocks int
}

// Generator renders block graphs with a fixed rule table.
type Generator struct {
	rules   map[model.BlockTag]Rule
	catalog *catalog.Catalog
}

// New creates a generator. The rule table is copied.
func New(rules map[model.BlockTag]Rule, cat *catalog.Catalog) *Generator {
	r := make(map[model.BlockTag]Rule, len(rules))
	for tag, rule := range rules {
		r[tag] = rule
	}
	return &Generator{rules: r, catalog: cat}
}

// Generate renders blocks into a contract called contractName. It never fails;
// problems are reported through Result.Diagnostics.
func (g *Generator) Generate(contractName string, blocks []Block) Result {
	e := newEmitter(g.catalog, blocks)
	// Names declared by the preamble and suffix.
	for _, name := range []string{"owner", "getBalance", "withdraw"} {
		e.Mark("ident:" + name)
	}

	name := contractName
	if !solidity.IsIdentifier(name) {
		e.report(nil, "contract_name", SeverityError, "%q is not a valid contract name, using %s", contractName, DefaultContractName)
		name = DefaultContractName
	}

	var (
		features   []model.FeatureID
		seen       = make(map[model.FeatureID]struct{})
		recognised int
	)
	for _, b := range blocks {
		rule, ok := g.rules[b.Tag()]
		if !ok {
			continue
		}
		recognised++
		if fn, ok := b.(interface{ body() []Block }); ok {
			recognised += len(fn.body())
		}
		desc, known := g.catalog.Block(b.Tag())
		if known && desc.Feature != "" {
			if _, dup := seen[desc.Feature]; !dup {
				seen[desc.Feature] = struct{}{}
				features = append(features, desc.Feature)
			}
		}

		e.Line("")
		if known {
			e.Line("// " + desc.Tooltip)
		}
		rule(e, b)
	}
	if e.Has(markerToken) && e.Has(markerNFT) {
		e.report(nil, "", SeverityError, "token and nft features both declare name, symbol and balanceOf")
	}

	var sb strings.Builder
	writePreamble(&sb, name)
	if recognised == 0 {
		sb.WriteString(indent + "// No blocks in the workspace\n")
		sb.WriteString(indent + "// Add blocks from the side panel to generate code\n")
	} else {
		sb.WriteString(indent + "// Functions generated from blocks:\n")
		for _, l := range e.lines {
			sb.WriteString(l)
			sb.WriteByte('\n')
		}
		if events := featureEvents(e); len(events) > 0 {
			sb.WriteByte('\n')
			for _, ev := range events {
				sb.WriteString(indent + ev + "\n")
			}
		}
	}
	writeSuffix(&sb)

	return Result{
		Source:      sb.String(),
		Diagnostics: e.diags,
		Features:    features,
		Blocks:      recognised,
	}
}

func (f FunctionPublic) body() []Block  { return f.Body }
func (f FunctionPrivate) body() []Block { return f.Body }

func writePreamble(sb *strings.Builder, name string) {
	sb.WriteString("// SPDX-License-Identifier: MIT\n")
	sb.WriteString("pragma solidity ^0.8.28;\n\n")
	sb.WriteString("contract " + name + " {\n")
	sb.WriteString(`    address public owner;

    constructor() {
        owner = msg.sender;
    }

    modifier onlyOwner() {
        require(msg.sender == owner, "Not authorized");
        _;
    }

`)
}

func writeSuffix(sb *strings.Builder) {
	sb.WriteString(`
    // Utility functions
    function getBalance() public view returns (uint256) {
        return address(this).balance;
    }

    function withdraw() public onlyOwner {
        payable(owner).transfer(address(this).balance);
    }

    receive() external payable {}
}
`)
}

// featureEvents returns the event declarations required by the marked features,
// followed by custom events in declaration order.
func featureEvents(e *Emitter) []string {
	var out []string
	if e.Has(markerToken) || e.Has(markerTokenMint) || e.Has(markerTokenTransfer) || e.Has(markerNFT) || e.Has(markerNFTMint) {
		out = append(out, "event Transfer(address indexed from, address indexed to, uint256 value);")
	}
	if e.Has(markerGovernance) {
		out = append(out, "event ProposalCreated(uint256 indexed proposalId, string description);")
	}
	if e.Has(markerVoting) {
		out = append(out, "event VoteCast(uint256 indexed proposalId, address indexed voter, bool support);")
	}
	if e.Has(markerMarketplace) {
		out = append(out, "event ItemListed(uint256 indexed itemId, address indexed seller, uint256 price);")
	}
	if e.Has(markerMarketplaceBuy) {
		out = append(out, "event ItemBought(uint256 indexed itemId, address indexed buyer, uint256 price);")
	}
	return append(out, e.events...)
}
