package codegen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/solidity"
)

// Workspace is the editor's JSON serialization of a workspace.
type Workspace struct {
	Blocks struct {
		LanguageVersion int    `json:"languageVersion"`
		Blocks          []Node `json:"blocks"`
	} `json:"blocks"`
}

// Node is a serialized block with its fields, value inputs and statement chain.
type Node struct {
	Type   string                     `json:"type"`
	ID     string                     `json:"id,omitempty"`
	Fields map[string]json.RawMessage `json:"fields,omitempty"`
	Inputs map[string]Connection      `json:"inputs,omitempty"`
	Next   *Connection                `json:"next,omitempty"`
}

// Connection links a block to the block plugged into an input or into next.
type Connection struct {
	Block  *Node `json:"block,omitempty"`
	Shadow *Node `json:"shadow,omitempty"`
}

func (c *Connection) target() *Node {
	if c == nil {
		return nil
	}
	if c.Block != nil {
		return c.Block
	}
	return c.Shadow
}

// DecodeWorkspace parses a serialized workspace into typed blocks.
func DecodeWorkspace(data []byte) ([]Block, error) {
	var ws Workspace
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&ws); err != nil {
		return nil, fmt.Errorf("decode workspace: %w", err)
	}
	return Convert(ws.Blocks.Blocks), nil
}

// Convert turns top-level nodes into typed blocks. Each top-level node is followed
// by the blocks of its next chain. Require and emit blocks directly below a
// function become that function's body.
func Convert(nodes []Node) []Block {
	out := make([]Block, 0, len(nodes))
	for i := range nodes {
		out = appendChain(out, &nodes[i])
	}
	return out
}

func appendChain(out []Block, n *Node) []Block {
	fn := -1
	for ; n != nil; n = n.Next.target() {
		b := convertNode(n)
		switch b.(type) {
		case RequireStatement, EmitEvent:
			if fn >= 0 {
				out[fn] = withStatement(out[fn], b)
				continue
			}
		}
		fn = -1
		switch b.(type) {
		case FunctionPublic, FunctionPrivate:
			fn = len(out)
		}
		out = append(out, b)
	}
	return out
}

func withStatement(fn, stmt Block) Block {
	switch v := fn.(type) {
	case FunctionPublic:
		v.Body = append(v.Body, stmt)
		return v
	case FunctionPrivate:
		v.Body = append(v.Body, stmt)
		return v
	}
	return fn
}

func convertNode(n *Node) Block {
	m := Meta{BlockID: n.ID}
	switch model.BlockTag(n.Type) {
	case model.TagContractStart:
		return ContractStart{Meta: m}
	case model.TagVariableDeclare:
		return VariableDeclare{Meta: m, Name: n.field("NAME"), Type: n.field("TYPE")}
	case model.TagFunctionPublic:
		return FunctionPublic{Meta: m, Name: n.field("NAME")}
	case model.TagFunctionPrivate:
		return FunctionPrivate{Meta: m, Name: n.field("NAME")}
	case model.TagModifierOnlyOwner:
		return ModifierOnlyOwner{Meta: m}
	case model.TagRequireStatement:
		return RequireStatement{Meta: m, Condition: n.input("CONDITION")}
	case model.TagEmitEvent:
		return EmitEvent{Meta: m, EventName: n.field("EVENT_NAME")}
	case model.TagTokenCreate:
		return TokenCreate{Meta: m, Name: n.field("NAME"), Symbol: n.field("SYMBOL")}
	case model.TagTokenMint:
		return TokenMint{Meta: m, Amount: n.input("AMOUNT"), To: n.input("TO")}
	case model.TagTokenTransfer:
		return TokenTransfer{Meta: m, Amount: n.input("AMOUNT"), To: n.input("TO")}
	case model.TagNFTCreate:
		return NFTCreate{Meta: m, Name: n.field("NAME"), Symbol: n.field("SYMBOL")}
	case model.TagNFTMint:
		return NFTMint{Meta: m, TokenID: n.input("TOKEN_ID"), To: n.input("TO")}
	case model.TagProposalCreate:
		return ProposalCreate{Meta: m, Description: n.field("DESCRIPTION")}
	case model.TagVoteCast:
		return VoteCast{Meta: m, Vote: n.field("VOTE"), ProposalID: n.input("PROPOSAL_ID")}
	case model.TagItemList:
		return ItemList{Meta: m, ItemID: n.input("ITEM_ID"), Price: n.input("PRICE")}
	case model.TagItemBuy:
		return ItemBuy{Meta: m, ItemID: n.input("ITEM_ID")}
	default:
		return Unknown{Meta: m, Type: n.Type}
	}
}

// field returns a field value as text, or "" when the field is absent or null.
func (n *Node) field(name string) string {
	raw, ok := n.Fields[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	v := strings.TrimSpace(string(raw))
	if v == "null" {
		return ""
	}
	return v
}

// input renders the block plugged into a value input as a Solidity expression.
func (n *Node) input(name string) string {
	c, ok := n.Inputs[name]
	if !ok {
		return ""
	}
	t := c.target()
	if t == nil {
		return ""
	}
	switch t.Type {
	case "math_number":
		return t.field("NUM")
	case "text":
		return solidity.Quote(t.field("TEXT"))
	case "logic_boolean":
		return strings.ToLower(t.field("BOOL"))
	default:
		return t.field("VALUE")
	}
}
