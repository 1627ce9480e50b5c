package templates

import (
	"strings"

	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
)

const combinedHeader = `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.28;

contract __CONTRACT__ {
    address public owner;

    constructor() {
        owner = msg.sender;
    }

    modifier onlyOwner() {
        require(msg.sender == owner, "Not authorized");
        _;
    }
`

const combinedFooter = `
    // Utility functions
    function getBalance() public view returns (uint256) {
        return address(this).balance;
    }

    function withdraw() public onlyOwner {
        payable(owner).transfer(address(this).balance);
    }

    receive() external payable {}
}
`

const scaffoldBody = `
    // Select features from the side panel
    // or drag blocks into the workspace to generate code
}
`

var combinedFragments = map[model.FeatureID]string{
	model.Loyalty: `
    string public name = __NAME__;
    string public symbol = __SYMBOL__;
    uint8 public decimals = __DECIMALS__;
    uint256 public totalSupply = 0;
    mapping(address => uint256) public balanceOf;
    mapping(address => uint256) public lastPurchase;

    function awardPoints(address to, uint256 amount) public onlyOwner {
        totalSupply += amount;
        balanceOf[to] += amount;
        lastPurchase[to] = block.timestamp;
    }

    function redeemPoints(uint256 amount) public {
        require(balanceOf[msg.sender] >= amount, "Insufficient points");
        balanceOf[msg.sender] -= amount;
        totalSupply -= amount;
    }
`,
	model.Certificates: `
    uint256 public nextTokenId = 1;
    mapping(uint256 => address) public ownerOf;
    mapping(uint256 => string) public certificateData;
    mapping(address => uint256) public certificateBalance;

    function issueCertificate(address to, string memory data) public onlyOwner returns (uint256) {
        uint256 tokenId = nextTokenId++;
        ownerOf[tokenId] = to;
        certificateData[tokenId] = data;
        certificateBalance[to]++;
        return tokenId;
    }

    function verifyCertificate(uint256 tokenId) public view returns (bool) {
        return ownerOf[tokenId] != address(0);
    }
`,
	model.Governance: `
    struct Proposal {
        string description;
        uint256 yesVotes;
        uint256 noVotes;
        uint256 endTime;
        bool executed;
        address proposer;
    }
    mapping(uint256 => Proposal) public proposals;
    mapping(uint256 => mapping(address => bool)) public hasVoted;
    uint256 public nextProposalId = 1;
    uint256 public votingDuration = __VOTING_DURATION__;

    function createProposal(string memory description) public onlyOwner returns (uint256) {
        uint256 proposalId = nextProposalId++;
        proposals[proposalId] = Proposal({
            description: description,
            yesVotes: 0,
            noVotes: 0,
            endTime: block.timestamp + votingDuration,
            executed: false,
            proposer: msg.sender
        });
        return proposalId;
    }

    function vote(uint256 proposalId, bool support) public {
        require(block.timestamp <= proposals[proposalId].endTime, "Voting closed");
        require(!hasVoted[proposalId][msg.sender], "Already voted");

        hasVoted[proposalId][msg.sender] = true;
        if (support) {
            proposals[proposalId].yesVotes++;
        } else {
            proposals[proposalId].noVotes++;
        }
    }
`,
	model.Marketplace: `
    struct Product {
        uint256 id;
        address seller;
        string name;
        uint256 price;
        bool isActive;
        string description;
    }
    mapping(uint256 => Product) public products;
    uint256 public nextProductId = 1;
    uint256 public platformFee = __PLATFORM_FEE__;

    function listProduct(string memory productName, uint256 price, string memory description) public returns (uint256) {
        uint256 productId = nextProductId++;
        products[productId] = Product({
            id: productId,
            seller: msg.sender,
            name: productName,
            price: price,
            isActive: true,
            description: description
        });
        return productId;
    }

    function buyProduct(uint256 productId) public payable {
        Product storage product = products[productId];
        require(product.isActive, "Product not available");
        require(msg.value >= product.price, "Insufficient payment");

        product.isActive = false;

        uint256 fee = (product.price * platformFee) / 10000;
        uint256 sellerAmount = product.price - fee;

        payable(product.seller).transfer(sellerAmount);
        if (fee > 0) {
            payable(owner).transfer(fee);
        }
    }
`,
}

func scaffold() string {
	return combinedHeader + scaffoldBody
}

func combined(ids []model.FeatureID, titles map[model.FeatureID]string) string {
	var sb strings.Builder
	sb.WriteString(combinedHeader)
	for _, id := range ids {
		sb.WriteString("\n    // " + titles[id] + " functions:")
		sb.WriteString(combinedFragments[id])
	}
	sb.WriteString(combinedFooter)
	return sb.String()
}
