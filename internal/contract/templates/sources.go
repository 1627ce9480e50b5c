package templates

const loyaltySource = `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.28;

contract __CONTRACT__ {
    string public name = __NAME__;
    string public symbol = __SYMBOL__;
    uint8 public decimals = __DECIMALS__;
    uint256 public totalSupply;

    mapping(address => uint256) public balanceOf;
    mapping(address => mapping(address => uint256)) public allowance;

    address public owner;

    event Transfer(address indexed from, address indexed to, uint256 value);
    event Approval(address indexed owner, address indexed spender, uint256 value);

    constructor() {
        owner = msg.sender;
        totalSupply = __INITIAL_SUPPLY__ * 10**uint256(decimals);
        balanceOf[msg.sender] = totalSupply;

        emit Transfer(address(0), msg.sender, totalSupply);
    }

    modifier onlyOwner() {
        require(msg.sender == owner, "Not authorized");
        _;
    }

    function transfer(address to, uint256 amount) public returns (bool) {
        require(balanceOf[msg.sender] >= amount, "Insufficient balance");
        balanceOf[msg.sender] -= amount;
        balanceOf[to] += amount;
        emit Transfer(msg.sender, to, amount);
        return true;
    }

    function approve(address spender, uint256 amount) public returns (bool) {
        allowance[msg.sender][spender] = amount;
        emit Approval(msg.sender, spender, amount);
        return true;
    }

    function transferFrom(address from, address to, uint256 amount) public returns (bool) {
        require(balanceOf[from] >= amount, "Insufficient balance");
        require(allowance[from][msg.sender] >= amount, "Insufficient allowance");

        balanceOf[from] -= amount;
        balanceOf[to] += amount;
        allowance[from][msg.sender] -= amount;

        emit Transfer(from, to, amount);
        return true;
    }

    function mint(address to, uint256 amount) public onlyOwner {
        totalSupply += amount;
        balanceOf[to] += amount;
        emit Transfer(address(0), to, amount);
    }

    function burn(uint256 amount) public {
        require(balanceOf[msg.sender] >= amount, "Insufficient balance");
        balanceOf[msg.sender] -= amount;
        totalSupply -= amount;
        emit Transfer(msg.sender, address(0), amount);
    }
}
`

const certificatesSource = `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.28;

contract __CONTRACT__ {
    string public name = __NAME__;
    string public symbol = __SYMBOL__;
    uint256 public nextTokenId = 1;

    mapping(uint256 => address) public ownerOf;
    mapping(address => uint256) public balanceOf;
    mapping(uint256 => string) public tokenURI;

    address public owner;

    event Transfer(address indexed from, address indexed to, uint256 indexed tokenId);
    event Mint(address indexed to, uint256 indexed tokenId);

    constructor() {
        owner = msg.sender;
    }

    modifier onlyOwner() {
        require(msg.sender == owner, "Not authorized");
        _;
    }

    function mint(address to, string memory uri) public onlyOwner returns (uint256) {
        uint256 tokenId = nextTokenId++;
        ownerOf[tokenId] = to;
        balanceOf[to]++;
        tokenURI[tokenId] = uri;

        emit Transfer(address(0), to, tokenId);
        emit Mint(to, tokenId);

        return tokenId;
    }

    function transfer(address to, uint256 tokenId) public {
        require(ownerOf[tokenId] == msg.sender, "Not the token owner");
        ownerOf[tokenId] = to;
        balanceOf[msg.sender]--;
        balanceOf[to]++;

        emit Transfer(msg.sender, to, tokenId);
    }

    function setTokenURI(uint256 tokenId, string memory uri) public {
        require(ownerOf[tokenId] == msg.sender, "Not the token owner");
        tokenURI[tokenId] = uri;
    }
}
`

const governanceSource = `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.28;

contract __CONTRACT__ {
    struct Proposal {
        string description;
        uint256 yesVotes;
        uint256 noVotes;
        uint256 startTime;
        uint256 endTime;
        bool executed;
        address proposer;
    }

    mapping(uint256 => Proposal) public proposals;
    mapping(uint256 => mapping(address => bool)) public hasVoted;
    mapping(address => bool) public isMember;

    uint256 public nextProposalId;
    uint256 public votingDuration = __VOTING_DURATION__;
    address public owner;

    event ProposalCreated(uint256 indexed proposalId, address indexed proposer);
    event VoteCast(uint256 indexed proposalId, address indexed voter, bool support);
    event ProposalExecuted(uint256 indexed proposalId);

    constructor() {
        owner = msg.sender;
        isMember[msg.sender] = true;
    }

    modifier onlyMember() {
        require(isMember[msg.sender], "Not a member");
        _;
    }

    modifier onlyOwner() {
        require(msg.sender == owner, "Not authorized");
        _;
    }

    function addMember(address member) public onlyOwner {
        isMember[member] = true;
    }

    function createProposal(string memory description) public onlyMember returns (uint256) {
        uint256 proposalId = nextProposalId++;
        proposals[proposalId] = Proposal({
            description: description,
            yesVotes: 0,
            noVotes: 0,
            startTime: block.timestamp,
            endTime: block.timestamp + votingDuration,
            executed: false,
            proposer: msg.sender
        });

        emit ProposalCreated(proposalId, msg.sender);
        return proposalId;
    }

    function vote(uint256 proposalId, bool support) public onlyMember {
        Proposal storage proposal = proposals[proposalId];
        require(block.timestamp <= proposal.endTime, "Voting closed");
        require(!hasVoted[proposalId][msg.sender], "Already voted");

        hasVoted[proposalId][msg.sender] = true;

        if (support) {
            proposal.yesVotes++;
        } else {
            proposal.noVotes++;
        }

        emit VoteCast(proposalId, msg.sender, support);
    }

    function executeProposal(uint256 proposalId) public onlyMember {
        Proposal storage proposal = proposals[proposalId];
        require(block.timestamp > proposal.endTime, "Voting still open");
        require(!proposal.executed, "Proposal already executed");
        require(proposal.yesVotes > proposal.noVotes, "Proposal rejected");

        proposal.executed = true;
        emit ProposalExecuted(proposalId);
    }
}
`

const marketplaceSource = `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.28;

contract __CONTRACT__ {
    struct Item {
        uint256 id;
        address seller;
        uint256 price;
        bool isActive;
        string metadata;
    }

    mapping(uint256 => Item) public items;
    mapping(address => uint256[]) public userItems;

    uint256 public nextItemId;
    address public owner;
    // basis points, 100 = 1%
    uint256 public platformFee = __PLATFORM_FEE__;

    event ItemListed(uint256 indexed itemId, address indexed seller, uint256 price);
    event ItemSold(uint256 indexed itemId, address indexed buyer, uint256 price);
    event ItemDelisted(uint256 indexed itemId);

    constructor() {
        owner = msg.sender;
    }

    modifier onlyOwner() {
        require(msg.sender == owner, "Not authorized");
        _;
    }

    function listItem(uint256 price, string memory metadata) public returns (uint256) {
        require(price > 0, "Price must be greater than 0");

        uint256 itemId = nextItemId++;
        items[itemId] = Item({
            id: itemId,
            seller: msg.sender,
            price: price,
            isActive: true,
            metadata: metadata
        });

        userItems[msg.sender].push(itemId);

        emit ItemListed(itemId, msg.sender, price);
        return itemId;
    }

    function buyItem(uint256 itemId) public payable {
        Item storage item = items[itemId];
        require(item.isActive, "Item not available");
        require(msg.value >= item.price, "Insufficient payment");
        require(msg.sender != item.seller, "Cannot buy your own item");

        item.isActive = false;

        uint256 fee = (item.price * platformFee) / 10000;
        uint256 sellerAmount = item.price - fee;

        payable(item.seller).transfer(sellerAmount);
        if (fee > 0) {
            payable(owner).transfer(fee);
        }

        if (msg.value > item.price) {
            payable(msg.sender).transfer(msg.value - item.price);
        }

        emit ItemSold(itemId, msg.sender, item.price);
    }

    function delistItem(uint256 itemId) public {
        Item storage item = items[itemId];
        require(item.seller == msg.sender, "Not the seller");
        require(item.isActive, "Item is not active");

        item.isActive = false;
        emit ItemDelisted(itemId);
    }

    function updatePlatformFee(uint256 newFee) public onlyOwner {
        require(newFee <= 1000, "Fee cannot exceed 10%");
        platformFee = newFee;
    }
}
`
