package domain

// Table is a mongo collection name.
type Table string

const (
	TableAccounts    Table = "accounts"
	TableBalances    Table = "balances"
	TableAllowances  Table = "allowances"
	TableContracts   Table = "contracts"
	TableHoldings    Table = "holdings"
	TableApprovals   Table = "approvals"
	TableListings    Table = "listings"
	TableOffers      Table = "offers"
	TableWinningBids Table = "winning_bids"
	TableEscrows     Table = "escrows"
	TableCredits     Table = "credits"
	TableEvents      Table = "events"
	TableCounters    Table = "counters"
	TablePlatform    Table = "platform"
	TablePayTokens   Table = "paytokens"
)
