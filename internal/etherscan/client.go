package etherscan

import "context"

// Client defines the interface for interacting with the Etherscan API.
// An individual client instance is bound to a particular API deployment and
// API key.
type Client interface {
	// GetAccountTransactions retrieves the transactions executed against the
	// account address described by the given query, in the order returned by
	// the API. An account with no matching transactions yields an empty
	// slice, not an error.
	GetAccountTransactions(ctx context.Context, query TransactionQuery) ([]Record, error)
}
