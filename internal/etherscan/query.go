package etherscan

import (
	"context"
	"fmt"
	"log/slog"
)

const (
	DefaultStartBlock = 0
	DefaultEndBlock   = 99999999
	DefaultPage       = 1
	DefaultOffset     = 100

	SortAscending  = "asc"
	SortDescending = "desc"
)

// TransactionQuery describes a single page of an account's transaction
// listing. Optional fields are pointers; a nil field means "use the
// documented default", while a present value - including zero - is passed
// through to the API as given.
type TransactionQuery struct {
	Address    string  // the checksummed account address to list transactions for
	StartBlock *int    // the first block to include; defaults to DefaultStartBlock
	EndBlock   *int    // the last block to include; defaults to DefaultEndBlock
	Page       *int    // the page of results to fetch; defaults to DefaultPage
	Offset     *int    // the number of transactions per page; defaults to DefaultOffset
	Sort       *string // the ordering of results; defaults to SortAscending
}

type resolvedQuery struct {
	address    string
	startBlock int
	endBlock   int
	page       int
	offset     int
	sort       string
}

// resolve applies the documented defaults to any absent optional field.
// Unrecognized sort values fall back to ascending rather than failing the
// run.
func (q TransactionQuery) resolve(ctx context.Context) resolvedQuery {
	resolved := resolvedQuery{
		address:    q.Address,
		startBlock: DefaultStartBlock,
		endBlock:   DefaultEndBlock,
		page:       DefaultPage,
		offset:     DefaultOffset,
		sort:       SortAscending,
	}

	if q.StartBlock != nil {
		resolved.startBlock = *q.StartBlock
	}

	if q.EndBlock != nil {
		resolved.endBlock = *q.EndBlock
	}

	if q.Page != nil {
		resolved.page = *q.Page
	}

	if q.Offset != nil {
		resolved.offset = *q.Offset
	}

	if q.Sort != nil {
		switch *q.Sort {
		case SortAscending, SortDescending:
			resolved.sort = *q.Sort
		default:
			slog.DebugContext(
				ctx,
				fmt.Sprintf(
					"Unrecognized sort value '%s'; falling back to '%s'",
					*q.Sort,
					SortAscending,
				),
			)
		}
	}

	return resolved
}
