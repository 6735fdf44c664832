package component

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jrh3k5/cryptonabber-etherscan-export/internal/config"
	"github.com/jrh3k5/cryptonabber-etherscan-export/internal/eth"
	"github.com/jrh3k5/cryptonabber-etherscan-export/internal/etherscan"
	"github.com/jrh3k5/cryptonabber-etherscan-export/internal/export"
	ctshttp "github.com/jrh3k5/cryptonabber-etherscan-export/internal/http"
)

// OutputTableName is the file name of the table this component produces.
const OutputTableName = "output.csv"

// Component runs one extraction: validate configuration, normalize the
// account address, fetch the transaction page, and write the output table
// with its manifest.
type Component struct {
	dataDir    string
	doer       ctshttp.Doer
	apiBaseURL string
}

// New returns a Component operating on the given data directory, calling the
// Etherscan API deployment at the given base URL through the given HTTP
// client.
func New(dataDir string, doer ctshttp.Doer, apiBaseURL string) *Component {
	return &Component{
		dataDir:    dataDir,
		doer:       doer,
		apiBaseURL: apiBaseURL,
	}
}

// Run executes the extraction for the given configuration parameters.
// Configuration and address-format failures are returned as UserErrors;
// anything else is a system failure.
func (c *Component) Run(ctx context.Context, params *config.Parameters) error {
	// fail fast on configuration problems before any network traffic
	if err := params.ValidateRequired(); err != nil {
		return NewUserError(err)
	}

	checksummedAddress, err := eth.ChecksumAddress(params.Address)
	if err != nil {
		return NewUserError(fmt.Errorf("invalid value for parameter '%s': %w", config.KeyAddress, err))
	}

	tablePath := config.OutTablePath(c.dataDir, OutputTableName)

	slog.InfoContext(ctx, fmt.Sprintf("Writing output table to '%s'", tablePath))

	client := etherscan.NewHTTPClient(c.doer, c.apiBaseURL, params.APIKey)

	records, err := client.GetAccountTransactions(ctx, etherscan.TransactionQuery{
		Address:    checksummedAddress,
		StartBlock: params.StartBlock,
		EndBlock:   params.EndBlock,
		Page:       params.Page,
		Offset:     params.Offset,
		Sort:       params.Sort,
	})
	if err != nil {
		return fmt.Errorf(
			"failed to retrieve transactions for address '%s': %w",
			checksummedAddress,
			err,
		)
	}

	slog.InfoContext(
		ctx,
		fmt.Sprintf("Retrieved %d transaction(s) for address '%s'", len(records), checksummedAddress),
	)

	if err := export.WriteTableFile(tablePath, records); err != nil {
		return err
	}

	// the manifest is only written once the table content is on disk
	manifest := export.Manifest{
		Incremental: true,
		PrimaryKey:  []string{"timestamp"},
	}

	return export.WriteManifest(tablePath, manifest)
}
