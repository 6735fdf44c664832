package etherscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	ctshttp "github.com/jrh3k5/cryptonabber-etherscan-export/internal/http"
)

// DefaultBaseURL is the mainnet Etherscan API endpoint.
const DefaultBaseURL = "https://api.etherscan.io/api"

// message returned with status "0" when the account simply has no matching
// transactions; this is a valid, empty result rather than a failure.
const noTransactionsFoundMessage = "No transactions found"

// HTTPClient is a Client backed by the Etherscan HTTP API.
type HTTPClient struct {
	doer    ctshttp.Doer
	baseURL string
	apiKey  string
}

// NewHTTPClient returns a Client that uses the provided HTTP client to call
// the Etherscan API deployment at the given base URL, authenticating with the
// given API key.
func NewHTTPClient(doer ctshttp.Doer, baseURL string, apiKey string) *HTTPClient {
	return &HTTPClient{doer: doer, baseURL: baseURL, apiKey: apiKey}
}

func (c *HTTPClient) GetAccountTransactions(
	ctx context.Context,
	query TransactionQuery,
) ([]Record, error) {
	resolved := query.resolve(ctx)

	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL '%s': %w", c.baseURL, err)
	}

	q := reqURL.Query()
	q.Set("module", "account")
	q.Set("action", "txlist")
	q.Set("address", resolved.address)
	q.Set("startblock", strconv.Itoa(resolved.startBlock))
	q.Set("endblock", strconv.Itoa(resolved.endBlock))
	q.Set("page", strconv.Itoa(resolved.page))
	q.Set("offset", strconv.Itoa(resolved.offset))
	q.Set("sort", resolved.sort)
	q.Set("apikey", c.apiKey)
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for listing transactions: %w", c.redactAPIKey(err))
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		// transport errors embed the request URL, which carries the API key
		return nil, fmt.Errorf("failed to execute request for listing transactions: %w", c.redactAPIKey(err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("etherscan API returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Result  json.RawMessage `json:"result"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode transaction list response: %w", err)
	}

	if envelope.Status != "1" {
		if strings.EqualFold(envelope.Message, noTransactionsFoundMessage) {
			return []Record{}, nil
		}

		return nil, c.apiError(envelope.Message, envelope.Result)
	}

	var records []Record
	if err := json.Unmarshal(envelope.Result, &records); err != nil {
		return nil, fmt.Errorf("failed to decode transaction records: %w", err)
	}

	return records, nil
}

// apiError builds an error for a non-OK envelope. On failures the result
// field often carries a string with additional detail.
func (c *HTTPClient) apiError(message string, result json.RawMessage) error {
	var detail string
	if len(result) > 0 && result[0] == '"' {
		_ = json.Unmarshal(result, &detail)
	}

	if detail != "" && !strings.EqualFold(detail, message) {
		return c.redactAPIKey(fmt.Errorf("etherscan API error: %s: %s", message, detail))
	}

	return c.redactAPIKey(fmt.Errorf("etherscan API error: %s", message))
}

// redactAPIKey strips the API key out of an error's text. The resulting error
// no longer wraps the original, which is deliberate: nothing upstream may
// re-surface the unredacted message.
func (c *HTTPClient) redactAPIKey(err error) error {
	if c.apiKey == "" {
		return err
	}

	message := strings.ReplaceAll(err.Error(), c.apiKey, "***")
	message = strings.ReplaceAll(message, url.QueryEscape(c.apiKey), "***")

	return errors.New(message)
}
