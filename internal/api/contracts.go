package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ListContracts fetches a page of options contracts from the reference
// endpoint.
func (c *Client) ListContracts(ctx context.Context, opts ListContractsOptions) (*ContractsResponse, error) {
	query := url.Values{}

	if opts.UnderlyingTicker != "" {
		query.Set("underlying_ticker", opts.UnderlyingTicker)
	}
	if opts.ContractType != "" {
		query.Set("contract_type", opts.ContractType)
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	var resp ContractsResponse
	if err := c.get(ctx, "/v3/reference/options/contracts", query, &resp); err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}

	return &resp, nil
}
