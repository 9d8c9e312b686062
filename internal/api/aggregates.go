package api

import (
	"context"
	"fmt"
	"time"
)

// GetPreviousClose fetches the previous trading session's daily aggregate for
// a ticker. Works for both equity and option contract tickers.
func (c *Client) GetPreviousClose(ctx context.Context, ticker string) (*AggsResponse, error) {
	var resp AggsResponse
	if err := c.get(ctx, "/v2/aggs/ticker/"+ticker+"/prev", nil, &resp); err != nil {
		return nil, fmt.Errorf("get previous close %s: %w", ticker, err)
	}
	return &resp, nil
}

// GetDailyAggregate fetches the daily aggregate for a ticker on a single day.
// Used as the price fallback when the previous-close endpoint returns nothing.
func (c *Client) GetDailyAggregate(ctx context.Context, ticker string, day time.Time) (*AggsResponse, error) {
	d := day.Format("2006-01-02")

	var resp AggsResponse
	path := "/v2/aggs/ticker/" + ticker + "/range/1/day/" + d + "/" + d
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get daily aggregate %s: %w", ticker, err)
	}
	return &resp, nil
}
