package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/photonscan/internal/txfeed"
	"github.com/gabapcia/photonscan/internal/txlookup"
	"github.com/gabapcia/photonscan/internal/txsummary"

	"github.com/redis/go-redis/v9"
)

// summaryKeyPrefix is the namespace of cached transaction summaries.
const summaryKeyPrefix = "txsummary"

// summaryKey returns the key of a summary.
//
// Format: "txsummary:<HASH>"
func summaryKey(hash string) string {
	return fmt.Sprintf("%s:%s", summaryKeyPrefix, hash)
}

// GetSummary returns the cached summary of hash, or txlookup.ErrCacheMiss.
func (c *client) GetSummary(ctx context.Context, hash string) (txsummary.Summary, error) {
	data, err := c.conn.Get(ctx, summaryKey(hash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = txlookup.ErrCacheMiss
		}
		return txsummary.Summary{}, err
	}

	var summary txsummary.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return txsummary.Summary{}, fmt.Errorf("decode cached summary: %w", err)
	}
	return summary, nil
}

// PutSummary caches summary for the configured TTL. Partial summaries are
// not cached so that a later lookup can complete them.
func (c *client) PutSummary(ctx context.Context, summary txsummary.Summary) error {
	if summary.Partial {
		return nil
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.conn.Set(ctx, summaryKey(summary.Hash), data, c.summaryTTL).Err()
}

// NotifyTransactions caches every complete summary added to the feed in one
// round trip.
func (c *client) NotifyTransactions(ctx context.Context, summaries []txsummary.Summary) error {
	pipe := c.conn.Pipeline()
	for _, summary := range summaries {
		if summary.Partial {
			continue
		}

		data, err := json.Marshal(summary)
		if err != nil {
			return err
		}
		pipe.Set(ctx, summaryKey(summary.Hash), data, c.summaryTTL)
	}

	if pipe.Len() == 0 {
		return nil
	}

	_, err := pipe.Exec(ctx)
	return err
}

var (
	_ txlookup.Cache             = new(client)
	_ txfeed.TransactionNotifier = new(client)
)
