package character

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/dg-generator/internal/errors"
	redisclient "github.com/KirkDiggler/dg-generator/internal/redis"
)

// AuditOutput reports the result of scanning stored characters
type AuditOutput struct {
	Checked   int
	Corrupted []string
}

// Audit scans every stored character record and reports the keys whose
// payload no longer decodes or whose id does not match its key.
func Audit(ctx context.Context, client redisclient.Client) (*AuditOutput, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client cannot be nil")
	}

	out := &AuditOutput{}
	iter := client.Scan(ctx, 0, characterKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		out.Checked++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			// expired between scan and read, or not a string value
			slog.Warn("Skipping unreadable key", "key", key, "error", err)
			continue
		}

		char, err := decodeCharacter(data)
		if err != nil || char.ID != strings.TrimPrefix(key, characterKeyPrefix) {
			out.Corrupted = append(out.Corrupted, key)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan characters")
	}

	return out, nil
}

// Purge deletes the given keys and returns how many were removed
func Purge(ctx context.Context, client redisclient.Client, keys []string) (int64, error) {
	if client == nil {
		return 0, errors.InvalidArgument("client cannot be nil")
	}
	if len(keys) == 0 {
		return 0, nil
	}

	n, err := client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to delete corrupted characters")
	}
	return n, nil
}
