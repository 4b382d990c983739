package redis

import (
	"context"
	"fmt"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/shelf/internal/db"
)

const (
	scanBatch = 200
	// hgetallBatch bounds the number of HGETALL commands per pipeline.
	hgetallBatch = 256
)

// HGetAllMulti fetches every field of each hash, pipelining HGETALL in
// batches. Missing keys come back as empty maps; the result is aligned
// with keys.
func (s *Store) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	out := make([]map[string]string, 0, len(keys))
	for start := 0; start < len(keys); start += hgetallBatch {
		chunk := keys[start:min(start+hgetallBatch, len(keys))]

		cmds := make([]rueidis.Completed, len(chunk))
		for i, key := range chunk {
			cmds[i] = s.client.B().Hgetall().Key(key).Build()
		}

		for i, res := range s.client.DoMulti(ctx, cmds...) {
			m, err := res.AsStrMap()
			if err != nil {
				return nil, &db.Error{Op: db.OpHGetAll, Err: fmt.Errorf("key %s: %w", chunk[i], err)}
			}
			out = append(out, m)
		}
	}

	return out, nil
}

// Scan lists hash keys matching pattern. SCAN may report a key more than
// once while the keyspace is rehashed, so keys are deduplicated.
func (s *Store) Scan(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	seen := make(map[string]struct{})
	var cursor uint64

	for {
		cmd := s.client.B().Scan().Cursor(cursor).Match(pattern).Count(scanBatch).Type("hash").Build()
		res, err := s.client.Do(ctx, cmd).AsScanEntry()
		if err != nil {
			return nil, &db.Error{Op: db.OpScan, Err: err}
		}
		for _, k := range res.Elements {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
		cursor = res.Cursor
		if cursor == 0 {
			break
		}
	}

	return keys, nil
}
