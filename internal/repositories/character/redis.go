package character

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
	"github.com/KirkDiggler/dg-generator/internal/errors"
	redisclient "github.com/KirkDiggler/dg-generator/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	batchIndexPrefix   = "batch:"
	batchIndexSuffix   = ":characters"

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errBatchIDEmpty     = "batch ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func characterKey(id string) string {
	return characterKeyPrefix + id
}

func batchKey(batchID string) string {
	return batchIndexPrefix + batchID + batchIndexSuffix
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.TTL < 0 {
		return nil, errors.InvalidArgumentf("ttl cannot be negative: %s", input.TTL)
	}

	key := characterKey(input.Character.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, input.TTL)

	if input.Character.BatchID != "" {
		index := batchKey(input.Character.BatchID)
		pipe.RPush(ctx, index, input.Character.ID)
		if input.TTL > 0 {
			pipe.Expire(ctx, index, input.TTL)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, characterKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	char, err := decodeCharacter(result)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Character: char}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKey(input.ID))
	if batchID := getOutput.Character.BatchID; batchID != "" {
		pipe.LRem(ctx, batchKey(batchID), 0, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByBatch(ctx context.Context, input ListByBatchInput) (*ListByBatchOutput, error) {
	if input.BatchID == "" {
		return nil, errors.InvalidArgument(errBatchIDEmpty)
	}

	ids, err := r.client.LRange(ctx, batchKey(input.BatchID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get batch index")
	}
	if len(ids) == 0 {
		return &ListByBatchOutput{Characters: []*deltagreen.Character{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = characterKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters")
	}

	characters := make([]*deltagreen.Character, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// expired or deleted out from under the index
			slog.Warn("Batch member missing",
				"batch_id", input.BatchID,
				"character_id", ids[i],
			)
			continue
		}

		char, err := decodeCharacter(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode batch member %s", ids[i])
		}
		characters = append(characters, char)
	}

	return &ListByBatchOutput{Characters: characters}, nil
}

func decodeCharacter(data string) (*deltagreen.Character, error) {
	var char deltagreen.Character
	if err := json.Unmarshal([]byte(data), &char); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal character")
	}
	return &char, nil
}
