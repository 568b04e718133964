package mailbox

import (
	"context"
	"encoding/json"

	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/errors"
	redisclient "github.com/a602017206/WordRPGGame/internal/redis"
)

const (
	keyPrefix = "mailbox:"

	errCharacterIDEmpty = "character ID cannot be empty"
	errEntryNil         = "entry cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis mailbox repository.
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

// NewRedis creates a new Redis-backed mailbox repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Enqueue(ctx context.Context, input EnqueueInput) (*EnqueueOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Entry == nil {
		return nil, errors.InvalidArgument(errEntryNil)
	}

	data, err := json.Marshal(input.Entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal mail entry")
	}

	if err := r.client.RPush(ctx, keyPrefix+input.CharacterID, data).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to enqueue mail entry")
	}

	return &EnqueueOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	entries, err := r.readAll(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &ListOutput{Entries: entries}, nil
}

func (r *redisRepository) Drain(ctx context.Context, input DrainInput) (*DrainOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := keyPrefix + input.CharacterID

	entries, err := r.readAll(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if len(entries) > 0 {
		if err := r.client.Del(ctx, key).Err(); err != nil {
			return nil, errors.Wrapf(err, "failed to clear mailbox")
		}
	}

	return &DrainOutput{Entries: entries}, nil
}

func (r *redisRepository) readAll(ctx context.Context, characterID string) ([]*entities.MailEntry, error) {
	raw, err := r.client.LRange(ctx, keyPrefix+characterID, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read mailbox")
	}

	entries := make([]*entities.MailEntry, 0, len(raw))
	for _, item := range raw {
		var entry entities.MailEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal mail entry")
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}
