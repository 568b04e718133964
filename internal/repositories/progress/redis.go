package progress

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/errors"
	redisclient "github.com/a602017206/WordRPGGame/internal/redis"
)

const (
	questKeyPrefix = "progress:quests:"
	mapKeyPrefix   = "progress:maps:"

	errCharacterIDEmpty = "character ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis progress repository.
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

// NewRedis creates a new Redis-backed progress repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) GetQuests(ctx context.Context, input GetQuestsInput) (*GetQuestsOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, questKeyPrefix+input.CharacterID).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetQuestsOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to get quest progress")
	}

	var quests []*entities.PlayerQuest
	if err := json.Unmarshal([]byte(result), &quests); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal quest progress")
	}

	return &GetQuestsOutput{Quests: quests}, nil
}

func (r *redisRepository) SaveQuests(ctx context.Context, input SaveQuestsInput) (*SaveQuestsOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	data, err := json.Marshal(input.Quests)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal quest progress")
	}

	if err := r.client.Set(ctx, questKeyPrefix+input.CharacterID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save quest progress")
	}

	return &SaveQuestsOutput{}, nil
}

func (r *redisRepository) GetMaps(ctx context.Context, input GetMapsInput) (*GetMapsOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, mapKeyPrefix+input.CharacterID).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetMapsOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to get map progress")
	}

	var maps []*entities.MapProgress
	if err := json.Unmarshal([]byte(result), &maps); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal map progress")
	}

	return &GetMapsOutput{Maps: maps}, nil
}

func (r *redisRepository) SaveMaps(ctx context.Context, input SaveMapsInput) (*SaveMapsOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	data, err := json.Marshal(input.Maps)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal map progress")
	}

	if err := r.client.Set(ctx, mapKeyPrefix+input.CharacterID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save map progress")
	}

	return &SaveMapsOutput{}, nil
}
