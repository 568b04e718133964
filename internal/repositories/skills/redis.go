package skills

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/errors"
	redisclient "github.com/a602017206/WordRPGGame/internal/redis"
)

const (
	keyPrefix = "skills:character:"

	errCharacterIDEmpty = "character ID cannot be empty"
	errSkillsNil        = "skills cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis skills repository.
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

// NewRedis creates a new Redis-backed skills repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, keyPrefix+input.CharacterID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("skills for character %s not found", input.CharacterID)
		}
		return nil, errors.Wrapf(err, "failed to get skills")
	}

	var skills entities.CharacterSkills
	if err := json.Unmarshal([]byte(result), &skills); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal skills")
	}

	return &GetOutput{Skills: &skills}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Skills == nil {
		return nil, errors.InvalidArgument(errSkillsNil)
	}
	if input.Skills.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	data, err := json.Marshal(input.Skills)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal skills")
	}

	if err := r.client.Set(ctx, keyPrefix+input.Skills.CharacterID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save skills")
	}

	return &SaveOutput{}, nil
}
