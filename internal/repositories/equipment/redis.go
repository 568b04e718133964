package equipment

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/errors"
	redisclient "github.com/a602017206/WordRPGGame/internal/redis"
)

const (
	keyPrefix = "equipment:character:"

	errCharacterIDEmpty = "character ID cannot be empty"
	errEquipmentNil     = "equipment cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis equipment repository.
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

// NewRedis creates a new Redis-backed equipment repository
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
			return nil, errors.NotFoundf("equipment for character %s not found", input.CharacterID)
		}
		return nil, errors.Wrapf(err, "failed to get equipment")
	}

	var eq entities.CharacterEquipment
	if err := json.Unmarshal([]byte(result), &eq); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal equipment")
	}
	if eq.Slots == nil {
		eq.Slots = make(map[entities.EquipmentSlot]*entities.EquippedItem)
	}

	return &GetOutput{Equipment: &eq}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Equipment == nil {
		return nil, errors.InvalidArgument(errEquipmentNil)
	}
	if input.Equipment.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	data, err := json.Marshal(input.Equipment)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal equipment")
	}

	if err := r.client.Set(ctx, keyPrefix+input.Equipment.CharacterID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save equipment")
	}

	return &SaveOutput{}, nil
}
