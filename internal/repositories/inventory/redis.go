package inventory

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/errors"
	redisclient "github.com/a602017206/WordRPGGame/internal/redis"
)

const (
	characterKeyPrefix = "inventory:character:"
	accountKey         = "inventory:account"

	errCharacterIDEmpty = "character ID cannot be empty"
	errInventoryNil     = "inventory cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis inventory repository.
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

// NewRedis creates a new Redis-backed inventory repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) GetCharacter(ctx context.Context, input GetCharacterInput) (*GetCharacterOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, characterKeyPrefix+input.CharacterID).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetCharacterOutput{
				Inventory: &entities.CharacterInventory{
					CharacterID: input.CharacterID,
					Capacity:    DefaultCharacterCapacity,
				},
			}, nil
		}
		return nil, errors.Wrapf(err, "failed to get character inventory")
	}

	var inv entities.CharacterInventory
	if err := json.Unmarshal([]byte(result), &inv); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character inventory")
	}

	return &GetCharacterOutput{Inventory: &inv}, nil
}

func (r *redisRepository) SaveCharacter(ctx context.Context, input SaveCharacterInput) (*SaveCharacterOutput, error) {
	if input.Inventory == nil {
		return nil, errors.InvalidArgument(errInventoryNil)
	}
	if input.Inventory.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	data, err := json.Marshal(input.Inventory)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character inventory")
	}

	if err := r.client.Set(ctx, characterKeyPrefix+input.Inventory.CharacterID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save character inventory")
	}

	return &SaveCharacterOutput{}, nil
}

func (r *redisRepository) GetAccount(ctx context.Context, _ GetAccountInput) (*GetAccountOutput, error) {
	result, err := r.client.Get(ctx, accountKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetAccountOutput{
				Inventory: &entities.AccountInventory{Capacity: DefaultAccountCapacity},
			}, nil
		}
		return nil, errors.Wrapf(err, "failed to get account inventory")
	}

	var inv entities.AccountInventory
	if err := json.Unmarshal([]byte(result), &inv); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal account inventory")
	}

	return &GetAccountOutput{Inventory: &inv}, nil
}

func (r *redisRepository) SaveAccount(ctx context.Context, input SaveAccountInput) (*SaveAccountOutput, error) {
	if input.Inventory == nil {
		return nil, errors.InvalidArgument(errInventoryNil)
	}

	data, err := json.Marshal(input.Inventory)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal account inventory")
	}

	if err := r.client.Set(ctx, accountKey, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save account inventory")
	}

	return &SaveAccountOutput{}, nil
}
