package currency

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/errors"
	redisclient "github.com/a602017206/WordRPGGame/internal/redis"
)

const (
	characterKeyPrefix = "currency:character:"
	accountKey         = "currency:account"

	errCharacterIDEmpty = "character ID cannot be empty"
	errCurrencyNil      = "currency cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis currency repository.
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

// NewRedis creates a new Redis-backed currency repository
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
				Currency: &entities.CharacterCurrency{CharacterID: input.CharacterID},
			}, nil
		}
		return nil, errors.Wrapf(err, "failed to get character currency")
	}

	var cur entities.CharacterCurrency
	if err := json.Unmarshal([]byte(result), &cur); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character currency")
	}

	return &GetCharacterOutput{Currency: &cur}, nil
}

func (r *redisRepository) SaveCharacter(ctx context.Context, input SaveCharacterInput) (*SaveCharacterOutput, error) {
	if input.Currency == nil {
		return nil, errors.InvalidArgument(errCurrencyNil)
	}
	if input.Currency.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	data, err := json.Marshal(input.Currency)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character currency")
	}

	if err := r.client.Set(ctx, characterKeyPrefix+input.Currency.CharacterID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save character currency")
	}

	return &SaveCharacterOutput{}, nil
}

func (r *redisRepository) GetAccount(ctx context.Context, _ GetAccountInput) (*GetAccountOutput, error) {
	result, err := r.client.Get(ctx, accountKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetAccountOutput{Currency: &entities.AccountCurrency{}}, nil
		}
		return nil, errors.Wrapf(err, "failed to get account currency")
	}

	var cur entities.AccountCurrency
	if err := json.Unmarshal([]byte(result), &cur); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal account currency")
	}

	return &GetAccountOutput{Currency: &cur}, nil
}

func (r *redisRepository) SaveAccount(ctx context.Context, input SaveAccountInput) (*SaveAccountOutput, error) {
	if input.Currency == nil {
		return nil, errors.InvalidArgument(errCurrencyNil)
	}

	data, err := json.Marshal(input.Currency)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal account currency")
	}

	if err := r.client.Set(ctx, accountKey, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save account currency")
	}

	return &SaveAccountOutput{}, nil
}
