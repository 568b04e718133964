package character_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/errors"
	character "github.com/a602017206/WordRPGGame/internal/repositories/character"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mini *miniredis.Miniredis
	repo character.Repository
	ctx  context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mini, err := miniredis.Run()
	s.Require().NoError(err)
	s.mini = mini

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: goredis.NewClient(&goredis.Options{Addr: mini.Addr()}),
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.mini.Close()
}

func (s *RedisRepositoryTestSuite) testCharacter(id string) *entities.Character {
	return &entities.Character{
		ID:        id,
		Name:      "Test Hero",
		Class:     entities.ClassWarrior,
		ClassName: "Warrior",
		Level:     1,
		Stats:     entities.Stats{HP: 120, MP: 30, Attack: 15, Defense: 12, Magic: 5, Speed: 8},
		CreatedAt: 1700000000000,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	char := s.testCharacter("char_1")

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal("Test Hero", out.Character.Name)
	s.Equal(entities.ClassWarrior, out.Character.Class)
	s.Equal(120, out.Character.Stats.HP)
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicateFails() {
	char := s.testCharacter("char_1")

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "nope"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	char := s.testCharacter("char_1")
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	char.Level = 5
	char.Experience = 42
	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: char})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal(5, out.Character.Level)
	s.Equal(42, out.Character.Experience)
}

func (s *RedisRepositoryTestSuite) TestUpdateMissingFails() {
	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: s.testCharacter("ghost")})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteRemovesFromList() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter("char_1")})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter("char_2")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_1"})
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 1)
	s.Equal("char_2", out.Characters[0].ID)
}

func (s *RedisRepositoryTestSuite) TestListCleansDanglingIndexEntries() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter("char_1")})
	s.Require().NoError(err)

	// Blow away the blob but leave the index entry behind
	s.mini.Del("character:char_1")

	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Characters)

	s.False(s.mini.Exists("characters") && s.sisMember("characters", "char_1"))
}

func (s *RedisRepositoryTestSuite) sisMember(key, member string) bool {
	ok, err := s.mini.SIsMember(key, member)
	s.Require().NoError(err)
	return ok
}

func (s *RedisRepositoryTestSuite) TestSelected() {
	out, err := s.repo.GetSelected(s.ctx, character.GetSelectedInput{})
	s.Require().NoError(err)
	s.Empty(out.CharacterID)

	_, err = s.repo.SetSelected(s.ctx, character.SetSelectedInput{CharacterID: "char_9"})
	s.Require().NoError(err)

	out, err = s.repo.GetSelected(s.ctx, character.GetSelectedInput{})
	s.Require().NoError(err)
	s.Equal("char_9", out.CharacterID)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
