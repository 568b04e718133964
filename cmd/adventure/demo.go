package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/a602017206/WordRPGGame/internal/config"
	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/adventure"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/inventory"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/quest"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted adventure session",
	Long:  `Creates a character, accepts the starter quest and fights a few battles, printing the battle log as it goes.`,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	createOut, err := eng.adventure.CreateCharacter(ctx, &adventure.CreateCharacterInput{
		Name:  cfg.Demo.CharacterName,
		Class: entities.ClassType(cfg.Demo.Class),
	})
	if err != nil {
		return err
	}
	char := createOut.Character
	fmt.Printf("created %s %s (level %d)\n", char.Icon, char.Name, char.Level)

	if _, err := eng.quest.AcceptQuest(ctx, &quest.AcceptQuestInput{
		CharacterID: char.ID,
		QuestID:     "quest_kill_goblins",
	}); err != nil {
		return err
	}

	if _, err := eng.adventure.StartSession(ctx, &adventure.StartSessionInput{CharacterID: char.ID}); err != nil {
		return err
	}
	defer func() {
		_, _ = eng.adventure.EndSession(ctx, &adventure.EndSessionInput{CharacterID: char.ID})
	}()

	for i := 0; i < cfg.Demo.Battles; i++ {
		if err := runBattle(ctx, eng, char.ID); err != nil {
			return err
		}
	}

	return printSummary(ctx, eng, char.ID)
}

// runBattle fights one encounter to its end, pausing between swings so the
// enemy counter-attack timers get their turn.
func runBattle(ctx context.Context, eng *engine, characterID string) error {
	battleOut, err := eng.adventure.StartBattle(ctx, &adventure.StartBattleInput{CharacterID: characterID})
	if err != nil {
		return err
	}
	fmt.Printf("\n-- %s Lv.%d %s (%d HP) --\n",
		battleOut.Enemy.Icon, battleOut.Enemy.Level, battleOut.Enemy.Name, battleOut.Enemy.MaxHP)

	for {
		attackOut, err := eng.adventure.Attack(ctx, &adventure.AttackInput{CharacterID: characterID})
		if err != nil {
			return err
		}
		if attackOut.Victory {
			fmt.Println("victory!")
			return nil
		}

		time.Sleep(time.Second)

		stateOut, err := eng.adventure.GetState(ctx, &adventure.GetStateInput{CharacterID: characterID})
		if err != nil {
			return err
		}
		switch stateOut.Snapshot.State {
		case adventure.StateBattling:
			continue
		case adventure.StateDefeat:
			fmt.Println("defeated, waiting to respawn...")
			time.Sleep(3 * time.Second)
			return nil
		default:
			return nil
		}
	}
}

func printSummary(ctx context.Context, eng *engine, characterID string) error {
	charOut, err := eng.adventure.GetCharacter(ctx, &adventure.GetCharacterInput{CharacterID: characterID})
	if err != nil {
		return err
	}
	balOut, err := eng.inventory.GetBalances(ctx, &inventory.GetBalancesInput{CharacterID: characterID})
	if err != nil {
		return err
	}
	stateOut, err := eng.adventure.GetState(ctx, &adventure.GetStateInput{CharacterID: characterID})
	if err != nil {
		return err
	}

	char := charOut.Character
	fmt.Printf("\n%s is level %d (%d exp), %d enemies defeated, %d gold, %d diamonds\n",
		char.Name, char.Level, char.Experience, char.Progress.EnemiesDefeated, balOut.Gold, balOut.Diamond)

	fmt.Println("\nbattle log (newest first):")
	for _, entry := range stateOut.Snapshot.Logs {
		fmt.Printf("  [%s] %s\n", entry.Type, entry.Message)
	}
	return nil
}
