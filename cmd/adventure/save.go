package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/a602017206/WordRPGGame/internal/config"
	"github.com/a602017206/WordRPGGame/internal/save"
)

var savePath string

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Export, import or inspect profile save blobs",
}

var saveExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full profile to a save blob",
	RunE:  runSaveExport,
}

var saveImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Restore a profile from a save blob",
	RunE:  runSaveImport,
}

var saveInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Validate a save blob and print its metadata",
	RunE:  runSaveInfo,
}

func init() {
	saveCmd.PersistentFlags().StringVar(&savePath, "file", "profile.rpgsave", "save blob file path")
	saveCmd.AddCommand(saveExportCmd)
	saveCmd.AddCommand(saveImportCmd)
	saveCmd.AddCommand(saveInfoCmd)
}

func runSaveExport(cmd *cobra.Command, _ []string) error {
	eng, ctx, err := engineContext(cmd)
	if err != nil {
		return err
	}

	blob, err := eng.exporter.Export(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(savePath, []byte(blob), 0o600); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}

	fmt.Printf("exported %d bytes to %s\n", len(blob), savePath)
	return nil
}

func runSaveImport(cmd *cobra.Command, _ []string) error {
	eng, ctx, err := engineContext(cmd)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(savePath) // #nosec G304 -- path comes from the operator
	if err != nil {
		return fmt.Errorf("failed to read save file: %w", err)
	}
	if err := eng.exporter.Import(ctx, string(raw)); err != nil {
		return err
	}

	fmt.Printf("imported profile from %s\n", savePath)
	return nil
}

func runSaveInfo(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(savePath) // #nosec G304 -- path comes from the operator
	if err != nil {
		return fmt.Errorf("failed to read save file: %w", err)
	}

	info, err := save.Inspect(string(raw))
	if err != nil {
		return err
	}

	fmt.Printf("version: %s\nsaved:   %s\nsize:    %d bytes\n",
		info.Version, time.UnixMilli(info.Timestamp).Format(time.RFC3339), info.Size)
	return nil
}

func engineContext(cmd *cobra.Command) (*engine, context.Context, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	eng, err := buildEngine(cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return eng, ctx, nil
}
