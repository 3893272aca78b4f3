package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the preview HTML for a resume to stdout",
	Long: `Render the preview page for the seed resume, or for a resume JSON file
given with --resume. Edits listed in an --intents JSON file are applied first,
in order, exactly as the server would apply them.`,
	RunE: runPreview,
}

var (
	previewResume  string
	previewIntents string
)

func init() {
	previewCmd.Flags().StringVar(&previewResume, "resume", "", "Path to a resume JSON file (default: seed resume)")
	previewCmd.Flags().StringVar(&previewIntents, "intents", "", "Path to a JSON array of edit intents")
}

func runPreview(cmd *cobra.Command, _ []string) error {
	doc := model.Seed()
	if previewResume != "" {
		b, err := os.ReadFile(previewResume)
		if err != nil {
			return fmt.Errorf("read resume: %w", err)
		}
		if doc, err = model.ParseJSON(b); err != nil {
			return fmt.Errorf("resume %s: %w", previewResume, err)
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	editor := usecase.NewEditor(doc, usecase.NewCounterGenerator(0), logger)

	if previewIntents != "" {
		intents, err := readIntents(previewIntents)
		if err != nil {
			return err
		}
		for i, in := range intents {
			if _, err := editor.Dispatch(context.Background(), in); err != nil {
				return fmt.Errorf("intent %d (%s): %w", i, in.Op, err)
			}
		}
	}

	renderer, err := infra.NewHTMLRenderer()
	if err != nil {
		return err
	}
	html, err := renderer.Render(editor.Snapshot())
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), html)
	return err
}

func readIntents(path string) ([]domain.EditIntent, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read intents: %w", err)
	}
	var intents []domain.EditIntent
	if err := json.Unmarshal(b, &intents); err != nil {
		return nil, fmt.Errorf("parse intents: %w", err)
	}
	return intents, nil
}
