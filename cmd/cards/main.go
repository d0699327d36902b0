package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"flashcards/internal/config"
	"flashcards/internal/deck"
	"flashcards/internal/logging"
	"flashcards/internal/service"
	"flashcards/internal/storage"
	"flashcards/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	importPath := flag.String("import", "", "append cards from a YAML deck before starting")
	exportPath := flag.String("export", "", "write all cards to a YAML deck and exit")
	flag.Parse()

	if err := run(*importPath, *exportPath); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(importPath, exportPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The terminal belongs to the UI, so logs go to a file next to the words
	if err := os.MkdirAll(cfg.WordsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	logger, err := logging.New(cfg.LogLevel, filepath.Join(cfg.WordsDir, "cards.log"))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	repo, closeStorage, err := storage.Open(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer closeStorage()

	store := service.NewWordStore(repo, logger)
	if _, err := store.Load(); err != nil {
		return err
	}

	if importPath != "" {
		if err := importDeck(store, importPath, logger); err != nil {
			return err
		}
	}

	if exportPath != "" {
		return exportDeck(store, exportPath, logger)
	}

	_, err = tea.NewProgram(tui.New(store, logger), tea.WithAltScreen()).Run()
	return err
}

func importDeck(store *service.WordStore, path string, logger *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open deck: %w", err)
	}
	defer f.Close()

	words, err := deck.Decode(f)
	if err != nil {
		return err
	}

	if _, err := store.AddWords(words...); err != nil {
		return err
	}
	logger.Info("Deck imported", zap.String("path", path), zap.Int("count", len(words)))
	return nil
}

func exportDeck(store *service.WordStore, path string, logger *zap.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create deck: %w", err)
	}

	words := store.Current()
	if err := deck.Encode(f, words); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write deck: %w", err)
	}

	logger.Info("Deck exported", zap.String("path", path), zap.Int("count", len(words)))
	fmt.Printf("Exported %d cards to %s\n", len(words), path)
	return nil
}
