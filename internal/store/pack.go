package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"biodefense/internal/game"
)

// PackWorld is one world's worth of levels in a pack file.
type PackWorld struct {
	Name   string           `json:"name"`
	Levels []game.LevelSpec `json:"levels"`
}

// LevelPack is the on-disk campaign the game loads at startup.
type LevelPack struct {
	Version  int         `json:"version"`
	RootSeed int64       `json:"root_seed"`
	Worlds   []PackWorld `json:"worlds"`
}

const packVersion = 1

// WriteLevelPack writes the pack as indented JSON, via a temp file and rename
// so a crash never leaves a truncated pack behind.
func WriteLevelPack(outPath string, pack LevelPack) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	pack.Version = packVersion

	data, err := json.MarshalIndent(pack, "", "  ")
	if err != nil {
		return fmt.Errorf("encode pack: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write pack: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename pack: %w", err)
	}
	return nil
}

// ReadLevelPack loads and sanity-checks a pack file.
func ReadLevelPack(path string) (LevelPack, error) {
	var pack LevelPack
	data, err := os.ReadFile(path)
	if err != nil {
		return pack, err
	}
	if err := json.Unmarshal(data, &pack); err != nil {
		return pack, fmt.Errorf("decode pack: %w", err)
	}
	if pack.Version != packVersion {
		return pack, fmt.Errorf("unsupported pack version %d", pack.Version)
	}
	for wi, w := range pack.Worlds {
		for li, lv := range w.Levels {
			if lv.Width <= 0 || lv.Height <= 0 {
				return pack, fmt.Errorf("world %d level %d: invalid dimensions %dx%d",
					wi+1, li+1, lv.Width, lv.Height)
			}
			if len(lv.Seeds) == 0 {
				return pack, fmt.Errorf("world %d level %d: no pathogen seeds", wi+1, li+1)
			}
		}
	}
	return pack, nil
}
