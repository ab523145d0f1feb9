// Package store persists generated level packs. Levels ship as a JSON pack
// the game loads at startup; generation telemetry goes to a Parquet archive
// for offline analysis of difficulty tuning.
package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"biodefense/internal/gen"
	"biodefense/internal/solver"
)

// LevelRow is one generated level flattened for columnar storage. Board
// geometry is stored as parallel coordinate columns, which compresses far
// better than a JSON blob per row.
type LevelRow struct {
	World int32 `parquet:"world"`
	Level int32 `parquet:"level"`

	Seed   int64 `parquet:"seed"`
	Width  int32 `parquet:"width"`
	Height int32 `parquet:"height"`

	WallX []int32 `parquet:"wall_x"`
	WallY []int32 `parquet:"wall_y"`

	SeedVariant []int32 `parquet:"seed_variant"`
	SeedX       []int32 `parquet:"seed_x"`
	SeedY       []int32 `parquet:"seed_y"`

	TurnLimit      int32   `parquet:"turn_limit"`
	ActionsPerTurn int32   `parquet:"actions_per_turn"`
	ToolCharges    int32   `parquet:"tool_charges"`
	ObjectiveKind  int32   `parquet:"objective_kind"`
	Threshold      float64 `parquet:"threshold"`

	Attempts int32   `parquet:"attempts"`
	Peak     float64 `parquet:"peak_infection"`
	Margin   float64 `parquet:"margin"`
	Fallback bool    `parquet:"fallback"`

	SolverRan        bool  `parquet:"solver_ran"`
	SolverWon        bool  `parquet:"solver_won"`
	SolverTurns      int32 `parquet:"solver_turns"`
	SolverPlacements int32 `parquet:"solver_placements"`
}

// Row flattens one generated level. Pass solved=false when the validation
// solver was skipped; the solver columns are then zero.
func Row(world, level int, lv gen.GeneratedLevel, solved bool, rep solver.Report) LevelRow {
	spec := lv.Spec
	row := LevelRow{
		World:          int32(world),
		Level:          int32(level),
		Seed:           spec.Seed,
		Width:          int32(spec.Width),
		Height:         int32(spec.Height),
		TurnLimit:      int32(spec.TurnLimit),
		ActionsPerTurn: int32(spec.ActionsPerTurn),
		ToolCharges:    int32(spec.Tools.Total()),
		ObjectiveKind:  int32(spec.Objective.Kind),
		Threshold:      spec.Objective.Threshold,
		Attempts:       int32(lv.Attempts),
		Peak:           lv.Peak,
		Margin:         lv.Margin,
		Fallback:       lv.Fallback,
		SolverRan:      solved,
	}
	for _, w := range spec.Walls {
		row.WallX = append(row.WallX, int32(w.X))
		row.WallY = append(row.WallY, int32(w.Y))
	}
	for _, s := range spec.Seeds {
		row.SeedVariant = append(row.SeedVariant, int32(s.Variant))
		row.SeedX = append(row.SeedX, int32(s.X))
		row.SeedY = append(row.SeedY, int32(s.Y))
	}
	if solved {
		row.SolverWon = rep.Won
		row.SolverTurns = int32(rep.Turns)
		row.SolverPlacements = int32(rep.Placements)
	}
	return row
}

// WriteLevelArchive writes all rows to a single Parquet file, via a temp file
// and rename so readers never see a partial write.
func WriteLevelArchive(outPath string, rows []LevelRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "level_row_v1"),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

// ReadLevelArchive loads every row from a level archive.
func ReadLevelArchive(path string) ([]LevelRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := parquet.NewGenericReader[LevelRow](f)
	defer reader.Close()

	var out []LevelRow
	buf := make([]LevelRow, 64)
	for {
		n, err := reader.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read parquet: %w", err)
		}
	}
}
