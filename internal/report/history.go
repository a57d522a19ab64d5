// internal/report/history.go
package report

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"medadmin/internal/importer"
)

// ImportRun is one recorded import execution. Skips are stored row by row so
// data-entry mistakes stay inspectable after the aggregate alert is gone.
// This is bookkeeping only; skipped rows are never resubmitted from here.
type ImportRun struct {
	ID        uint   `gorm:"primaryKey"`
	Kind      string `gorm:"not null;index"`
	FileName  string `gorm:"not null"`
	Total     int
	Created   int
	ChildRows int
	RanAt     time.Time `gorm:"not null;index"`

	Skips []ImportSkip `gorm:"foreignKey:RunID"`
}

func (ImportRun) TableName() string {
	return "import_runs"
}

type ImportSkip struct {
	ID     uint `gorm:"primaryKey"`
	RunID  uint `gorm:"not null;index"`
	Line   int
	Reason string
}

func (ImportSkip) TableName() string {
	return "import_skips"
}

// History persists import runs to a local sqlite file.
type History struct {
	db     *gorm.DB
	logger *slog.Logger
}

func OpenHistory(path string, appLogger *slog.Logger) (*History, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}

	gormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
	)
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLogger})
	if err != nil {
		appLogger.Error("Failed to open import history database", slog.Any("error", err))
		return nil, err
	}
	if err := db.AutoMigrate(&ImportRun{}, &ImportSkip{}); err != nil {
		return nil, err
	}
	return &History{db: db, logger: appLogger}, nil
}

// Record stores one finished run with its per-row skip reasons.
func (h *History) Record(kind, fileName string, result *importer.Result) (*ImportRun, error) {
	run := &ImportRun{
		Kind:      kind,
		FileName:  fileName,
		Total:     result.Total,
		Created:   result.Created,
		ChildRows: result.ChildRows,
		RanAt:     time.Now(),
	}
	for _, skip := range result.Skipped {
		run.Skips = append(run.Skips, ImportSkip{Line: skip.Line, Reason: skip.Reason})
	}
	if err := h.db.Create(run).Error; err != nil {
		h.logger.Error("Failed to record import run", slog.Any("error", err))
		return nil, err
	}
	return run, nil
}

// Recent returns the latest runs, newest first, skips preloaded.
func (h *History) Recent(limit int) ([]ImportRun, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []ImportRun
	err := h.db.Preload("Skips").Order("ran_at desc").Limit(limit).Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}

func (h *History) Close() error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
