package vacationfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m04kA/SMC-DayOffBot/internal/domain"
)

const (
	TmpSuffix       = ".tmp.json"
	BackupSuffix    = ".backup"
	FilePermissions = 0644
)

// document формат файла: {"vacations": {"16.08.2026": ["Иван"]}}
type document struct {
	Vacations map[string][]string `json:"vacations"`
}

// Repository хранит календарь выходных в JSON файле
type Repository struct {
	path string
}

// NewRepository создает репозиторий поверх файла path
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Load читает календарь. Отсутствующий файл - это пустой календарь, а не ошибка
func (r *Repository) Load(ctx context.Context) (*domain.VacationCalendar, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: Load - %v", ErrRead, err)
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewVacationCalendar(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - %v", ErrRead, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: Load - %v", ErrDecode, err)
	}

	return domain.NewVacationCalendarFromMap(doc.Vacations), nil
}

// Save записывает календарь целиком
// Сначала пишется временный файл, затем текущий файл уходит в .backup, а временный
// переименовывается на его место
func (r *Repository) Save(ctx context.Context, calendar *domain.VacationCalendar) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: Save - %v", ErrWrite, err)
	}

	data, err := json.MarshalIndent(document{Vacations: calendar.Snapshot()}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: Save - marshal: %v", ErrWrite, err)
	}

	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: Save - create dir: %v", ErrWrite, err)
		}
	}

	tmpFile := r.path + TmpSuffix
	if err := os.WriteFile(tmpFile, data, FilePermissions); err != nil {
		return fmt.Errorf("%w: Save - write tmp file: %v", ErrWrite, err)
	}

	if _, err := os.Stat(r.path); err == nil {
		if err := copyFile(r.path, r.path+BackupSuffix); err != nil {
			_ = os.Remove(tmpFile)
			return fmt.Errorf("%w: Save - backup: %v", ErrWrite, err)
		}
	}

	if err := os.Rename(tmpFile, r.path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("%w: Save - rename: %v", ErrWrite, err)
	}

	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, FilePermissions)
}
