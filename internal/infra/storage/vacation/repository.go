package vacation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-DayOffBot/internal/domain"
	"github.com/m04kA/SMC-DayOffBot/pkg/dbmetrics"
	"github.com/m04kA/SMC-DayOffBot/pkg/psqlbuilder"
)

const tableName = "vacations"

// Repository хранит календарь выходных в PostgreSQL
// Одна строка - одно имя на одну дату, position задает порядок записи внутри дня
type Repository struct {
	db        DBExecutor
	txManager TransactionManager
}

// NewRepository создает новый экземпляр репозитория выходных
func NewRepository(db DBExecutor, txManager TransactionManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Load загружает календарь целиком одним снимком в транзакции только для чтения
func (r *Repository) Load(ctx context.Context) (*domain.VacationCalendar, error) {
	query, args, err := psqlbuilder.Select("day_key", "holder").
		From(tableName).
		OrderBy("day_key ASC", "position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var calendar *domain.VacationCalendar

	err = r.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		executor := dbmetrics.GetExecutor(txCtx, r.db)

		rows, err := executor.QueryContext(txCtx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: Load - execute query: %v", ErrExecQuery, err)
		}
		defer rows.Close()

		calendar, err = r.scanCalendar(rows)
		return err
	})
	if err != nil {
		return nil, err
	}

	return calendar, nil
}

// Save полностью заменяет содержимое таблицы снимком календаря
// Удаление и вставка выполняются в одной сериализуемой транзакции
func (r *Repository) Save(ctx context.Context, calendar *domain.VacationCalendar) error {
	return r.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		executor := dbmetrics.GetExecutor(txCtx, r.db)

		deleteQuery, deleteArgs, err := psqlbuilder.Delete(tableName).ToSql()
		if err != nil {
			return fmt.Errorf("%w: Save - build delete query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(txCtx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("%w: Save - execute delete: %v", ErrExecQuery, err)
		}

		if calendar.Len() == 0 {
			return nil
		}

		snapshot := calendar.Snapshot()
		insert := psqlbuilder.Insert(tableName).Columns("day_key", "position", "holder")
		for _, key := range calendar.Keys() {
			for position, holder := range snapshot[key] {
				insert = insert.Values(key, position, holder)
			}
		}

		insertQuery, insertArgs, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(txCtx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("%w: Save - execute insert: %v", ErrExecQuery, err)
		}

		return nil
	})
}

// scanCalendar собирает календарь из строк (day_key, holder)
func (r *Repository) scanCalendar(rows *sql.Rows) (*domain.VacationCalendar, error) {
	vacations := make(map[string][]string)

	for rows.Next() {
		var dayKey, holder string
		if err := rows.Scan(&dayKey, &holder); err != nil {
			return nil, fmt.Errorf("%w: scanCalendar - scan row: %v", ErrScanRow, err)
		}
		vacations[dayKey] = append(vacations[dayKey], holder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCalendar - rows error: %v", ErrScanRow, err)
	}

	return domain.NewVacationCalendarFromMap(vacations), nil
}
