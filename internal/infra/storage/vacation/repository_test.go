package vacation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DayOffBot/internal/domain"
	"github.com/m04kA/SMC-DayOffBot/pkg/dbmetrics"
	"github.com/m04kA/SMC-DayOffBot/pkg/txmanager"
)

var (
	aug16 = domain.Day{Year: 2026, Month: time.August, Day: 16}
	aug17 = domain.Day{Year: 2026, Month: time.August, Day: 17}
)

func newRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped, txmanager.NewTransactionManager(wrapped)), mock
}

func TestRepository_Load(t *testing.T) {
	repo, mock := newRepository(t)

	rows := sqlmock.NewRows([]string{"day_key", "holder"}).
		AddRow("16.08.2026", "Мария").
		AddRow("16.08.2026", "Иван").
		AddRow("17.08.2026", "Иван")
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT day_key, holder FROM vacations ORDER BY day_key ASC, position ASC`).
		WillReturnRows(rows)
	mock.ExpectCommit()

	cal, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Мария", "Иван"}, cal.Holders(aug16))
	assert.Equal(t, []string{"Иван"}, cal.Holders(aug17))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LoadQueryError(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM vacations`).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := repo.Load(context.Background())

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save(t *testing.T) {
	repo, mock := newRepository(t)

	cal := domain.NewVacationCalendar()
	cal.Add(aug17, "Иван")
	cal.Add(aug16, "Мария")
	cal.Add(aug16, "Иван")

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM vacations`).WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(`INSERT INTO vacations \(day_key,position,holder\) VALUES`).
		WithArgs(
			"16.08.2026", 0, "Мария",
			"16.08.2026", 1, "Иван",
			"17.08.2026", 0, "Иван",
		).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), cal))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SaveEmptyCalendarOnlyDeletes(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM vacations`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), domain.NewVacationCalendar()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SaveRollsBackOnInsertError(t *testing.T) {
	repo, mock := newRepository(t)

	cal := domain.NewVacationCalendar()
	cal.Add(aug16, "Иван")

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM vacations`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO vacations`).WillReturnError(errors.New("unique violation"))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), cal)

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
