package calendar

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-DayOffBot/internal/domain"
)

// MutateFunc изменяет календарь и сообщает, было ли изменение
// Ошибка отменяет сохранение и возвращается вызывающему как есть
type MutateFunc func(calendar *domain.VacationCalendar) (changed bool, err error)

// Service доступ к календарю выходных на время одного запроса
// Каждый вызов читает свежие данные из хранилища, между запросами ничего не кэшируется
type Service struct {
	repo    Repository
	metrics Metrics
	logger  Logger

	// mu сериализует цикл "прочитать - изменить - записать" внутри процесса
	mu sync.Mutex
}

// NewService создает новый экземпляр сервиса календаря. metrics может быть nil
func NewService(repo Repository, metrics Metrics, logger Logger) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// Load читает календарь. При ошибке чтения возвращает пустой календарь
func (s *Service) Load(ctx context.Context) *domain.VacationCalendar {
	calendar, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Error("Calendar.Load: failed to load calendar, using empty one: %v", err)
		s.incError("load")
		return domain.NewVacationCalendar()
	}
	return calendar
}

// Save записывает календарь. Ошибка только логируется: ответ пользователю уже сформирован
func (s *Service) Save(ctx context.Context, calendar *domain.VacationCalendar) {
	if err := s.repo.Save(ctx, calendar); err != nil {
		s.logger.Error("Calendar.Save: failed to save calendar: %v", err)
		s.incError("save")
		return
	}
	s.logger.Info("Calendar.Save: saved %d days", calendar.Len())
}

// Mutate загружает календарь, применяет fn и сохраняет результат, если fn что-то изменила
func (s *Service) Mutate(ctx context.Context, fn MutateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	calendar := s.Load(ctx)

	changed, err := fn(calendar)
	if err != nil {
		return err
	}

	if changed {
		s.Save(ctx, calendar)
	}

	return nil
}

func (s *Service) incError(operation string) {
	if s.metrics != nil {
		s.metrics.IncStorageError(operation)
	}
}
