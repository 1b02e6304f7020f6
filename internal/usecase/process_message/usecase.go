package process_message

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DayOffBot/internal/command"
	"github.com/m04kA/SMC-DayOffBot/internal/usecase/add_vacation"
	"github.com/m04kA/SMC-DayOffBot/internal/usecase/cancel_all_vacations"
	"github.com/m04kA/SMC-DayOffBot/internal/usecase/cancel_vacation"
)

// UseCase разбирает текст сообщения и выполняет команду. Результат - текст ответа в чат
type UseCase struct {
	addVacation        AddVacationUseCase
	cancelVacation     CancelVacationUseCase
	cancelAllVacations CancelAllVacationsUseCase
	showCalendar       ShowCalendarUseCase
	metrics            Metrics
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(
	addVacation AddVacationUseCase,
	cancelVacation CancelVacationUseCase,
	cancelAllVacations CancelAllVacationsUseCase,
	showCalendar ShowCalendarUseCase,
	metrics Metrics,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		addVacation:        addVacation,
		cancelVacation:     cancelVacation,
		cancelAllVacations: cancelAllVacations,
		showCalendar:       showCalendar,
		metrics:            metrics,
		timeProvider:       &RealTimeProvider{Location: loc},
		logger:             logger,
	}
}

// Execute выполняет команду из сообщения
// Нарушения лимитов - это обычный ответ пользователю, ошибка возвращается только при сбое
func (uc *UseCase) Execute(ctx context.Context, msg *Message) (string, error) {
	if msg == nil {
		return "", ErrInvalidInput
	}

	// 1. Разбираем текст, год берем из текущей даты календаря
	cmd := command.Parse(msg.Text, uc.timeProvider.Now().Year())

	uc.logger.Info("ProcessMessage: chat=%d, type=%s, from=%s, command=%s",
		msg.ChatID, msg.ChatType, msg.FromDisplayName, cmd.Kind)

	// 2. /start отвечает в любом чате
	if cmd.Kind == command.KindGreet {
		uc.incCommand(cmd.Kind)
		return msgHelp, nil
	}

	// 3. Остальные команды только в группах, хранилище не трогаем
	if !msg.IsGroup() {
		uc.logger.Info("ProcessMessage: chat=%d is %s, ignoring command", msg.ChatID, msg.ChatType)
		return msgGroupOnly, nil
	}

	uc.incCommand(cmd.Kind)

	// 4. Выполняем команду
	switch cmd.Kind {
	case command.KindShowCalendar:
		text, err := uc.showCalendar.Execute(ctx)
		if err != nil {
			return "", fmt.Errorf("%w: show calendar: %v", ErrInternal, err)
		}
		return text, nil

	case command.KindRemoveAll:
		resp, err := uc.cancelAllVacations.Execute(ctx, &cancel_all_vacations.Request{Name: cmd.Name})
		if err != nil {
			return "", fmt.Errorf("%w: cancel all vacations: %v", ErrInternal, err)
		}
		return fmt.Sprintf(msgRemovedAll, resp.Name), nil

	case command.KindRemove:
		resp, err := uc.cancelVacation.Execute(ctx, &cancel_vacation.Request{Dates: cmd.Dates, Name: cmd.Name})
		if err != nil {
			return "", fmt.Errorf("%w: cancel vacation: %v", ErrInternal, err)
		}
		return fmt.Sprintf(msgRemoved, resp.Name), nil

	case command.KindAdd:
		return uc.add(ctx, cmd)
	}

	return msgUnknownCommand, nil
}

func (uc *UseCase) add(ctx context.Context, cmd command.Command) (string, error) {
	resp, err := uc.addVacation.Execute(ctx, &add_vacation.Request{Dates: cmd.Dates, Name: cmd.Name})
	if err != nil {
		var limitErr *add_vacation.LimitError
		if errors.As(err, &limitErr) {
			return limitErr.Error(), nil
		}
		return "", fmt.Errorf("%w: add vacation: %v", ErrInternal, err)
	}
	return fmt.Sprintf(msgAdded, resp.Name), nil
}

func (uc *UseCase) incCommand(kind command.Kind) {
	if uc.metrics != nil {
		uc.metrics.IncCommand(string(kind))
	}
}
