package cron

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// CompletionJobName имя задачи автозавершения бронирований
const CompletionJobName = "complete-finished-bookings"

// ErrInvalidInterval возвращается при неположительном интервале задачи
var ErrInvalidInterval = errors.New("cron: interval must be positive")

// BookingCompleter переводит завершившиеся бронирования в completed
type BookingCompleter interface {
	CompleteFinished(ctx context.Context) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler фоновые задачи сервиса поверх gocron
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    Logger
	stopOnce  sync.Once
	stopErr   error
}

// NewScheduler создает планировщик; паника внутри задачи логируется и не роняет процесс
func NewScheduler(logger Logger) (*Scheduler, error) {
	sched, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					logger.Error("Scheduler: job %s (%s) panicked: %v", jobName, jobID, recoverData)
				}),
			),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cron: create scheduler: %w", err)
	}

	return &Scheduler{scheduler: sched, logger: logger}, nil
}

// AddCompletionJob регистрирует периодический запуск CompleteFinished
// Первый запуск сразу после Start, запуски не перекрываются
func (s *Scheduler) AddCompletionJob(completer BookingCompleter, interval, timeout time.Duration) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}
	if timeout <= 0 || timeout > interval {
		timeout = interval
	}

	task := func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		completed, err := completer.CompleteFinished(ctx)
		if err != nil {
			s.logger.Error("Scheduler: %s failed: %v", CompletionJobName, err)
			return
		}
		if completed > 0 {
			s.logger.Info("Scheduler: %s marked %d bookings as completed", CompletionJobName, completed)
		}
	}

	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithName(CompletionJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("cron: add %s job: %w", CompletionJobName, err)
	}

	s.logger.Info("Scheduler: job %s registered, interval=%s", CompletionJobName, interval)
	return nil
}

// Start запускает зарегистрированные задачи
func (s *Scheduler) Start() {
	s.logger.Info("Scheduler: starting")
	s.scheduler.Start()
}

// Stop останавливает планировщик и ждет завершения выполняющихся задач
func (s *Scheduler) Stop() error {
	s.stopOnce.Do(func() {
		s.logger.Info("Scheduler: stopping")
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}
