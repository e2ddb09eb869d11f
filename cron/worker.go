package cron

import (
	"context"
	"time"

	"homebook/config"
	"homebook/models"
	"homebook/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Notifier delivers a due reminder to whoever should receive it.
type Notifier interface {
	NotifyReminder(ctx context.Context, p models.ReminderPayload) error
}

// LogNotifier only writes the reminder to the log. Delivery channels plug in
// behind Notifier.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) NotifyReminder(_ context.Context, p models.ReminderPayload) error {
	n.Logger.Info("Booking reminder due",
		zap.String("bookingId", p.BookingID),
		zap.String("providerId", p.ProviderID),
		zap.String("customerId", p.CustomerID),
		zap.String("slot", p.Date+"T"+p.Time),
		zap.String("title", p.Title),
	)
	return nil
}

// QueueRedisOpt is the asynq connection for the reminder queue.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitReminderWorker runs the async worker in background until ctx is done.
func InitReminderWorker(ctx context.Context, notifier Notifier, logger *zap.Logger) {
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: config.AppConfig.ReminderConcurrency,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, HandleReminderTask(notifier, logger))

	go monitorRedisConnection(ctx, logger)

	go func() {
		logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Start(mux); err != nil {
				logger.Warn("Reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Error("Reminder worker gave up; reminders will not be delivered")
					return
				}
				select {
				case <-ctx.Done():
					return
				case <-time.After(time.Duration(attempts*2) * time.Second):
				}
				continue
			}
			break
		}

		<-ctx.Done()
		srv.Shutdown()
		logger.Info("Reminder worker stopped")
	}()
}

// HandleReminderTask decodes a reminder and passes it to notifier.
func HandleReminderTask(notifier Notifier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseReminderPayload(task)
		if err != nil {
			logger.Error("Dropping reminder with invalid payload", zap.Error(err))
			return asynq.SkipRetry
		}

		if err := notifier.NotifyReminder(ctx, p); err != nil {
			logger.Error("Failed to deliver reminder", zap.String("bookingId", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings the queue Redis periodically to detect
// failures at runtime.
func monitorRedisConnection(ctx context.Context, logger *zap.Logger) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer client.Close()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil && ctx.Err() == nil {
				logger.Warn("Reminder queue Redis unreachable", zap.Error(err))
			}
		}
	}
}
