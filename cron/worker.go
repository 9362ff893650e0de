package cron

import (
	"context"
	"log"

	"lexifeed/config"
	"lexifeed/services/reading"

	"github.com/hibiken/asynq"
)

const TypeQuotePrewarm = "quote:prewarm"

// InitQuotePrewarmWorker runs the async worker and scheduler in background.
// Once per day it warms the day-scoped quote cache so the first reader of
// the morning gets an instant quote card instead of waiting on the
// provider. Cache expiry itself stays lazy; this only front-loads one fetch.
func InitQuotePrewarmWorker(readingSvc reading.ReadingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeQuotePrewarm, handleQuotePrewarm(readingSvc))

	go func() {
		log.Println("[QuoteWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[QuoteWorker] worker stopped: %v", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("5 0 * * *", asynq.NewTask(TypeQuotePrewarm, nil)); err != nil {
		log.Printf("[QuoteWorker] failed to register schedule: %v", err)
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[QuoteWorker] scheduler stopped: %v", err)
		}
	}()
}

func handleQuotePrewarm(readingSvc reading.ReadingService) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		if _, err := readingSvc.GetDailyQuote(ctx); err != nil {
			// The next /api/quote request retries; absence is tolerable.
			log.Printf("[QuoteWorker] prewarm failed: %v", err)
		}
		return nil
	}
}
