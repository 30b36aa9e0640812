package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ledgerly/config"
	financeRepo "ledgerly/database/repository/finance"
	"ledgerly/services/alerts"
	"ledgerly/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeAlertEvaluate = "alerts:evaluate"

type evaluatePayload struct {
	UserID string `json:"userId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitAlertWorker runs the async worker in background.
func InitAlertWorker(alertSvc alerts.AlertService, locks *utils.LockManager) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAlertEvaluate, handleEvaluateTask(alertSvc, locks))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[AlertWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[AlertWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[AlertWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleEvaluateTask(alertSvc alerts.AlertService, locks *utils.LockManager) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p evaluatePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[AlertWorker] invalid payload: %v", err)
			return err
		}

		acquired, err := locks.Acquire(ctx, p.UserID)
		if err != nil {
			return err
		}
		if !acquired {
			// Another pass is in flight for this user; the next sweep picks
			// them up again.
			log.Printf("[AlertWorker] pass already running for user %s, skipping", p.UserID)
			return nil
		}
		defer locks.Release(context.Background(), p.UserID)

		created, err := alertSvc.RunEvaluationPass(ctx, p.UserID)
		if err != nil {
			log.Printf("[AlertWorker] evaluation pass failed for user %s (created %d): %v", p.UserID, len(created), err)
			return err
		}
		if len(created) > 0 {
			log.Printf("[AlertWorker] created %d alert(s) for user %s", len(created), p.UserID)
		}
		return nil
	}
}

// StartAlertScheduler sweeps known users on an interval and enqueues one
// evaluation task per user.
func StartAlertScheduler(ctx context.Context, finance financeRepo.FinancialRecordRepository) {
	interval := time.Duration(config.AppConfig.EvalIntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	client := asynq.NewClient(redisOpts())
	defer client.Close()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Alert scheduler shutdown signal received.")
			return
		case <-ticker.C:
			userIDs, err := finance.ListUserIDs(ctx)
			if err != nil {
				log.Printf("Alert sweep failed to list users: %v", err)
				continue
			}
			for _, userID := range userIDs {
				payload, err := json.Marshal(evaluatePayload{UserID: userID})
				if err != nil {
					continue
				}
				if _, err := client.EnqueueContext(ctx, asynq.NewTask(TypeAlertEvaluate, payload)); err != nil {
					log.Printf("Failed to enqueue evaluation for user %s: %v", userID, err)
				}
			}
			log.Printf("Alert sweep enqueued %d user(s)", len(userIDs))
		}
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[AlertWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
