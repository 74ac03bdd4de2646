package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueRecordatorios = "jobs:recordatorios"

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueRecordatorio pushes a follow-up reminder job to Redis.
func (d *Dispatcher) EnqueueRecordatorio(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueRecordatorios, "recordatorio", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Processor handles one job payload. Returning an error triggers a retry.
type Processor interface {
	Process(ctx context.Context, raw json.RawMessage) error
}

// StartWorkerPool launches numWorkers goroutines consuming the reminder queue.
// Each goroutine blocks on BRPOP — zero CPU when idle. Failed jobs are
// re-enqueued up to MaxJobAttempts and then parked in the DLQ.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, proc Processor, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, proc, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

const MaxJobAttempts = 3

func runWorker(ctx context.Context, rdb *redis.Client, proc Processor, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueRecordatorios).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, proc, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, proc Processor, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	if err := proc.Process(ctx, job.Payload); err != nil {
		job.Attempts++
		if job.Attempts >= MaxJobAttempts {
			SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, err.Error(), job.Attempts)
			return
		}
		encoded, mErr := json.Marshal(job)
		if mErr != nil {
			log.Error().Err(mErr).Msg("failed to re-enqueue job")
			return
		}
		if pushErr := rdb.LPush(ctx, queue, encoded).Err(); pushErr != nil {
			log.Error().Err(pushErr).Msg("failed to re-enqueue job")
		}
		return
	}
	log.Info().Str("type", job.Type).Str("queue", queue).Msg("job processed")
}
