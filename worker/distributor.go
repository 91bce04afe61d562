package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

// TaskDistributor enqueues background tasks for the processor
type TaskDistributor interface {
	// DistributeTaskSendNotification enqueues a camp notification task
	DistributeTaskSendNotification(
		ctx context.Context,
		payload *SendNotificationPayload,
		opts ...asynq.Option,
	) error
}

type RedisTaskDistributor struct {
	client *asynq.Client
}

func NewRedisTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)
	return &RedisTaskDistributor{
		client: client,
	}
}
