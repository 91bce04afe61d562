package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	db "github.com/reliefworks/reliefnet/db/sqlc"
	"github.com/rs/zerolog/log"
)

const (
	TaskSendNotification = "notification:send"
)

// Notification types written to the camp feed
const (
	NotificationVehicleDispatch             = "vehicle_dispatch"
	NotificationRequestRejected             = "request_rejected"
	NotificationRequestRejectedAndForwarded = "request_rejected_and_forwarded"
	NotificationDeliveryCompleted           = "delivery_completed"
)

// SendNotificationPayload carries a camp notification through the task queue
type SendNotificationPayload struct {
	CampID  int64          `json:"camp_id"`
	Type    string         `json:"type"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// DistributeTaskSendNotification enqueues a camp notification task
func (distributor *RedisTaskDistributor) DistributeTaskSendNotification(
	ctx context.Context,
	payload *SendNotificationPayload,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskSendNotification, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Debug().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int64("camp_id", payload.CampID).
		Str("notification_type", payload.Type).
		Msg("enqueued notification task")

	return nil
}

// ProcessTaskSendNotification writes the notification record for the camp feed
func (processor *RedisTaskProcessor) ProcessTaskSendNotification(ctx context.Context, task *asynq.Task) error {
	var payload SendNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	createParams := db.CreateNotificationParams{
		CampID:  payload.CampID,
		Type:    payload.Type,
		Message: payload.Message,
	}

	if payload.Data != nil {
		dataJSON, err := json.Marshal(payload.Data)
		if err != nil {
			return fmt.Errorf("marshal data: %w", err)
		}
		createParams.Data = dataJSON
	} else {
		createParams.Data = []byte("{}")
	}

	notification, err := processor.store.CreateNotification(ctx, createParams)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	log.Info().
		Int64("notification_id", notification.ID).
		Int64("camp_id", payload.CampID).
		Str("type", payload.Type).
		Msg("notification created")

	return nil
}
