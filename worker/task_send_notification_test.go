package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hibiken/asynq"
	mockdb "github.com/reliefworks/reliefnet/db/mock"
	db "github.com/reliefworks/reliefnet/db/sqlc"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProcessTaskSendNotification(t *testing.T) {
	payload := SendNotificationPayload{
		CampID:  12,
		Type:    NotificationVehicleDispatch,
		Message: "Vehicle TRK-001 has been dispatched with your supplies. ETA: 1 hour(s)",
		Data:    map[string]any{"vehicle_id": float64(3)},
	}
	jsonPayload, err := json.Marshal(payload)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, arg db.CreateNotificationParams) (db.Notification, error) {
			require.Equal(t, payload.CampID, arg.CampID)
			require.Equal(t, payload.Type, arg.Type)
			require.Equal(t, payload.Message, arg.Message)
			require.JSONEq(t, `{"vehicle_id": 3}`, string(arg.Data))
			return db.Notification{ID: 1, CampID: arg.CampID, Type: arg.Type, Message: arg.Message, Data: arg.Data}, nil
		})

	processor := NewTestTaskProcessor(store)

	task := asynq.NewTask(TaskSendNotification, jsonPayload)
	err = processor.ProcessTaskSendNotification(context.Background(), task)
	require.NoError(t, err)
}

func TestProcessTaskSendNotificationDefaultsData(t *testing.T) {
	payload := SendNotificationPayload{
		CampID:  7,
		Type:    NotificationRequestRejected,
		Message: "Your request was rejected and no other warehouse is operational.",
	}
	jsonPayload, err := json.Marshal(payload)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, arg db.CreateNotificationParams) (db.Notification, error) {
			require.Equal(t, []byte("{}"), arg.Data)
			return db.Notification{ID: 2, CampID: arg.CampID}, nil
		})

	processor := NewTestTaskProcessor(store)

	task := asynq.NewTask(TaskSendNotification, jsonPayload)
	err = processor.ProcessTaskSendNotification(context.Background(), task)
	require.NoError(t, err)
}

func TestProcessTaskSendNotificationBadPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Times(0)

	processor := NewTestTaskProcessor(store)

	task := asynq.NewTask(TaskSendNotification, []byte("not json"))
	err := processor.ProcessTaskSendNotification(context.Background(), task)
	require.Error(t, err)
}
