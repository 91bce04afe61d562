package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	mockdb "github.com/reliefworks/reliefnet/db/mock"
	db "github.com/reliefworks/reliefnet/db/sqlc"
	"github.com/reliefworks/reliefnet/util"
	"github.com/reliefworks/reliefnet/worker"
	mockwk "github.com/reliefworks/reliefnet/worker/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListCampDeliveries(t *testing.T) {
	user := randomUser(util.CampManagerRole)
	camp := randomCamp(user.ID)
	warehouse := randomWarehouse(0)
	vehicle := randomVehicle(warehouse.ID, 1000)

	first := pendingRequest(camp.ID, warehouse.ID, "general", [4]int64{100, 0, 0, 0})
	first.Status = "in_transit"
	first.VehicleID = pgtype.Int8{Int64: vehicle.ID, Valid: true}
	first.Eta = pgtype.Timestamptz{Time: time.Now().Add(2 * time.Hour), Valid: true}

	second := first
	second.ID++

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
	store.EXPECT().GetCampByManager(gomock.Any(), gomock.Any()).Times(1).Return(camp, nil)
	store.EXPECT().ListRequestsByCampAndStatus(gomock.Any(), gomock.Eq(db.ListRequestsByCampAndStatusParams{
		CampID: camp.ID,
		Status: "in_transit",
	})).Times(1).Return([]db.ResourceRequest{first, second}, nil)
	// Both requests ride the same vehicle; one lookup
	store.EXPECT().GetVehicle(gomock.Any(), gomock.Eq(vehicle.ID)).Times(1).Return(vehicle, nil)

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodGet, "/v1/deliveries", nil)
	require.NoError(t, err)

	addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var got []inboundDelivery
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, vehicle.DisplayID, got[0].VehicleDisplayID)
	require.Equal(t, "2 hour(s)", got[0].ETAText)
}

func TestCompleteDelivery(t *testing.T) {
	user := randomUser(util.CampManagerRole)
	camp := randomCamp(user.ID)
	warehouse := randomWarehouse(0)
	vehicle := randomVehicle(warehouse.ID, 1000)
	vehicle.Status = "in_transit"

	firstRequest := pendingRequest(camp.ID, warehouse.ID, "general", [4]int64{100, 50, 0, 0})
	firstRequest.Status = "in_transit"
	firstRequest.VehicleID = pgtype.Int8{Int64: vehicle.ID, Valid: true}

	secondRequest := pendingRequest(camp.ID, warehouse.ID, "emergency", [4]int64{0, 0, 40, 20})
	secondRequest.Status = "in_transit"
	secondRequest.VehicleID = pgtype.Int8{Int64: vehicle.ID, Valid: true}

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK_CompletesWholeBatch",
			body: gin.H{"vehicle_display_id": vehicle.DisplayID, "request_id": firstRequest.ID},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().GetCampByManager(gomock.Any(), gomock.Any()).Times(1).Return(camp, nil)
				store.EXPECT().GetVehicleByDisplayID(gomock.Any(), gomock.Eq(vehicle.DisplayID)).
					Times(1).Return(vehicle, nil)

				completedFirst := firstRequest
				completedFirst.Status = "completed"
				completedSecond := secondRequest
				completedSecond.Status = "completed"

				releasedVehicle := vehicle
				releasedVehicle.Status = "available"

				store.EXPECT().CompleteDeliveryTx(gomock.Any(), gomock.Eq(db.CompleteDeliveryTxParams{
					VehicleID: vehicle.ID,
					CampID:    camp.ID,
					RequestID: firstRequest.ID,
				})).Times(1).Return(db.CompleteDeliveryTxResult{
					CompletedRequests: []db.ResourceRequest{completedFirst, completedSecond},
					Vehicle:           releasedVehicle,
					Camp:              camp,
				}, nil)

				distributor.EXPECT().DistributeTaskSendNotification(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, payload *worker.SendNotificationPayload, _ ...asynq.Option) error {
						require.Equal(t, worker.NotificationDeliveryCompleted, payload.Type)
						require.Equal(t, camp.ID, payload.CampID)
						return nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got map[string]any
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, float64(2), got["completed_count"])
			},
		},
		{
			name: "OK_NotificationEnqueueFails",
			body: gin.H{"vehicle_display_id": vehicle.DisplayID, "request_id": firstRequest.ID},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().GetCampByManager(gomock.Any(), gomock.Any()).Times(1).Return(camp, nil)
				store.EXPECT().GetVehicleByDisplayID(gomock.Any(), gomock.Eq(vehicle.DisplayID)).
					Times(1).Return(vehicle, nil)

				completedFirst := firstRequest
				completedFirst.Status = "completed"
				releasedVehicle := vehicle
				releasedVehicle.Status = "available"

				store.EXPECT().CompleteDeliveryTx(gomock.Any(), gomock.Any()).
					Times(1).Return(db.CompleteDeliveryTxResult{
					CompletedRequests: []db.ResourceRequest{completedFirst},
					Vehicle:           releasedVehicle,
					Camp:              camp,
				}, nil)

				// A dead queue must not fail the confirmation itself
				distributor.EXPECT().DistributeTaskSendNotification(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).Return(errors.New("redis: connection refused"))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "RequestNotInTransit",
			body: gin.H{"vehicle_display_id": vehicle.DisplayID, "request_id": firstRequest.ID},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().GetCampByManager(gomock.Any(), gomock.Any()).Times(1).Return(camp, nil)
				store.EXPECT().GetVehicleByDisplayID(gomock.Any(), gomock.Eq(vehicle.DisplayID)).
					Times(1).Return(vehicle, nil)
				store.EXPECT().CompleteDeliveryTx(gomock.Any(), gomock.Any()).
					Times(1).Return(db.CompleteDeliveryTxResult{}, db.ErrRequestNotInTransit)
				distributor.EXPECT().DistributeTaskSendNotification(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "VehicleNotFound",
			body: gin.H{"vehicle_display_id": "TRK-MISSING", "request_id": firstRequest.ID},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().GetCampByManager(gomock.Any(), gomock.Any()).Times(1).Return(camp, nil)
				store.EXPECT().GetVehicleByDisplayID(gomock.Any(), gomock.Eq("TRK-MISSING")).
					Times(1).Return(db.Vehicle{}, pgx.ErrNoRows)
				store.EXPECT().CompleteDeliveryTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "MissingRequestID",
			body: gin.H{"vehicle_display_id": vehicle.DisplayID},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().CompleteDeliveryTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			distributor := mockwk.NewMockTaskDistributor(ctrl)
			tc.buildStubs(store, distributor)

			server := newTestServerWithDistributor(t, store, distributor)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/v1/deliveries/confirm", bytes.NewReader(data))
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
