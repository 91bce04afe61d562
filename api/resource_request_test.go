package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	mockdb "github.com/reliefworks/reliefnet/db/mock"
	db "github.com/reliefworks/reliefnet/db/sqlc"
	"github.com/reliefworks/reliefnet/token"
	"github.com/reliefworks/reliefnet/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSubmitResourceRequest(t *testing.T) {
	user := randomUser(util.CampManagerRole)
	camp := randomCamp(user.ID)
	camp.Lat, camp.Lng = 10.0, 10.0

	nearWarehouse := randomWarehouse(0)
	nearWarehouse.Lat, nearWarehouse.Lng = 10.2, 10.0
	farWarehouse := randomWarehouse(0)
	farWarehouse.Lat, farWarehouse.Lng = 20.0, 10.0

	smallWarehouse := randomWarehouse(0)
	smallWarehouse.Lat, smallWarehouse.Lng = 10.1, 10.0
	smallWarehouse.FoodCapacity = 10

	corruptWarehouse := randomWarehouse(0)
	corruptWarehouse.Lat, corruptWarehouse.Lng = 999.0, 10.0

	testCases := []struct {
		name          string
		body          gin.H
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker token.Maker)
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK_NearestWarehouseWins",
			body: gin.H{"food_quantity": 100, "water_quantity": 50},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().GetCampByManager(gomock.Any(), gomock.Eq(pgtype.Int8{Int64: user.ID, Valid: true})).
					Times(1).Return(camp, nil)
				store.EXPECT().ListWarehousesByStatus(gomock.Any(), gomock.Eq("Operational")).
					Times(1).Return([]db.Warehouse{farWarehouse, nearWarehouse}, nil)
				store.EXPECT().CreateResourceRequest(gomock.Any(), gomock.Eq(db.CreateResourceRequestParams{
					CampID:        camp.ID,
					WarehouseID:   pgtype.Int8{Int64: nearWarehouse.ID, Valid: true},
					FoodQuantity:  100,
					WaterQuantity: 50,
					Priority:      "general",
				})).Times(1).Return(pendingRequest(camp.ID, nearWarehouse.ID, "general", [4]int64{100, 50, 0, 0}), nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got map[string]any
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, true, got["success"])
				require.Equal(t, nearWarehouse.Name, got["warehouse"])
			},
		},
		{
			name: "CapacityFilterSkipsSmallWarehouse",
			body: gin.H{"food_quantity": 100},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().GetCampByManager(gomock.Any(), gomock.Any()).Times(1).Return(camp, nil)
				// smallWarehouse is nearer but cannot cover 100 food
				store.EXPECT().ListWarehousesByStatus(gomock.Any(), gomock.Eq("Operational")).
					Times(1).Return([]db.Warehouse{smallWarehouse, nearWarehouse}, nil)
				store.EXPECT().CreateResourceRequest(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ any, arg db.CreateResourceRequestParams) (db.ResourceRequest, error) {
						require.Equal(t, nearWarehouse.ID, arg.WarehouseID.Int64)
						return pendingRequest(camp.ID, nearWarehouse.ID, "general", [4]int64{100, 0, 0, 0}), nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "CorruptCoordinatesNeverWin",
			body: gin.H{"food_quantity": 100},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().GetCampByManager(gomock.Any(), gomock.Any()).Times(1).Return(camp, nil)
				// corruptWarehouse's coordinates produce a zero distance,
				// which must not beat the real far warehouse
				store.EXPECT().ListWarehousesByStatus(gomock.Any(), gomock.Eq("Operational")).
					Times(1).Return([]db.Warehouse{corruptWarehouse, farWarehouse}, nil)
				store.EXPECT().CreateResourceRequest(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ any, arg db.CreateResourceRequestParams) (db.ResourceRequest, error) {
						require.Equal(t, farWarehouse.ID, arg.WarehouseID.Int64)
						return pendingRequest(camp.ID, farWarehouse.ID, "general", [4]int64{100, 0, 0, 0}), nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "NoFulfillableWarehouse",
			body: gin.H{"food_quantity": 5000},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().GetCampByManager(gomock.Any(), gomock.Any()).Times(1).Return(camp, nil)
				store.EXPECT().ListWarehousesByStatus(gomock.Any(), gomock.Eq("Operational")).
					Times(1).Return([]db.Warehouse{nearWarehouse, farWarehouse}, nil)
				store.EXPECT().CreateResourceRequest(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got map[string]any
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, false, got["success"])
				require.Equal(t, "no fulfillable warehouse", got["reason"])
			},
		},
		{
			name: "AllZeroQuantities",
			body: gin.H{},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().CreateResourceRequest(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "InvalidPriority",
			body: gin.H{"food_quantity": 10, "priority": "urgent"},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "NoManagedCamp",
			body: gin.H{"food_quantity": 10},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().GetCampByManager(gomock.Any(), gomock.Any()).Times(1).Return(db.Camp{}, pgx.ErrNoRows)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name: "WrongRole",
			body: gin.H{"food_quantity": 10},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				warehouseUser := user
				warehouseUser.Role = util.WarehouseManagerRole
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(warehouseUser, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name: "NoAuthorization",
			body: gin.H{"food_quantity": 10},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
			},
			buildStubs: func(store *mockdb.MockStore) {
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/v1/requests", bytes.NewReader(data))
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestGetRequestStatus(t *testing.T) {
	user := randomUser(util.CampManagerRole)
	camp := randomCamp(user.ID)
	request := pendingRequest(camp.ID, 77, "general", [4]int64{10, 0, 0, 0})

	otherCampRequest := pendingRequest(camp.ID+1, 77, "general", [4]int64{10, 0, 0, 0})

	testCases := []struct {
		name          string
		requestID     int64
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:      "OK",
			requestID: request.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().GetCampByManager(gomock.Any(), gomock.Any()).Times(1).Return(camp, nil)
				store.EXPECT().GetResourceRequest(gomock.Any(), gomock.Eq(request.ID)).Times(1).Return(request, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got requestStatusResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, request.ID, got.Request.ID)
				// A pending request has no ETA yet
				require.Equal(t, "Calculating...", got.ETAText)
			},
		},
		{
			name:      "BelongsToAnotherCamp",
			requestID: otherCampRequest.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().GetCampByManager(gomock.Any(), gomock.Any()).Times(1).Return(camp, nil)
				store.EXPECT().GetResourceRequest(gomock.Any(), gomock.Eq(otherCampRequest.ID)).Times(1).Return(otherCampRequest, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name:      "NotFound",
			requestID: 99999,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().GetCampByManager(gomock.Any(), gomock.Any()).Times(1).Return(camp, nil)
				store.EXPECT().GetResourceRequest(gomock.Any(), gomock.Eq(int64(99999))).Times(1).Return(db.ResourceRequest{}, pgx.ErrNoRows)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			url := fmt.Sprintf("/v1/requests/%d/status", tc.requestID)
			request, err := http.NewRequest(http.MethodGet, url, nil)
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestGetWarehouseWorkQueue(t *testing.T) {
	user := randomUser(util.WarehouseManagerRole)
	warehouse := randomWarehouse(user.ID)
	vehicle := randomVehicle(warehouse.ID, 1000)
	unassigned := pendingRequest(5, warehouse.ID, "general", [4]int64{200, 0, 0, 0})

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
	store.EXPECT().GetWarehouseByManager(gomock.Any(), gomock.Eq(pgtype.Int8{Int64: user.ID, Valid: true})).
		Times(1).Return(warehouse, nil)
	store.EXPECT().ListUnassignedRequestsByWarehouse(gomock.Any(), gomock.Eq(pgtype.Int8{Int64: warehouse.ID, Valid: true})).
		Times(1).Return([]db.ResourceRequest{unassigned}, nil)
	store.EXPECT().ListAvailableVehiclesByWarehouse(gomock.Any(), gomock.Eq(warehouse.ID)).
		Times(1).Return([]db.Vehicle{vehicle}, nil)
	store.EXPECT().SumPendingLoadByVehicle(gomock.Any(), gomock.Eq(pgtype.Int8{Int64: vehicle.ID, Valid: true})).
		Times(1).Return(int64(300), nil)

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodGet, "/v1/warehouse/requests", nil)
	require.NoError(t, err)

	addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var got warehouseWorkQueueResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Len(t, got.PendingRequests, 1)
	require.Len(t, got.WaitingVehicles, 1)
	require.Equal(t, int64(300), got.WaitingVehicles[0].CurrentLoad)
	// 300 of 1000 is below the dispatch threshold
	require.True(t, got.WaitingVehicles[0].NeedsMore)
}
