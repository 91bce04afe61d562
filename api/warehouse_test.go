package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	mockdb "github.com/reliefworks/reliefnet/db/mock"
	db "github.com/reliefworks/reliefnet/db/sqlc"
	"github.com/reliefworks/reliefnet/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUpdateWarehouseCapacity(t *testing.T) {
	user := randomUser(util.WarehouseManagerRole)
	warehouse := randomWarehouse(user.ID)
	// 800 of each resource is currently available

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{
				"food_capacity":       2000,
				"water_capacity":      2000,
				"essentials_capacity": 2000,
				"clothes_capacity":    2000,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().GetWarehouseByManager(gomock.Any(), gomock.Any()).Times(1).Return(warehouse, nil)

				updated := warehouse
				updated.FoodCapacity = 2000
				store.EXPECT().UpdateWarehouseCapacity(gomock.Any(), gomock.Eq(db.UpdateWarehouseCapacityParams{
					ID:                 warehouse.ID,
					FoodCapacity:       2000,
					WaterCapacity:      2000,
					EssentialsCapacity: 2000,
					ClothesCapacity:    2000,
				})).Times(1).Return(updated, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "BelowAvailableStock",
			body: gin.H{
				"food_capacity":       500,
				"water_capacity":      2000,
				"essentials_capacity": 2000,
				"clothes_capacity":    2000,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().GetWarehouseByManager(gomock.Any(), gomock.Any()).Times(1).Return(warehouse, nil)
				store.EXPECT().UpdateWarehouseCapacity(gomock.Any(), gomock.Any()).Times(0)
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
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPatch, "/v1/warehouse/capacity", bytes.NewReader(data))
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestUpdateWarehouseAvailable(t *testing.T) {
	user := randomUser(util.WarehouseManagerRole)
	warehouse := randomWarehouse(user.ID)
	// Capacity is 1000 per resource

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{
				"food_available":       900,
				"water_available":      900,
				"essentials_available": 900,
				"clothes_available":    900,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().GetWarehouseByManager(gomock.Any(), gomock.Any()).Times(1).Return(warehouse, nil)

				updated := warehouse
				updated.FoodAvailable = 900
				store.EXPECT().UpdateWarehouseAvailable(gomock.Any(), gomock.Eq(db.UpdateWarehouseAvailableParams{
					ID:                  warehouse.ID,
					FoodAvailable:       900,
					WaterAvailable:      900,
					EssentialsAvailable: 900,
					ClothesAvailable:    900,
				})).Times(1).Return(updated, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "ExceedsCapacity",
			body: gin.H{"food_available": 1200},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().GetWarehouseByManager(gomock.Any(), gomock.Any()).Times(1).Return(warehouse, nil)
				store.EXPECT().UpdateWarehouseAvailable(gomock.Any(), gomock.Any()).Times(0)
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
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPatch, "/v1/warehouse/available", bytes.NewReader(data))
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestUpdateWarehouseStatus(t *testing.T) {
	user := randomUser(util.WarehouseManagerRole)
	warehouse := randomWarehouse(user.ID)

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{"status": "Maintenance"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().GetWarehouseByManager(gomock.Any(), gomock.Any()).Times(1).Return(warehouse, nil)

				updated := warehouse
				updated.Status = "Maintenance"
				store.EXPECT().UpdateWarehouseStatus(gomock.Any(), gomock.Eq(db.UpdateWarehouseStatusParams{
					ID:     warehouse.ID,
					Status: "Maintenance",
				})).Times(1).Return(updated, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got db.Warehouse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, "Maintenance", got.Status)
			},
		},
		{
			name: "UnknownStatus",
			body: gin.H{"status": "Demolished"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
				store.EXPECT().UpdateWarehouseStatus(gomock.Any(), gomock.Any()).Times(0)
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
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPatch, "/v1/warehouse/status", bytes.NewReader(data))
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
