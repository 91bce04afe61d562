package db

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// memQuerier backs the transaction bodies with in-memory tables covering
// the queries they touch. Methods not listed here fall through to the
// embedded nil Querier and panic, which keeps the coverage honest.
type memQuerier struct {
	Querier

	camps      map[int64]Camp
	warehouses map[int64]Warehouse
	vehicles   map[int64]Vehicle
	requests   map[int64]ResourceRequest

	nextRequestID int64
}

func newMemQuerier() *memQuerier {
	return &memQuerier{
		camps:         map[int64]Camp{},
		warehouses:    map[int64]Warehouse{},
		vehicles:      map[int64]Vehicle{},
		requests:      map[int64]ResourceRequest{},
		nextRequestID: 1000,
	}
}

func (m *memQuerier) GetCamp(_ context.Context, id int64) (Camp, error) {
	camp, ok := m.camps[id]
	if !ok {
		return Camp{}, pgx.ErrNoRows
	}
	return camp, nil
}

func (m *memQuerier) GetWarehouse(_ context.Context, id int64) (Warehouse, error) {
	warehouse, ok := m.warehouses[id]
	if !ok {
		return Warehouse{}, pgx.ErrNoRows
	}
	return warehouse, nil
}

func (m *memQuerier) GetVehicleForUpdate(_ context.Context, id int64) (Vehicle, error) {
	vehicle, ok := m.vehicles[id]
	if !ok {
		return Vehicle{}, pgx.ErrNoRows
	}
	return vehicle, nil
}

func (m *memQuerier) GetResourceRequest(_ context.Context, id int64) (ResourceRequest, error) {
	request, ok := m.requests[id]
	if !ok {
		return ResourceRequest{}, pgx.ErrNoRows
	}
	return request, nil
}

func (m *memQuerier) AssignRequestVehicle(_ context.Context, arg AssignRequestVehicleParams) (ResourceRequest, error) {
	request, ok := m.requests[arg.ID]
	if !ok {
		return ResourceRequest{}, pgx.ErrNoRows
	}
	request.VehicleID = arg.VehicleID
	request.UpdatedAt = time.Now()
	m.requests[arg.ID] = request
	return request, nil
}

func (m *memQuerier) SumPendingLoadByVehicle(_ context.Context, vehicleID pgtype.Int8) (int64, error) {
	var total int64
	for _, request := range m.requests {
		if request.Status == "pending" && request.VehicleID == vehicleID {
			total += request.FoodQuantity + request.WaterQuantity +
				request.EssentialsQuantity + request.ClothesQuantity
		}
	}
	return total, nil
}

func (m *memQuerier) ListPendingRequestsByVehicle(_ context.Context, vehicleID pgtype.Int8) ([]ResourceRequest, error) {
	var batch []ResourceRequest
	for _, request := range m.requests {
		if request.Status == "pending" && request.VehicleID == vehicleID {
			batch = append(batch, request)
		}
	}
	sort.Slice(batch, func(i, j int) bool { return batch[i].ID < batch[j].ID })
	return batch, nil
}

func (m *memQuerier) ListInTransitRequestsByVehicleAndCamp(_ context.Context, arg ListInTransitRequestsByVehicleAndCampParams) ([]ResourceRequest, error) {
	var batch []ResourceRequest
	for _, request := range m.requests {
		if request.Status == "in_transit" && request.VehicleID == arg.VehicleID && request.CampID == arg.CampID {
			batch = append(batch, request)
		}
	}
	sort.Slice(batch, func(i, j int) bool { return batch[i].ID < batch[j].ID })
	return batch, nil
}

func (m *memQuerier) CountRequestsByVehicleAndStatus(_ context.Context, arg CountRequestsByVehicleAndStatusParams) (int64, error) {
	var count int64
	for _, request := range m.requests {
		if request.VehicleID == arg.VehicleID && request.Status == arg.Status {
			count++
		}
	}
	return count, nil
}

func (m *memQuerier) UpdateRequestStatus(_ context.Context, arg UpdateRequestStatusParams) (ResourceRequest, error) {
	request, ok := m.requests[arg.ID]
	if !ok {
		return ResourceRequest{}, pgx.ErrNoRows
	}
	request.Status = arg.Status
	request.Eta = arg.Eta
	request.UpdatedAt = time.Now()
	m.requests[arg.ID] = request
	return request, nil
}

func (m *memQuerier) CreateResourceRequest(_ context.Context, arg CreateResourceRequestParams) (ResourceRequest, error) {
	m.nextRequestID++
	request := ResourceRequest{
		ID:                 m.nextRequestID,
		CampID:             arg.CampID,
		WarehouseID:        arg.WarehouseID,
		FoodQuantity:       arg.FoodQuantity,
		WaterQuantity:      arg.WaterQuantity,
		EssentialsQuantity: arg.EssentialsQuantity,
		ClothesQuantity:    arg.ClothesQuantity,
		Priority:           arg.Priority,
		Status:             "pending",
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
	m.requests[request.ID] = request
	return request, nil
}

func (m *memQuerier) ClearVehicleFromPendingRequests(_ context.Context, vehicleID pgtype.Int8) error {
	for id, request := range m.requests {
		if request.Status == "pending" && request.VehicleID == vehicleID {
			request.VehicleID = pgtype.Int8{}
			m.requests[id] = request
		}
	}
	return nil
}

func (m *memQuerier) ConsumeWarehouseStock(_ context.Context, arg ConsumeWarehouseStockParams) (Warehouse, error) {
	warehouse, ok := m.warehouses[arg.ID]
	if !ok {
		return Warehouse{}, pgx.ErrNoRows
	}
	warehouse.FoodAvailable -= arg.FoodQuantity
	warehouse.WaterAvailable -= arg.WaterQuantity
	warehouse.EssentialsAvailable -= arg.EssentialsQuantity
	warehouse.ClothesAvailable -= arg.ClothesQuantity
	warehouse.FoodUsed += arg.FoodQuantity
	warehouse.WaterUsed += arg.WaterQuantity
	warehouse.EssentialsUsed += arg.EssentialsQuantity
	warehouse.ClothesUsed += arg.ClothesQuantity
	m.warehouses[arg.ID] = warehouse
	return warehouse, nil
}

func (m *memQuerier) CreditCampStock(_ context.Context, arg CreditCampStockParams) (Camp, error) {
	camp, ok := m.camps[arg.ID]
	if !ok {
		return Camp{}, pgx.ErrNoRows
	}
	camp.FoodStock += arg.FoodStock
	camp.WaterStock += arg.WaterStock
	camp.EssentialsStock += arg.EssentialsStock
	camp.ClothesStock += arg.ClothesStock
	m.camps[arg.ID] = camp
	return camp, nil
}

func (m *memQuerier) UpdateVehicleStatus(_ context.Context, arg UpdateVehicleStatusParams) (Vehicle, error) {
	vehicle, ok := m.vehicles[arg.ID]
	if !ok {
		return Vehicle{}, pgx.ErrNoRows
	}
	vehicle.Status = arg.Status
	m.vehicles[arg.ID] = vehicle
	return vehicle, nil
}

func (m *memQuerier) DeleteVehicle(_ context.Context, id int64) error {
	delete(m.vehicles, id)
	return nil
}

// ==================== Seed helpers ====================

func seedCamp(m *memQuerier, id int64) Camp {
	camp := Camp{
		ID:                 id,
		Name:               "Camp Relief",
		Location:           "Sector 7",
		Lat:                10,
		Lng:                10,
		Capacity:           300,
		FoodCapacity:       1000,
		WaterCapacity:      1000,
		EssentialsCapacity: 1000,
		ClothesCapacity:    1000,
		Status:             "Active",
		CreatedAt:          time.Now(),
	}
	m.camps[id] = camp
	return camp
}

func seedWarehouse(m *memQuerier, id int64) Warehouse {
	warehouse := Warehouse{
		ID:                  id,
		Name:                "Central Depot",
		Location:            "Sector 1",
		Lat:                 11,
		Lng:                 10,
		FoodCapacity:        1000,
		WaterCapacity:       1000,
		EssentialsCapacity:  1000,
		ClothesCapacity:     1000,
		FoodAvailable:       800,
		WaterAvailable:      800,
		EssentialsAvailable: 800,
		ClothesAvailable:    800,
		Status:              "Operational",
		CreatedAt:           time.Now(),
	}
	m.warehouses[id] = warehouse
	return warehouse
}

func seedVehicle(m *memQuerier, id, warehouseID int64, capacity float64, status string) Vehicle {
	vehicle := Vehicle{
		ID:          id,
		DisplayID:   "TRK-0001",
		Capacity:    capacity,
		Status:      status,
		WarehouseID: warehouseID,
		CreatedAt:   time.Now(),
	}
	m.vehicles[id] = vehicle
	return vehicle
}

func seedRequest(m *memQuerier, id, campID, warehouseID int64, quantities [4]int64, priority, status string) ResourceRequest {
	request := ResourceRequest{
		ID:                 id,
		CampID:             campID,
		WarehouseID:        pgtype.Int8{Int64: warehouseID, Valid: true},
		FoodQuantity:       quantities[0],
		WaterQuantity:      quantities[1],
		EssentialsQuantity: quantities[2],
		ClothesQuantity:    quantities[3],
		Priority:           priority,
		Status:             status,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
	m.requests[id] = request
	return request
}

func assignVehicle(m *memQuerier, requestID, vehicleID int64) ResourceRequest {
	request := m.requests[requestID]
	request.VehicleID = pgtype.Int8{Int64: vehicleID, Valid: true}
	m.requests[requestID] = request
	return request
}
