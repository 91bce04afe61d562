package api

import (
	"context"

	"github.com/reliefworks/reliefnet/algorithm"
	db "github.com/reliefworks/reliefnet/db/sqlc"
)

// resourceBundle is the requested quantities of each supply category
type resourceBundle struct {
	Food       int64 `json:"food_quantity"`
	Water      int64 `json:"water_quantity"`
	Essentials int64 `json:"essentials_quantity"`
	Clothes    int64 `json:"clothes_quantity"`
}

func (b resourceBundle) total() int64 {
	return b.Food + b.Water + b.Essentials + b.Clothes
}

func (b resourceBundle) allZero() bool {
	return b.total() == 0
}

// canFulfill reports whether the warehouse's capacity covers every
// requested quantity. Capacity, not live availability: selection and
// consumption deliberately read different counters.
func canFulfill(warehouse db.Warehouse, bundle resourceBundle) bool {
	return warehouse.FoodCapacity >= bundle.Food &&
		warehouse.WaterCapacity >= bundle.Water &&
		warehouse.EssentialsCapacity >= bundle.Essentials &&
		warehouse.ClothesCapacity >= bundle.Clothes
}

// selectWarehouse picks the nearest operational warehouse able to fulfil the
// bundle by road distance. First seen wins on distance ties. Returns false
// when no warehouse qualifies.
func (server *Server) selectWarehouse(ctx context.Context, camp db.Camp, bundle resourceBundle) (db.Warehouse, bool, error) {
	warehouses, err := server.store.ListWarehousesByStatus(ctx, "Operational")
	if err != nil {
		return db.Warehouse{}, false, err
	}

	campLoc := algorithm.Location{Lat: camp.Lat, Lng: camp.Lng}

	var best db.Warehouse
	bestDistance := -1.0
	for _, warehouse := range warehouses {
		if !canFulfill(warehouse, bundle) {
			continue
		}
		route := server.routingClient.RoadDistanceDuration(ctx, campLoc, algorithm.Location{Lat: warehouse.Lat, Lng: warehouse.Lng})
		// Zero distance means the route could not be computed, not a
		// zero-length route; never let it win the selection.
		if route.DistanceKm <= 0 {
			continue
		}
		if bestDistance < 0 || route.DistanceKm < bestDistance {
			best = warehouse
			bestDistance = route.DistanceKm
		}
	}

	if bestDistance < 0 {
		return db.Warehouse{}, false, nil
	}
	return best, true, nil
}

// selectRerouteWarehouse picks the nearest other operational warehouse by
// distance alone. Capacity is not rechecked on reroute.
func (server *Server) selectRerouteWarehouse(ctx context.Context, camp db.Camp, excludeWarehouseID int64) (db.Warehouse, bool, error) {
	warehouses, err := server.store.ListOtherWarehousesByStatus(ctx, db.ListOtherWarehousesByStatusParams{
		Status: "Operational",
		ID:     excludeWarehouseID,
	})
	if err != nil {
		return db.Warehouse{}, false, err
	}

	campLoc := algorithm.Location{Lat: camp.Lat, Lng: camp.Lng}

	var best db.Warehouse
	bestDistance := -1.0
	for _, warehouse := range warehouses {
		route := server.routingClient.RoadDistanceDuration(ctx, campLoc, algorithm.Location{Lat: warehouse.Lat, Lng: warehouse.Lng})
		if route.DistanceKm <= 0 {
			continue
		}
		if bestDistance < 0 || route.DistanceKm < bestDistance {
			best = warehouse
			bestDistance = route.DistanceKm
		}
	}

	if bestDistance < 0 {
		return db.Warehouse{}, false, nil
	}
	return best, true, nil
}
