package models

// VehicleIndex is a bijection between vehicle identifiers and dense
// zero-based indices, built once per analysis run so per-vehicle series can
// live in fixed-size slices instead of keyed maps.
type VehicleIndex struct {
	idToIdx map[string]int
	idxToID []string
}

// NewVehicleIndex builds the bijection from the full list of distinct
// vehicle identifiers observed in the window
func NewVehicleIndex(vehicleIDs []string) *VehicleIndex {
	idx := &VehicleIndex{
		idToIdx: make(map[string]int, len(vehicleIDs)),
		idxToID: make([]string, len(vehicleIDs)),
	}
	for i, id := range vehicleIDs {
		idx.idToIdx[id] = i
		idx.idxToID[i] = id
	}
	return idx
}

// Len returns the number of indexed vehicles
func (v *VehicleIndex) Len() int {
	return len(v.idxToID)
}

// IndexOf returns the dense index for a vehicle identifier.
// An identifier absent from the window maps to nothing.
func (v *VehicleIndex) IndexOf(vehicleID string) (int, bool) {
	i, ok := v.idToIdx[vehicleID]
	return i, ok
}

// IDAt returns the vehicle identifier for a dense index
func (v *VehicleIndex) IDAt(i int) string {
	return v.idxToID[i]
}
