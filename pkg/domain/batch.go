package domain

import (
	"slices"
	"time"
)

// BatchStatus is the position of a batch in the supply chain.
type BatchStatus string

const (
	BatchStatusHarvested   BatchStatus = "harvested"
	BatchStatusVerified    BatchStatus = "verified"
	BatchStatusInTransit   BatchStatus = "in_transit"
	BatchStatusProcessing  BatchStatus = "processing"
	BatchStatusLabTested   BatchStatus = "lab_tested"
	BatchStatusQRGenerated BatchStatus = "qr_generated"
	BatchStatusDelivered   BatchStatus = "delivered"
)

// BatchStatuses lists the statuses in supply chain order.
var BatchStatuses = []BatchStatus{ //nolint: gochecknoglobals
	BatchStatusHarvested,
	BatchStatusVerified,
	BatchStatusInTransit,
	BatchStatusProcessing,
	BatchStatusLabTested,
	BatchStatusQRGenerated,
	BatchStatusDelivered,
}

// Valid reports whether s is a known status.
func (s BatchStatus) Valid() bool { return slices.Contains(BatchStatuses, s) }

// Rank returns the position of s in the supply chain, -1 when unknown.
func (s BatchStatus) Rank() int { return slices.Index(BatchStatuses, s) }

// Before reports whether s comes strictly earlier in the supply chain than o.
func (s BatchStatus) Before(o BatchStatus) bool { return s.Rank() < o.Rank() }

// Advance returns the later of s and next; statuses never move backwards.
func (s BatchStatus) Advance(next BatchStatus) BatchStatus {
	if s.Before(next) {
		return next
	}

	return s
}

// In reports whether s is one of the given statuses.
func (s BatchStatus) In(statuses ...BatchStatus) bool { return slices.Contains(statuses, s) }

// DefaultBatchUnit is the unit assigned when a batch is created without one.
const DefaultBatchUnit = "kg"

// DefaultFarmID is the farm assigned when a batch is created without one.
const DefaultFarmID = "f1"

// Batch is a tracked quantity of a herb harvest.
type Batch struct {
	ID             string      `json:"id"`
	HerbName       string      `json:"herbName"`
	Quantity       float64     `json:"quantity"`
	Unit           string      `json:"unit"`
	HarvestDate    string      `json:"harvestDate"`
	AIQualityScore float64     `json:"aiQualityScore"`
	BlockchainHash string      `json:"blockchainHash"`
	Status         BatchStatus `json:"status"`
	CreatedBy      UserID      `json:"createdBy"`
	FarmID         string      `json:"farmId"`
	ImageURL       string      `json:"imageUrl,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// Anchored reports whether the batch has been written to the ledger.
func (b Batch) Anchored() bool { return b.BlockchainHash != "" }

// GeoLocation is the position of a farm.
type GeoLocation struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Farm is a farm registered by a farmer.
type Farm struct {
	ID          string      `json:"id"`
	FarmerID    UserID      `json:"farmerId"`
	FarmName    string      `json:"farmName"`
	GeoLocation GeoLocation `json:"geoLocation"`
}
