package domain

import "time"

// Transfer records a change of custody of a batch.
type Transfer struct {
	ID           string    `json:"id"`
	BatchID      string    `json:"batchId"`
	FromUserID   UserID    `json:"fromUserId"`
	ToUserID     UserID    `json:"toUserId"`
	Timestamp    time.Time `json:"timestamp"`
	FromUserName string    `json:"fromUserName"`
	ToUserName   string    `json:"toUserName"`
}

// LabReportStatus is the review state of a lab report.
type LabReportStatus string

const (
	LabReportPending  LabReportStatus = "pending"
	LabReportVerified LabReportStatus = "verified"
	LabReportRejected LabReportStatus = "rejected"
)

// Valid reports whether s is a known lab report status.
func (s LabReportStatus) Valid() bool {
	return s == LabReportPending || s == LabReportVerified || s == LabReportRejected
}

// LabResults are the measured values of a lab test.
type LabResults struct {
	Purity          float64 `json:"purity"`
	Contaminants    bool    `json:"contaminants"`
	ActiveCompounds float64 `json:"activeCompounds"`
	Grade           string  `json:"grade"`
}

// LabReport is a third-party quality test result linked to a batch.
type LabReport struct {
	ID                 string          `json:"id"`
	BatchID            string          `json:"batchId"`
	IPFSHash           string          `json:"ipfsHash"`
	VerificationStatus LabReportStatus `json:"verificationStatus"`
	TestDate           time.Time       `json:"testDate"`
	Results            LabResults      `json:"results"`
}

// TransportLog is a sensor reading taken while a batch is moved.
type TransportLog struct {
	ID          string    `json:"id"`
	BatchID     string    `json:"batchId"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location"`
}

// QRRecord links a scannable code to the public verification page of a batch.
type QRRecord struct {
	ID          string    `json:"id"`
	BatchID     string    `json:"batchId"`
	QRCodeURL   string    `json:"qrCodeURL"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// EventType classifies supply chain events.
type EventType string

const (
	EventHarvest      EventType = "harvest"
	EventVerification EventType = "verification"
	EventTransfer     EventType = "transfer"
	EventLabTest      EventType = "lab_test"
	EventProcessing   EventType = "processing"
	EventQRGenerated  EventType = "qr_generated"
	EventDelivery     EventType = "delivery"
)

// SupplyChainEvent is one step in the history of a batch.
type SupplyChainEvent struct {
	ID          string    `json:"id"`
	BatchID     string    `json:"batchId"`
	Type        EventType `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Actor       string    `json:"actor"`
	Verified    bool      `json:"verified"`
}

// DashboardStats summarizes the supply chain for the dashboard.
type DashboardStats struct {
	TotalBatches      int     `json:"totalBatches"`
	ActiveBatches     int     `json:"activeBatches"`
	VerifiedBatches   int     `json:"verifiedBatches"`
	QualityScore      float64 `json:"qualityScore"`
	TotalTransfers    int     `json:"totalTransfers"`
	PendingLabReports int     `json:"pendingLabReports"`
}

// MonthlyBatches aggregates the batches harvested in one month.
type MonthlyBatches struct {
	Month        string  `json:"month"`
	Batches      int     `json:"batches"`
	QualityScore float64 `json:"qualityScore"`
}

// HerbShare is the number of batches of one herb.
type HerbShare struct {
	HerbName string `json:"herbName"`
	Batches  int    `json:"batches"`
}

// Analytics holds the aggregated series of the analytics dashboard.
type Analytics struct {
	Monthly          []MonthlyBatches `json:"monthly"`
	HerbDistribution []HerbShare      `json:"herbDistribution"`
}

// Verification is the public trace of a batch shown by the QR landing page.
type Verification struct {
	Batch         Batch              `json:"batch"`
	Events        []SupplyChainEvent `json:"events"`
	Lab           *LabReport         `json:"lab,omitempty"`
	TransportLogs []TransportLog     `json:"transportLogs"`
	Farm          *Farm              `json:"farm,omitempty"`
	Verified      bool               `json:"verified"`
	VerifiedAt    time.Time          `json:"verifiedAt"`
}
