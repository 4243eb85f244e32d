package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sattva/pkg/domain"
	"time"

	"github.com/google/uuid"
)

const (
	usersTable          = "users"
	farmsTable          = "farms"
	batchesTable        = "batches"
	eventsTable         = "supply_chain_events"
	labReportsTable     = "lab_reports"
	transportLogsTable  = "transport_logs"
	transfersTable      = "transfers"
	qrRecordsTable      = "qr_records"
	productsTable       = "products"
	ordersTable         = "orders"
	consumerProfilesTbl = "consumer_profiles"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

type PgUser struct {
	ID             uuid.UUID      `db:"id"`
	Name           string         `db:"name"`
	Email          string         `db:"email"`
	Role           string         `db:"role"`
	WalletAddress  sql.NullString `db:"wallet_address"`
	VerifiedStatus bool           `db:"verified_status"`
	Avatar         sql.NullString `db:"avatar"`
	PasswordHash   string         `db:"password_hash"`
	CreatedAt      time.Time      `db:"created_at"      goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:             domain.UserID(p.ID),
		Name:           p.Name,
		Email:          p.Email,
		Role:           domain.Role(p.Role),
		WalletAddress:  p.WalletAddress.String,
		VerifiedStatus: p.VerifiedStatus,
		Avatar:         p.Avatar.String,
		PasswordHash:   p.PasswordHash,
		CreatedAt:      p.CreatedAt,
	}
}

func (p *PgUser) FromDomain(u domain.User) {
	*p = PgUser{
		ID:             uuid.UUID(u.ID),
		Name:           u.Name,
		Email:          u.Email,
		Role:           string(u.Role),
		WalletAddress:  nullString(u.WalletAddress),
		VerifiedStatus: u.VerifiedStatus,
		Avatar:         nullString(u.Avatar),
		PasswordHash:   u.PasswordHash,
	}
}

type PgFarm struct {
	ID       string    `db:"id"`
	FarmerID uuid.UUID `db:"farmer_id"`
	FarmName string    `db:"farm_name"`
	Lat      float64   `db:"lat"`
	Lng      float64   `db:"lng"`
	Address  string    `db:"address"`
}

func (p *PgFarm) ToDomain() *domain.Farm {
	return &domain.Farm{
		ID:       p.ID,
		FarmerID: domain.UserID(p.FarmerID),
		FarmName: p.FarmName,
		GeoLocation: domain.GeoLocation{
			Lat:     p.Lat,
			Lng:     p.Lng,
			Address: p.Address,
		},
	}
}

type PgBatch struct {
	ID             string         `db:"id"`
	HerbName       string         `db:"herb_name"`
	Quantity       float64        `db:"quantity"`
	Unit           string         `db:"unit"`
	HarvestDate    string         `db:"harvest_date"`
	AIQualityScore float64        `db:"ai_quality_score"`
	BlockchainHash string         `db:"blockchain_hash"`
	Status         string         `db:"status"`
	CreatedBy      uuid.UUID      `db:"created_by"`
	FarmID         string         `db:"farm_id"`
	ImageURL       sql.NullString `db:"image_url"`
	CreatedAt      time.Time      `db:"created_at"`
}

func (p *PgBatch) ToDomain() *domain.Batch {
	return &domain.Batch{
		ID:             p.ID,
		HerbName:       p.HerbName,
		Quantity:       p.Quantity,
		Unit:           p.Unit,
		HarvestDate:    p.HarvestDate,
		AIQualityScore: p.AIQualityScore,
		BlockchainHash: p.BlockchainHash,
		Status:         domain.BatchStatus(p.Status),
		CreatedBy:      domain.UserID(p.CreatedBy),
		FarmID:         p.FarmID,
		ImageURL:       p.ImageURL.String,
		CreatedAt:      p.CreatedAt,
	}
}

func (p *PgBatch) FromDomain(b domain.Batch) {
	createdAt := b.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	*p = PgBatch{
		ID:             b.ID,
		HerbName:       b.HerbName,
		Quantity:       b.Quantity,
		Unit:           b.Unit,
		HarvestDate:    b.HarvestDate,
		AIQualityScore: b.AIQualityScore,
		BlockchainHash: b.BlockchainHash,
		Status:         string(b.Status),
		CreatedBy:      uuid.UUID(b.CreatedBy),
		FarmID:         b.FarmID,
		ImageURL:       nullString(b.ImageURL),
		CreatedAt:      createdAt,
	}
}

type PgEvent struct {
	ID          string    `db:"id"`
	BatchID     string    `db:"batch_id"`
	Type        string    `db:"type"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	OccurredAt  time.Time `db:"occurred_at"`
	Actor       string    `db:"actor"`
	Verified    bool      `db:"verified"`
}

func (p *PgEvent) ToDomain() domain.SupplyChainEvent {
	return domain.SupplyChainEvent{
		ID:          p.ID,
		BatchID:     p.BatchID,
		Type:        domain.EventType(p.Type),
		Title:       p.Title,
		Description: p.Description,
		Timestamp:   p.OccurredAt,
		Actor:       p.Actor,
		Verified:    p.Verified,
	}
}

func (p *PgEvent) FromDomain(e domain.SupplyChainEvent) {
	*p = PgEvent{
		ID:          e.ID,
		BatchID:     e.BatchID,
		Type:        string(e.Type),
		Title:       e.Title,
		Description: e.Description,
		OccurredAt:  e.Timestamp,
		Actor:       e.Actor,
		Verified:    e.Verified,
	}
}

type PgLabReport struct {
	ID                 string    `db:"id"`
	BatchID            string    `db:"batch_id"`
	IPFSHash           string    `db:"ipfs_hash"`
	VerificationStatus string    `db:"verification_status"`
	TestDate           time.Time `db:"test_date"`
	Purity             float64   `db:"purity"`
	Contaminants       bool      `db:"contaminants"`
	ActiveCompounds    float64   `db:"active_compounds"`
	Grade              string    `db:"grade"`
}

func (p *PgLabReport) ToDomain() *domain.LabReport {
	return &domain.LabReport{
		ID:                 p.ID,
		BatchID:            p.BatchID,
		IPFSHash:           p.IPFSHash,
		VerificationStatus: domain.LabReportStatus(p.VerificationStatus),
		TestDate:           p.TestDate,
		Results: domain.LabResults{
			Purity:          p.Purity,
			Contaminants:    p.Contaminants,
			ActiveCompounds: p.ActiveCompounds,
			Grade:           p.Grade,
		},
	}
}

func (p *PgLabReport) FromDomain(r domain.LabReport) {
	*p = PgLabReport{
		ID:                 r.ID,
		BatchID:            r.BatchID,
		IPFSHash:           r.IPFSHash,
		VerificationStatus: string(r.VerificationStatus),
		TestDate:           r.TestDate,
		Purity:             r.Results.Purity,
		Contaminants:       r.Results.Contaminants,
		ActiveCompounds:    r.Results.ActiveCompounds,
		Grade:              r.Results.Grade,
	}
}

type PgTransportLog struct {
	ID          string    `db:"id"`
	BatchID     string    `db:"batch_id"`
	Temperature float64   `db:"temperature"`
	Humidity    float64   `db:"humidity"`
	LoggedAt    time.Time `db:"logged_at"`
	Location    string    `db:"location"`
}

func (p *PgTransportLog) ToDomain() domain.TransportLog {
	return domain.TransportLog{
		ID:          p.ID,
		BatchID:     p.BatchID,
		Temperature: p.Temperature,
		Humidity:    p.Humidity,
		Timestamp:   p.LoggedAt,
		Location:    p.Location,
	}
}

type PgTransfer struct {
	ID            string    `db:"id"`
	BatchID       string    `db:"batch_id"`
	FromUserID    uuid.UUID `db:"from_user_id"`
	ToUserID      uuid.UUID `db:"to_user_id"`
	FromUserName  string    `db:"from_user_name"`
	ToUserName    string    `db:"to_user_name"`
	TransferredAt time.Time `db:"transferred_at"`
}

func (p *PgTransfer) ToDomain() *domain.Transfer {
	return &domain.Transfer{
		ID:           p.ID,
		BatchID:      p.BatchID,
		FromUserID:   domain.UserID(p.FromUserID),
		ToUserID:     domain.UserID(p.ToUserID),
		FromUserName: p.FromUserName,
		ToUserName:   p.ToUserName,
		Timestamp:    p.TransferredAt,
	}
}

func (p *PgTransfer) FromDomain(t domain.Transfer) {
	*p = PgTransfer{
		ID:            t.ID,
		BatchID:       t.BatchID,
		FromUserID:    uuid.UUID(t.FromUserID),
		ToUserID:      uuid.UUID(t.ToUserID),
		FromUserName:  t.FromUserName,
		ToUserName:    t.ToUserName,
		TransferredAt: t.Timestamp,
	}
}

type PgQRRecord struct {
	ID          string    `db:"id"`
	BatchID     string    `db:"batch_id"`
	QRCodeURL   string    `db:"qr_code_url"`
	GeneratedAt time.Time `db:"generated_at"`
}

func (p *PgQRRecord) ToDomain() *domain.QRRecord {
	return &domain.QRRecord{
		ID:          p.ID,
		BatchID:     p.BatchID,
		QRCodeURL:   p.QRCodeURL,
		GeneratedAt: p.GeneratedAt,
	}
}

func (p *PgQRRecord) FromDomain(r domain.QRRecord) {
	*p = PgQRRecord{
		ID:          r.ID,
		BatchID:     r.BatchID,
		QRCodeURL:   r.QRCodeURL,
		GeneratedAt: r.GeneratedAt,
	}
}

type PgProduct struct {
	ID               string         `db:"id"`
	HerbName         string         `db:"herb_name"`
	Description      string         `db:"description"`
	Price            float64        `db:"price"`
	Currency         string         `db:"currency"`
	ImageURL         sql.NullString `db:"image_url"`
	BatchID          string         `db:"batch_id"`
	FarmID           string         `db:"farm_id"`
	FarmerName       string         `db:"farmer_name"`
	ManufacturerName string         `db:"manufacturer_name"`
	Region           string         `db:"region"`
	Verified         bool           `db:"verified"`
	AIQualityScore   float64        `db:"ai_quality_score"`
	BlockchainHash   string         `db:"blockchain_hash"`
	LabGrade         string         `db:"lab_grade"`
	Weight           string         `db:"weight"`
	InStock          bool           `db:"in_stock"`
}

func (p *PgProduct) ToDomain() *domain.Product {
	return &domain.Product{
		ID:               p.ID,
		HerbName:         p.HerbName,
		Description:      p.Description,
		Price:            p.Price,
		Currency:         p.Currency,
		ImageURL:         p.ImageURL.String,
		BatchID:          p.BatchID,
		FarmID:           p.FarmID,
		FarmerName:       p.FarmerName,
		ManufacturerName: p.ManufacturerName,
		Region:           p.Region,
		Verified:         p.Verified,
		AIQualityScore:   p.AIQualityScore,
		BlockchainHash:   p.BlockchainHash,
		LabGrade:         p.LabGrade,
		Weight:           p.Weight,
		InStock:          p.InStock,
	}
}

type PgOrder struct {
	ID              string    `db:"id"`
	ConsumerID      uuid.UUID `db:"consumer_id"`
	ProductID       string    `db:"product_id"`
	ProductName     string    `db:"product_name"`
	Quantity        int       `db:"quantity"`
	TotalPrice      float64   `db:"total_price"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
	DeliveryAddress string    `db:"delivery_address"`
	BatchID         string    `db:"batch_id"`
}

func (p *PgOrder) ToDomain() *domain.Order {
	return &domain.Order{
		ID:              p.ID,
		ConsumerID:      domain.UserID(p.ConsumerID),
		ProductID:       p.ProductID,
		ProductName:     p.ProductName,
		Quantity:        p.Quantity,
		TotalPrice:      p.TotalPrice,
		Status:          domain.OrderStatus(p.Status),
		CreatedAt:       p.CreatedAt,
		DeliveryAddress: p.DeliveryAddress,
		BatchID:         p.BatchID,
	}
}

func (p *PgOrder) FromDomain(o domain.Order) {
	createdAt := o.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	*p = PgOrder{
		ID:              o.ID,
		ConsumerID:      uuid.UUID(o.ConsumerID),
		ProductID:       o.ProductID,
		ProductName:     o.ProductName,
		Quantity:        o.Quantity,
		TotalPrice:      o.TotalPrice,
		Status:          string(o.Status),
		CreatedAt:       createdAt,
		DeliveryAddress: o.DeliveryAddress,
		BatchID:         o.BatchID,
	}
}

type PgProfile struct {
	UserID        uuid.UUID       `db:"user_id"`
	Name          string          `db:"name"`
	Email         string          `db:"email"`
	Address       string          `db:"address"`
	Phone         string          `db:"phone"`
	Preferences   json.RawMessage `db:"preferences"`
	WalletAddress sql.NullString  `db:"wallet_address"`
}

func (p *PgProfile) ToDomain() (*domain.ConsumerProfile, error) {
	preferences := []string{}
	if len(p.Preferences) > 0 {
		if err := json.Unmarshal(p.Preferences, &preferences); err != nil {
			return nil, fmt.Errorf("could not unmarshal preferences: %w", err)
		}
	}

	return &domain.ConsumerProfile{
		UserID:        domain.UserID(p.UserID),
		Name:          p.Name,
		Email:         p.Email,
		Address:       p.Address,
		Phone:         p.Phone,
		Preferences:   preferences,
		WalletAddress: p.WalletAddress.String,
	}, nil
}

func (p *PgProfile) FromDomain(c domain.ConsumerProfile) error {
	preferences := c.Preferences
	if preferences == nil {
		preferences = []string{}
	}
	b, err := json.Marshal(preferences)
	if err != nil {
		return fmt.Errorf("could not marshal preferences: %w", err)
	}

	*p = PgProfile{
		UserID:        uuid.UUID(c.UserID),
		Name:          c.Name,
		Email:         c.Email,
		Address:       c.Address,
		Phone:         c.Phone,
		Preferences:   b,
		WalletAddress: nullString(c.WalletAddress),
	}

	return nil
}
