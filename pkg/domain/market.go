package domain

import "time"

// Product is a marketplace listing backed by a traced batch.
type Product struct {
	ID               string  `json:"id"`
	HerbName         string  `json:"herbName"`
	Description      string  `json:"description"`
	Price            float64 `json:"price"`
	Currency         string  `json:"currency"`
	ImageURL         string  `json:"imageUrl,omitempty"`
	BatchID          string  `json:"batchId"`
	FarmID           string  `json:"farmId"`
	FarmerName       string  `json:"farmerName"`
	ManufacturerName string  `json:"manufacturerName"`
	Region           string  `json:"region"`
	Verified         bool    `json:"verified"`
	AIQualityScore   float64 `json:"aiQualityScore"`
	BlockchainHash   string  `json:"blockchainHash"`
	LabGrade         string  `json:"labGrade"`
	Weight           string  `json:"weight"`
	InStock          bool    `json:"inStock"`
}

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Order is a consumer purchase of a product.
type Order struct {
	ID              string      `json:"id"`
	ConsumerID      UserID      `json:"consumerId"`
	ProductID       string      `json:"productId"`
	ProductName     string      `json:"productName"`
	Quantity        int         `json:"quantity"`
	TotalPrice      float64     `json:"totalPrice"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	DeliveryAddress string      `json:"deliveryAddress"`
	BatchID         string      `json:"batchId"`
}

// ConsumerProfile holds the delivery and preference data of a consumer.
type ConsumerProfile struct {
	UserID        UserID   `json:"userId"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	Phone         string   `json:"phone"`
	Preferences   []string `json:"preferences"`
	WalletAddress string   `json:"walletAddress,omitempty"`
}

// ProductDetail is a product together with the trace of its batch.
type ProductDetail struct {
	Product Product            `json:"product"`
	Batch   *Batch             `json:"batch,omitempty"`
	Events  []SupplyChainEvent `json:"events"`
	Lab     *LabReport         `json:"lab,omitempty"`
	Farm    *Farm              `json:"farm,omitempty"`
}
