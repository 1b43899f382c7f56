package entity

import "time"

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Order is created at checkout. Its items are snapshots of the cart lines
// at that moment; they never track later listing edits.
type Order struct {
	ID              string      `json:"id" firestore:"id"`
	UserID          string      `json:"user_id" firestore:"userId"`
	CustomerName    string      `json:"customer_name" firestore:"customerName"`
	Items           []OrderItem `json:"items" firestore:"-"`
	TotalAmount     float64     `json:"total_amount" firestore:"totalAmount"`
	ShippingAddress string      `json:"shipping_address" firestore:"shippingAddress"`
	PhoneNumber     string      `json:"phone_number" firestore:"phoneNumber"`
	PaymentMethod   string      `json:"payment_method" firestore:"paymentMethod"`
	Status          string      `json:"status" firestore:"status"`
	CreatedAt       time.Time   `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time   `json:"updated_at" firestore:"updatedAt"`
}

type OrderItem struct {
	ID           string  `json:"id" firestore:"id"`
	ListingID    string  `json:"listing_id" firestore:"productId"`
	ListingName  string  `json:"listing_name" firestore:"productName"`
	ListingImage string  `json:"listing_image" firestore:"productImage"`
	Quantity     int     `json:"quantity" firestore:"quantity"`
	Price        float64 `json:"price" firestore:"price"`
}
