package entity

// CartLine references a listing with a denormalized snapshot of its name,
// image and price captured when the line was added. Later listing edits do
// not flow back into existing lines.
type CartLine struct {
	ID           string  `json:"id" firestore:"id"`
	UserID       string  `json:"user_id" firestore:"userId"`
	ListingID    string  `json:"listing_id" firestore:"productId"`
	ListingName  string  `json:"listing_name" firestore:"productName"`
	ListingImage string  `json:"listing_image" firestore:"productImage"`
	ListingPrice float64 `json:"listing_price" firestore:"productPrice"`
	Quantity     int     `json:"quantity" firestore:"quantity"`
	CreatedAt    int64   `json:"created_at" firestore:"timestamp"`
}

// Subtotal is the line's contribution to the order total.
func (c *CartLine) Subtotal() float64 {
	return c.ListingPrice * float64(c.Quantity)
}
