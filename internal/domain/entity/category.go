package entity

type Category struct {
	ID           string `json:"id" firestore:"id"`
	Name         string `json:"name" firestore:"name"`
	ImageURL     string `json:"image_url" firestore:"imageUrl"`
	Description  string `json:"description" firestore:"description"`
	ProductCount int    `json:"product_count" firestore:"productCount"`
}
