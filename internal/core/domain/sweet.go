package domain

import "errors"

// DefaultImageURL is used when a sweet is created without an image.
const DefaultImageURL = "https://placehold.co/300x200?text=Sweet"

var ErrSweetNotFound = errors.New("sweet not found")
var ErrSweetExists = errors.New("sweet already exists")
var ErrOutOfStock = errors.New("out of stock")
var ErrInvalidQuantity = errors.New("quantity must be positive")
var ErrStoreUnavailable = errors.New("store unavailable")

// Sweet is a product record in the inventory. Name acts as a uniqueness
// key among sweets (case-sensitive exact match at creation time).
type Sweet struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"image_url"`
}
