package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// sweetRequest is the payload for both create and update. The id is never
// accepted from the caller; it is assigned by the store.
type sweetRequest struct {
	Name     string  `json:"name"      validate:"required"`
	Category string  `json:"category"  validate:"required"`
	Price    float64 `json:"price"     validate:"gte=0"`
	Quantity int     `json:"quantity"  validate:"gte=0"`
	ImageURL string  `json:"image_url,omitempty"`
}

// sweetResponse is the public view of a catalog record.
type sweetResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"image_url"`
}

// messageResponse is the envelope for mutation acknowledgements.
type messageResponse struct {
	Message string `json:"message"`
}
