package models

// Product is one catalogue entry. Created by the catalog bootstrap or by
// the add-product operation; edited in place; removed by delete.
type Product struct {
	ID          int64   `json:"id"` // feed-supplied or creation timestamp in ms
	Name        string  `json:"name"`
	Price       float64 `json:"price"` // non-negative
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category,omitempty"`
}

// ProductInput carries the add/edit product form fields. A zero price
// fails `required`: free products are rejected.
type ProductInput struct {
	Name        string  `json:"name"        validate:"required"`
	Price       float64 `json:"price"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image"       validate:"nullable"` // URL or relative path, optional
}

// CartItem is one cart line. Name, price and image are snapshotted from
// the product at add-time — a later product edit does not retroactively
// update existing lines.
type CartItem struct {
	ID       int64   `json:"id"` // references Product.ID at time of add
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"` // always >= 1
}
