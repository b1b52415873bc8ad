package catalog

import "github.com/shashiranjanraj/dukaan/app/models"

// Defaults returns the built-in product catalog used whenever the remote
// feed cannot be fetched or parsed. A fresh slice is returned each call
// so callers can mutate their copy freely.
func Defaults() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Wireless Headphones",
			Price:       79.99,
			Description: "High-quality wireless headphones with noise cancellation",
			Image:       "images/wireless-headphones.jpg",
		},
		{
			ID:          2,
			Name:        "Smart Watch",
			Price:       199.99,
			Description: "Feature-rich smartwatch with health tracking",
			Image:       "images/smart-watch.jpeg",
		},
		{
			ID:          3,
			Name:        "USB-C Cable",
			Price:       14.99,
			Description: "Durable USB-C charging cable",
			Image:       "images/usb-cable.jpeg",
		},
		{
			ID:          4,
			Name:        "Wireless Mouse",
			Price:       29.99,
			Description: "Ergonomic design with precision tracking and 12-month battery",
			Image:       "images/wireless-mouse.jpeg",
		},
		{
			ID:          5,
			Name:        "laptop",
			Price:       100.99,
			Description: "user -friendly",
			Image:       "images/laptop.jpeg",
		},
	}
}
