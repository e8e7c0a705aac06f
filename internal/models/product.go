package models

// Product is immutable after catalog load. Stock is only consulted at
// checkout time; cart mutations never touch it.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

// ProductFilter narrows catalog listings. Zero values mean "no constraint";
// MinPrice/MaxPrice are pointers so a zero price bound is expressible.
type ProductFilter struct {
	Category string
	Search   string
	MinPrice *float64
	MaxPrice *float64
}
