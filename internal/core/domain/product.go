package domain

// Brand is a read-only catalog category.
type Brand struct {
	ID          ID     `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// Product is a read-only catalog record. CategoryID references a Brand.
// Every field but ID is optional so that product references submitted inside
// cart lines round-trip without gaining zero-valued fields.
type Product struct {
	ID          ID       `json:"id" bson:"id"`
	CategoryID  ID       `json:"categoryId,omitempty" bson:"categoryId,omitempty"`
	Name        string   `json:"name,omitempty" bson:"name,omitempty"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64  `json:"price,omitempty" bson:"price,omitempty"`
	ImageURLs   []string `json:"imageUrls,omitempty" bson:"imageUrls,omitempty"`
}
