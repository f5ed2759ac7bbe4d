package entity

// Classification is a tag facet attached to products independently of their
// primary category, via the product_classification join table.
type Classification struct {
	ID   int64  `db:"classification_id"`
	Name string `db:"classification_name"`
}
