package entity

type Category struct {
	ID              int64   `db:"category_id"`
	Name            string  `db:"category_name"`
	Description     string  `db:"category_description"`
	ImageURL        *string `db:"category_image_url"`
	BackgroundColor *string `db:"background_color"`
}
