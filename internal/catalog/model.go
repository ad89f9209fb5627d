package catalog

// DefaultSizes is assigned to every newly published product.
var DefaultSizes = []string{"Small", "Medium", "Large"}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	ImageKey    string   `json:"image_key"`
	Sizes       []string `json:"sizes"`
}
