package catalog

import (
	"github.com/F1oxyz/coffe-cat-cop/internal/docstore"
)

// productFromDoc decodes a stored product record. It returns nil for a
// malformed record (missing or mistyped required field) so a single bad
// document never fails a whole listing.
func productFromDoc(key string, doc docstore.Document) *Product {
	name, ok := doc["name"].(string)
	if !ok || name == "" {
		return nil
	}

	price, ok := toFloat(doc["price"])
	if !ok {
		return nil
	}

	description, ok := doc["description"].(string)
	if !ok || description == "" {
		return nil
	}

	imageKey, ok := doc["imageKey"].(string)
	if !ok || imageKey == "" {
		return nil
	}

	sizes, ok := toStrings(doc["sizes"])
	if !ok || len(sizes) == 0 {
		return nil
	}

	return &Product{
		ID:          key,
		Name:        name,
		Price:       price,
		Description: description,
		ImageKey:    imageKey,
		Sizes:       sizes,
	}
}

func docFromProduct(p Product) docstore.Document {
	return docstore.Document{
		"name":        p.Name,
		"price":       p.Price,
		"description": p.Description,
		"imageKey":    p.ImageKey,
		"sizes":       p.Sizes,
	}
}

// toFloat accepts the numeric shapes a document round-trip can produce.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toStrings(v any) ([]string, bool) {
	switch vs := v.(type) {
	case []string:
		return append([]string(nil), vs...), true
	case []any:
		out := make([]string, 0, len(vs))
		for _, item := range vs {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
