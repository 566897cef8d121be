package models

// Vendor is a bakery storefront in the catalog.
type Vendor struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	City   string  `json:"city"`
	Rating float64 `json:"rating"`
}

// TemplateProduct is an immutable catalog entry. The catalog is seeded at
// startup and never mutated at runtime.
type TemplateProduct struct {
	ID           string        `json:"id"`
	VendorID     string        `json:"vendor_id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Image        string        `json:"image"`
	BasePrice    float64       `json:"base_price"`
	OptionGroups []OptionGroup `json:"option_groups"`
}

// OptionGroup bundles selectable options; required groups must have at least
// one option selected, multi groups may have several.
type OptionGroup struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Required bool     `json:"required"`
	Multi    bool     `json:"multi"`
	Options  []Option `json:"options"`
}

// Option carries an additive price delta on top of the template base price.
type Option struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	PriceDelta float64 `json:"price_delta"`
}
