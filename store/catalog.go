package store

import (
	"github.com/ozguragaoglu95/pastayapp-api/models"
)

// Catalog is the read-only vendor/template collection. It is seeded once at
// startup and never mutated afterwards, so lookups need no locking.
type Catalog struct {
	vendors    []models.Vendor
	templates  []models.TemplateProduct
	byID       map[string]models.TemplateProduct
	vendorByID map[string]models.Vendor
}

func NewCatalog(vendors []models.Vendor, templates []models.TemplateProduct) *Catalog {
	c := &Catalog{
		vendors:    vendors,
		templates:  templates,
		byID:       make(map[string]models.TemplateProduct, len(templates)),
		vendorByID: make(map[string]models.Vendor, len(vendors)),
	}
	for _, t := range templates {
		c.byID[t.ID] = t
	}
	for _, v := range vendors {
		c.vendorByID[v.ID] = v
	}
	return c
}

func (c *Catalog) Vendors() []models.Vendor {
	return c.vendors
}

func (c *Catalog) Vendor(id string) (models.Vendor, error) {
	v, ok := c.vendorByID[id]
	if !ok {
		return models.Vendor{}, ErrNotFound
	}
	return v, nil
}

func (c *Catalog) Templates() []models.TemplateProduct {
	return c.templates
}

func (c *Catalog) Template(id string) (models.TemplateProduct, error) {
	t, ok := c.byID[id]
	if !ok {
		return models.TemplateProduct{}, ErrNotFound
	}
	return t, nil
}

func (c *Catalog) TemplatesByVendor(vendorID string) []models.TemplateProduct {
	var out []models.TemplateProduct
	for _, t := range c.templates {
		if t.VendorID == vendorID {
			out = append(out, t)
		}
	}
	return out
}

// UnitPrice computes base price plus the deltas of every selected option.
// Unknown groups or options and missing required groups are rejected with
// ErrInvalidOption so a bad selection never reaches the cart.
func (c *Catalog) UnitPrice(templateID string, selections map[string][]string) (float64, error) {
	t, ok := c.byID[templateID]
	if !ok {
		return 0, ErrNotFound
	}

	groups := make(map[string]models.OptionGroup, len(t.OptionGroups))
	for _, g := range t.OptionGroups {
		groups[g.ID] = g
	}

	price := t.BasePrice
	for gid, optionIDs := range selections {
		g, ok := groups[gid]
		if !ok {
			return 0, ErrInvalidOption
		}
		if !g.Multi && len(optionIDs) > 1 {
			return 0, ErrInvalidOption
		}
		// Repeats of the same option count once.
		seen := make(map[string]bool, len(optionIDs))
		for _, oid := range optionIDs {
			if seen[oid] {
				continue
			}
			seen[oid] = true
			found := false
			for _, opt := range g.Options {
				if opt.ID == oid {
					price += opt.PriceDelta
					found = true
					break
				}
			}
			if !found {
				return 0, ErrInvalidOption
			}
		}
	}

	for _, g := range t.OptionGroups {
		if g.Required && len(selections[g.ID]) == 0 {
			return 0, ErrInvalidOption
		}
	}

	return price, nil
}
