package store

import "github.com/ozguragaoglu95/pastayapp-api/models"

// SeedCatalog returns the built-in vendor and template catalog. This stands
// in for a vendor onboarding backend; templates are read-only at runtime.
func SeedCatalog() ([]models.Vendor, []models.TemplateProduct) {
	vendors := []models.Vendor{
		{ID: "v-tatlidunya", Name: "Tatlı Dünya Pastanesi", City: "Istanbul", Rating: 4.8},
		{ID: "v-sekerpare", Name: "Şekerpare Butik Pasta", City: "Ankara", Rating: 4.6},
		{ID: "v-karamel", Name: "Karamel Atölyesi", City: "Izmir", Rating: 4.9},
	}

	sizeGroup := models.OptionGroup{
		ID: "size", Name: "Size", Required: true,
		Options: []models.Option{
			{ID: "10p", Label: "10 portions", PriceDelta: 0},
			{ID: "15p", Label: "15 portions", PriceDelta: 250},
			{ID: "25p", Label: "25 portions", PriceDelta: 600},
		},
	}
	flavorGroup := models.OptionGroup{
		ID: "flavor", Name: "Flavor", Required: true,
		Options: []models.Option{
			{ID: "chocolate", Label: "Chocolate", PriceDelta: 0},
			{ID: "vanilla", Label: "Vanilla", PriceDelta: 0},
			{ID: "red-velvet", Label: "Red Velvet", PriceDelta: 150},
		},
	}
	toppingGroup := models.OptionGroup{
		ID: "topping", Name: "Toppings", Multi: true,
		Options: []models.Option{
			{ID: "fresh-fruit", Label: "Fresh fruit", PriceDelta: 120},
			{ID: "macarons", Label: "Macarons", PriceDelta: 180},
			{ID: "gold-leaf", Label: "Edible gold leaf", PriceDelta: 300},
		},
	}

	templates := []models.TemplateProduct{
		{
			ID: "t-birthday-classic", VendorID: "v-tatlidunya",
			Name: "Classic Birthday Cake", Description: "Layered sponge with buttercream.",
			Image: "/images/birthday-classic.jpg", BasePrice: 1100,
			OptionGroups: []models.OptionGroup{sizeGroup, flavorGroup, toppingGroup},
		},
		{
			ID: "t-wedding-tier", VendorID: "v-sekerpare",
			Name: "Two-Tier Wedding Cake", Description: "Fondant finish, sugar flowers.",
			Image: "/images/wedding-tier.jpg", BasePrice: 3900,
			OptionGroups: []models.OptionGroup{sizeGroup, flavorGroup},
		},
		{
			ID: "t-drip-caramel", VendorID: "v-karamel",
			Name: "Salted Caramel Drip Cake", Description: "Caramel drip over dark ganache.",
			Image: "/images/drip-caramel.jpg", BasePrice: 1350,
			OptionGroups: []models.OptionGroup{sizeGroup, flavorGroup, toppingGroup},
		},
	}

	return vendors, templates
}
