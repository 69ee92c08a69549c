// Package seeder loads baseline reference data the storefront needs before it
// can take orders: countries, their states, and the category tree.
package seeder

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/models"
)

var countries = map[string][]string{
	"India": {
		"Andhra Pradesh", "Delhi", "Gujarat", "Karnataka", "Kerala",
		"Maharashtra", "Punjab", "Rajasthan", "Tamil Nadu", "Uttar Pradesh",
		"West Bengal",
	},
	"United States": {
		"California", "Florida", "Illinois", "New Jersey", "New York",
		"Texas", "Washington",
	},
	"Canada": {
		"Alberta", "British Columbia", "Ontario", "Quebec",
	},
	"Australia": {
		"New South Wales", "Queensland", "Victoria", "Western Australia",
	},
	"United Kingdom": {
		"England", "Northern Ireland", "Scotland", "Wales",
	},
}

var categories = map[string][]string{
	"Men":         {"T-Shirts", "Shirts", "Jeans", "Jackets", "Footwear"},
	"Women":       {"Tops", "Dresses", "Sarees", "Kurtis", "Footwear"},
	"Kids":        {"Boys Clothing", "Girls Clothing", "Toys"},
	"Accessories": {"Bags", "Belts", "Watches", "Sunglasses"},
}

// Run is idempotent; existing rows are matched by name and left untouched.
func Run(db *gorm.DB, logger *zap.Logger) error {
	for countryName, stateNames := range countries {
		country := models.Country{CountryName: countryName}
		if err := db.Where("country_name = ?", countryName).FirstOrCreate(&country).Error; err != nil {
			return fmt.Errorf("seed country %q: %w", countryName, err)
		}
		for _, stateName := range stateNames {
			state := models.State{StateName: stateName, CountryID: country.ID}
			err := db.Where("state_name = ? AND country_id = ?", stateName, country.ID).
				FirstOrCreate(&state).Error
			if err != nil {
				return fmt.Errorf("seed state %q: %w", stateName, err)
			}
		}
	}

	for categoryName, subNames := range categories {
		category := models.Category{
			CategoryName: categoryName,
			Description:  categoryName + " collection",
		}
		if err := db.Where("category_name = ?", categoryName).FirstOrCreate(&category).Error; err != nil {
			return fmt.Errorf("seed category %q: %w", categoryName, err)
		}
		for _, subName := range subNames {
			sub := models.Subcategory{SubcategoryName: subName, CategoryID: category.ID}
			err := db.Where("subcategory_name = ? AND category_id = ?", subName, category.ID).
				FirstOrCreate(&sub).Error
			if err != nil {
				return fmt.Errorf("seed subcategory %q: %w", subName, err)
			}
		}
	}

	logger.Info("reference data seeded")
	return nil
}
