package productControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rahul-rk007/shopping-kart-api/models"
)

// GET /api/product/export/excel
func ExportProductsToExcel(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Subcategory").Find(&products).Error; err != nil {
			logger.Error("failed to fetch products for export", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			logger.Error("failed to create excel sheet", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "ProductName", "SKU", "Subcategory", "Price", "StockQuantity",
			"Brand", "Color", "Size", "ProductType", "Featured", "IsActive",
			"Images", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.ProductName)
			row.AddCell().SetValue(p.SKU)
			row.AddCell().SetValue(p.Subcategory.SubcategoryName)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.StockQuantity)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.Color)
			row.AddCell().SetValue(p.Size)
			row.AddCell().SetValue(p.ProductType)
			row.AddCell().SetValue(p.Featured)
			row.AddCell().SetValue(p.IsActive)
			row.AddCell().SetValue(strings.Join(p.ImageURLs, ","))
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			logger.Error("failed to write excel file", zap.Error(err))
		}
	}
}
