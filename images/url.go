// Package images maps the bare image filenames stored on products, cart lines
// and order lines onto client-facing URLs under /uploads/products/.
package images

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Rahul-rk007/shopping-kart-api/config"
)

// BaseURL returns the public prefix for product images. A configured
// PUBLIC_BASE_URL wins; otherwise the request's own scheme and host are used.
func BaseURL(c *gin.Context, cfg *config.Config) string {
	if cfg != nil && cfg.PublicBaseURL != "" {
		return cfg.PublicBaseURL + "/uploads/products/"
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + "/uploads/products/"
}

// ProductURL expands a stored filename into a full URL for the given product.
func ProductURL(c *gin.Context, cfg *config.Config, productID uint, filename string) string {
	return BaseURL(c, cfg) + strconv.Itoa(int(productID)) + "/" + filename
}
