package catalogapi

import (
	"net/http"

	"device-advisor/internal/core/catalog"
	"device-advisor/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// HandleListCategories 處理 /categories 分類清單 API
func HandleListCategories(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"categories": store.Categories(),
		})
	}
}

// HandleListDevices 處理 /devices 裝置清單 API，
// 可用 category 查詢參數過濾
func HandleListDevices(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("category")
		if raw == "" {
			c.JSON(http.StatusOK, gin.H{
				"devices": store.Devices(),
			})
			return
		}

		category := catalog.Category(raw)
		if !category.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown device category: " + raw,
				"code":  common.ErrUnknownCategory.Code,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"devices": store.ByCategory(category),
		})
	}
}
