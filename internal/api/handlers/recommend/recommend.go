package recommend

import (
	"net/http"

	"device-advisor/internal/core/catalog"
	recommendService "device-advisor/internal/core/recommend"
	"device-advisor/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecommendationResponse 推薦回應
type RecommendationResponse struct {
	Recommendations []recommendService.Recommendation `json:"recommendations"`
}

// HandleRecommend 處理 /recommendations 推薦 API
func HandleRecommend(service *recommendService.Service, store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := requestid.Get(c)
		if requestID == "" {
			requestID = common.GenerateUUID()
			c.Header("X-Request-ID", requestID)
		}

		common.LogInfo("開始處理裝置推薦請求",
			zap.String("request_id", requestID),
			zap.String("client_ip", c.ClientIP()),
		)

		var req recommendService.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			common.LogError("請求格式無效",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
				"code":  common.ErrCodeInvalidRequest,
			})
			return
		}

		if !req.Category.IsValid() {
			common.LogWarn("未知的裝置分類",
				zap.String("category", string(req.Category)),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown device category: " + string(req.Category),
				"code":  common.ErrUnknownCategory.Code,
			})
			return
		}

		if req.Budget != nil && req.Budget.Max > 0 && req.Budget.Min > req.Budget.Max {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Budget min must not exceed max",
				"code":  common.ErrCodeInvalidRequest,
			})
			return
		}

		// 經驗等級留空時視為中階
		if req.Experience == "" {
			req.Experience = recommendService.ExperienceIntermediate
		}

		recs := service.Recommend(c.Request.Context(), &req, store.Devices())

		common.LogInfo("裝置推薦完成",
			zap.String("request_id", requestID),
			zap.String("category", string(req.Category)),
			zap.Int("result_count", len(recs)),
		)

		c.JSON(http.StatusOK, RecommendationResponse{
			Recommendations: recs,
		})
	}
}
