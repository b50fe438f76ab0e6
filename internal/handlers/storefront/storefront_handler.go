package storefront

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopadmin-service/internal/pkg/response"
	service "shopadmin-service/internal/service/display"
)

type StorefrontHandler struct {
	feedService *service.FeedService
}

func NewStorefrontHandler(feedService *service.FeedService) *StorefrontHandler {
	return &StorefrontHandler{feedService: feedService}
}

// HomeFeed serves the public home page payload, cached between display writes.
func (h *StorefrontHandler) HomeFeed(c *gin.Context) {
	feed, err := h.feedService.HomeFeed(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to build home feed", err)
		return
	}

	response.Success(c, http.StatusOK, "home feed retrieved successfully", feed)
}
