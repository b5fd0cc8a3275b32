package api

import (
	"net/http"

	resdto "flyerboard/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// @Summary List categories
// @Description Fixed category catalog in display order
// @Tags categories
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromCategoryCatalog())
}
