package api

import (
	"net/http"

	"github.com/dverbeek/cinebook/internal/service/showtimes"
	"github.com/gin-gonic/gin"
)

type ShowtimeHandler struct {
	service showtimes.ShowtimeUseCase
}

func NewShowtimeHandler(service showtimes.ShowtimeUseCase) *ShowtimeHandler {
	return &ShowtimeHandler{service: service}
}

func (h *ShowtimeHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:date", h.get)
}

func (h *ShowtimeHandler) list(c *gin.Context) {
	slots, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

func (h *ShowtimeHandler) get(c *gin.Context) {
	slot, err := h.service.GetByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}
