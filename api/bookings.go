package api

import (
	"net/http"

	"github.com/dverbeek/cinebook/internal/service/bookings"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service bookings.BookingUseCase
}

type addBookingRequest struct {
	Date  string `json:"date"`
	Movie string `json:"movie"`
}

func NewBookingHandler(service bookings.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/:user_id", h.get)
	router.POST("/:user_id", h.add)
}

func (h *BookingHandler) get(c *gin.Context) {
	userID := c.Param("user_id")
	entries, err := h.service.GetByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"userid": userID, "dates": entries})
}

func (h *BookingHandler) add(c *gin.Context) {
	var req addBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	userID := c.Param("user_id")
	entries, err := h.service.Add(c.Request.Context(), userID, req.Date, req.Movie)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "booking added", "userid": userID, "dates": entries})
}
