package api

import (
	"net/http"

	"github.com/dverbeek/cinebook/internal/service/movies"
	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	service movies.MovieUseCase
}

type updateRatingRequest struct {
	Rating float64 `json:"rating"`
}

func NewMovieHandler(service movies.MovieUseCase) *MovieHandler {
	return &MovieHandler{service: service}
}

func (h *MovieHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.PUT("/:id/rating", h.updateRating)
}

func (h *MovieHandler) list(c *gin.Context) {
	movies, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) get(c *gin.Context) {
	movie, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) updateRating(c *gin.Context) {
	var req updateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	movie, err := h.service.UpdateRating(c.Request.Context(), c.Param("id"), req.Rating)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}
