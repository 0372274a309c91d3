package api

import (
	"net/http"

	"github.com/dverbeek/cinebook/internal/service/users"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service users.UserUseCase
}

type userRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func NewUserHandler(service users.UserUseCase) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.GET("/:user_id", h.get)
	router.PUT("/:user_id", h.update)
	router.DELETE("/:user_id", h.delete)

	router.GET("/:user_id/movies", h.movies)
	router.GET("/:user_id/movies/:movie_id", h.movie)
	router.PUT("/:user_id/movies/:movie_id/rating/:rating", h.rateMovie)

	router.GET("/:user_id/bookings", h.bookings)
	router.POST("/:user_id/bookings", h.book)
}

func (h *UserHandler) create(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.FirstName, req.LastName)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "user added", "data": user})
}

func (h *UserHandler) list(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) get(c *gin.Context) {
	user, err := h.service.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) update(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	user, err := h.service.Update(c.Request.Context(), c.Param("user_id"), req.FirstName, req.LastName)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated", "user": user})
}

func (h *UserHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("user_id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

func (h *UserHandler) movies(c *gin.Context) {
	movies, err := h.service.Movies(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (h *UserHandler) movie(c *gin.Context) {
	movie, err := h.service.Movie(c.Request.Context(), c.Param("user_id"), c.Param("movie_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *UserHandler) rateMovie(c *gin.Context) {
	movie, err := h.service.RateMovie(c.Request.Context(), c.Param("user_id"), c.Param("movie_id"), c.Param("rating"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *UserHandler) bookings(c *gin.Context) {
	bookings, err := h.service.Bookings(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *UserHandler) book(c *gin.Context) {
	var req addBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	bookings, err := h.service.Book(c.Request.Context(), c.Param("user_id"), req.Date, req.Movie)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bookings)
}
