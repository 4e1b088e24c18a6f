package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/petboard/petboard/internal/adapters/repository"
	"github.com/petboard/petboard/internal/core/domain"
)

// ResourceHandler serves the five resource collections the dashboard
// syncs, emulating the production REST API.
type ResourceHandler struct {
	data *repository.Dataset
}

func NewResourceHandler(data *repository.Dataset) *ResourceHandler {
	return &ResourceHandler{data: data}
}

func (h *ResourceHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/clients", h.ListClients)
	router.GET("/pets", h.ListPets)
	router.GET("/vaccinations", h.ListVaccinations)
	router.GET("/grooming", h.ListGrooming)
	router.GET("/bookings", h.ListBookings)

	router.PATCH("/pets/:id", h.PatchPet)
	router.POST("/vaccinations", h.CreateVaccination)
}

func (h *ResourceHandler) ListClients(c *gin.Context) {
	c.JSON(http.StatusOK, h.data.Clients())
}

func (h *ResourceHandler) ListPets(c *gin.Context) {
	c.JSON(http.StatusOK, h.data.Pets())
}

func (h *ResourceHandler) ListVaccinations(c *gin.Context) {
	c.JSON(http.StatusOK, h.data.Vaccinations())
}

func (h *ResourceHandler) ListGrooming(c *gin.Context) {
	c.JSON(http.StatusOK, h.data.Grooming())
}

func (h *ResourceHandler) ListBookings(c *gin.Context) {
	c.JSON(http.StatusOK, h.data.Bookings())
}

func (h *ResourceHandler) PatchPet(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pet id"})
		return
	}

	var patch domain.PetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.data.PatchPet(id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrPetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// CreateVaccination reports validation failures through a "message"
// field, which the dashboard's gateway surfaces verbatim.
func (h *ResourceHandler) CreateVaccination(c *gin.Context) {
	var input domain.NewVaccination
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid vaccination payload"})
		return
	}

	created, err := h.data.AddVaccination(input)
	if err != nil {
		if errors.Is(err, domain.ErrVaccinationDueDate) || errors.Is(err, domain.ErrVaccinationIncomplete) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, created)
}
