package handlers

import (
	"Boxtrack/internal/models"
	"Boxtrack/internal/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type PropertyHandler struct {
	service services.PropertyService
}

func NewPropertyHandler(service services.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

type propertyRequest struct {
	PropertyType    string  `json:"property_type" form:"property_type"`
	Address         string  `json:"address" form:"address"`
	Price           float64 `json:"price" form:"price"`
	SqFt            int     `json:"sq_ft" form:"sq_ft"`
	CatFriendly     bool    `json:"cat_friendly" form:"cat_friendly"`
	NumBedrooms     int     `json:"num_bedrooms" form:"num_bedrooms"`
	AirConditioning bool    `json:"air_conditioning" form:"air_conditioning"`
	ParkingType     string  `json:"parking_type" form:"parking_type"`
	CommuteMorning  string  `json:"commute_morning" form:"commute_morning"`
	CommuteMidday   string  `json:"commute_midday" form:"commute_midday"`
	CommuteEvening  string  `json:"commute_evening" form:"commute_evening"`
}

func (r *propertyRequest) toModel() *models.Property {
	return &models.Property{
		PropertyType:    r.PropertyType,
		Address:         r.Address,
		Price:           r.Price,
		SqFt:            r.SqFt,
		CatFriendly:     r.CatFriendly,
		NumBedrooms:     r.NumBedrooms,
		AirConditioning: r.AirConditioning,
		ParkingType:     r.ParkingType,
		CommuteMorning:  r.CommuteMorning,
		CommuteMidday:   r.CommuteMidday,
		CommuteEvening:  r.CommuteEvening,
	}
}

func (h *PropertyHandler) CreateProperty(c *fiber.Ctx) error {
	var req propertyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.PropertyType == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "property_type is required"})
	}
	if req.Address == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "address is required"})
	}

	property := req.toModel()
	if err := h.service.CreateProperty(property); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not create property"})
	}
	return c.Status(http.StatusCreated).JSON(property)
}

func (h *PropertyHandler) GetPropertyByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid property ID"})
	}

	property, err := h.service.GetPropertyByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "property not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not load property"})
	}
	return c.JSON(property)
}

func (h *PropertyHandler) ListProperties(c *fiber.Ctx) error {
	properties, err := h.service.GetProperties(c.Query("property_type"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list properties"})
	}
	return c.JSON(properties)
}

func (h *PropertyHandler) UpdateProperty(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid property ID"})
	}

	var req propertyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	property, err := h.service.UpdateProperty(uint(id), req.toModel())
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "property not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not update property"})
	}
	return c.JSON(property)
}

func (h *PropertyHandler) DeleteProperty(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid property ID"})
	}

	if err := h.service.DeleteProperty(uint(id)); err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "property not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not delete property"})
	}
	return c.SendStatus(http.StatusNoContent)
}
