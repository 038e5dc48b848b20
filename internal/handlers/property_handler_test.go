package handlers

import (
	"Boxtrack/internal/models"
	"Boxtrack/internal/services"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) CreateProperty(property *models.Property) error {
	args := m.Called(property)
	return args.Error(0)
}

func (m *MockPropertyService) GetPropertyByID(id uint) (*models.Property, error) {
	args := m.Called(id)
	property, ok := args.Get(0).(*models.Property)
	if !ok {
		return nil, args.Error(1)
	}
	return property, args.Error(1)
}

func (m *MockPropertyService) GetProperties(propertyType string) ([]models.Property, error) {
	args := m.Called(propertyType)
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyService) UpdateProperty(id uint, property *models.Property) (*models.Property, error) {
	args := m.Called(id, property)
	updated, ok := args.Get(0).(*models.Property)
	if !ok {
		return nil, args.Error(1)
	}
	return updated, args.Error(1)
}

func (m *MockPropertyService) DeleteProperty(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestPropertyHandler_CreateProperty(t *testing.T) {
	app := fiber.New()
	mockService := new(MockPropertyService)
	handler := NewPropertyHandler(mockService)

	app.Post("/properties", handler.CreateProperty)

	mockService.On("CreateProperty", mock.AnythingOfType("*models.Property")).
		Run(func(args mock.Arguments) {
			property := args.Get(0).(*models.Property)
			assert.Equal(t, "apartment", property.PropertyType)
			assert.Equal(t, "123 Main St", property.Address)
			assert.Equal(t, 1850.0, property.Price)
			assert.True(t, property.CatFriendly)
		}).
		Return(nil)

	reqBodyJSON, _ := json.Marshal(map[string]interface{}{
		"property_type": "apartment",
		"address":       "123 Main St",
		"price":         1850.0,
		"sq_ft":         720,
		"cat_friendly":  true,
		"num_bedrooms":  2,
	})
	req := httptest.NewRequest(http.MethodPost, "/properties", bytes.NewReader(reqBodyJSON))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestPropertyHandler_CreateProperty_MissingAddress(t *testing.T) {
	app := fiber.New()
	mockService := new(MockPropertyService)
	handler := NewPropertyHandler(mockService)

	app.Post("/properties", handler.CreateProperty)

	reqBodyJSON, _ := json.Marshal(map[string]interface{}{"property_type": "house"})
	req := httptest.NewRequest(http.MethodPost, "/properties", bytes.NewReader(reqBodyJSON))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockService.AssertNotCalled(t, "CreateProperty")
}

func TestPropertyHandler_ListProperties_ByType(t *testing.T) {
	app := fiber.New()
	mockService := new(MockPropertyService)
	handler := NewPropertyHandler(mockService)

	app.Get("/properties", handler.ListProperties)

	mockService.On("GetProperties", "apartment").Return([]models.Property{
		{BaseModel: models.BaseModel{ID: 1}, PropertyType: "apartment", Address: "123 Main St"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/properties?property_type=apartment", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestPropertyHandler_GetPropertyByID_NotFound(t *testing.T) {
	app := fiber.New()
	mockService := new(MockPropertyService)
	handler := NewPropertyHandler(mockService)

	app.Get("/properties/:id", handler.GetPropertyByID)

	mockService.On("GetPropertyByID", uint(9)).Return(nil, services.ErrPropertyNotFound)

	req := httptest.NewRequest(http.MethodGet, "/properties/9", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPropertyHandler_DeleteProperty(t *testing.T) {
	app := fiber.New()
	mockService := new(MockPropertyService)
	handler := NewPropertyHandler(mockService)

	app.Delete("/properties/:id", handler.DeleteProperty)

	mockService.On("DeleteProperty", uint(1)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/properties/1", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	mockService.AssertExpectations(t)
}
