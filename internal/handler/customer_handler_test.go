package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
	"gstbill/internal/handler"
	"gstbill/internal/service"
	"gstbill/mocks"
)

func newCustomerHandler() (*handler.CustomerHandler, *mocks.MockCustomerService) {
	mockSvc := new(mocks.MockCustomerService)
	return handler.NewCustomerHandler(mockSvc, testErrors()), mockSvc
}

func TestCustomerHandler_Create(t *testing.T) {
	h, mockSvc := newCustomerHandler()
	bizID := uuid.New()
	input := service.CreateCustomerInput{Name: "Ravi Kumar", StateCode: "29"}
	mockSvc.On("Create", mock.Anything, bizID, input).Return(&domain.Customer{ID: uuid.New(), Name: "Ravi Kumar"}, nil)

	c, w := newContext(http.MethodPost, "/customers", bizID, input)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestCustomerHandler_List(t *testing.T) {
	h, mockSvc := newCustomerHandler()
	bizID := uuid.New()
	mockSvc.On("List", mock.Anything, bizID, 0, 20).Return([]domain.Customer{{Name: "A"}}, 1, nil)

	c, w := newContext(http.MethodGet, "/customers?limit=500", bizID, nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 20, resp.Meta.Limit)
}

func TestCustomerHandler_Search(t *testing.T) {
	h, mockSvc := newCustomerHandler()
	bizID := uuid.New()
	mockSvc.On("Search", mock.Anything, bizID, "ravi", 0, 20).Return([]domain.Customer{{Name: "Ravi Kumar"}}, 1, nil)

	c, w := newContext(http.MethodGet, "/customers/search?q=ravi", bizID, nil)
	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestCustomerHandler_GetByID_NotFound(t *testing.T) {
	h, mockSvc := newCustomerHandler()
	bizID, customerID := uuid.New(), uuid.New()
	mockSvc.On("GetByID", mock.Anything, bizID, customerID).Return(nil, domain.ErrCustomerNotFound)

	c, w := newContext(http.MethodGet, "/customers/x", bizID, nil, idParam(customerID))
	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerHandler_Update(t *testing.T) {
	h, mockSvc := newCustomerHandler()
	bizID, customerID := uuid.New(), uuid.New()
	mockSvc.On("Update", mock.Anything, bizID, customerID, mock.MatchedBy(func(in service.UpdateCustomerInput) bool {
		return in.City != nil && *in.City == "Mysuru" && in.Name == nil
	})).Return(&domain.Customer{ID: customerID, City: "Mysuru"}, nil)

	c, w := newContext(http.MethodPut, "/customers/x", bizID, map[string]string{"city": "Mysuru"}, idParam(customerID))
	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestCustomerHandler_Delete_HasInvoices(t *testing.T) {
	h, mockSvc := newCustomerHandler()
	bizID, customerID := uuid.New(), uuid.New()
	mockSvc.On("Delete", mock.Anything, bizID, customerID).Return(domain.ErrCustomerHasInvoices)

	c, w := newContext(http.MethodDelete, "/customers/x", bizID, nil, idParam(customerID))
	h.Delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
