package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
	"gstbill/internal/service"
	"gstbill/mocks"
)

func TestCustomerService_Create(t *testing.T) {
	bizID := uuid.New()

	t.Run("name_only", func(t *testing.T) {
		repo := new(mocks.MockCustomerRepo)
		svc := service.NewCustomerService(repo)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)

		c, err := svc.Create(context.Background(), bizID, service.CreateCustomerInput{Name: "Walk-in"})
		require.NoError(t, err)
		assert.Equal(t, bizID, c.BusinessID)
		assert.Equal(t, "Walk-in", c.Name)
	})

	t.Run("invalid_optional_fields", func(t *testing.T) {
		repo := new(mocks.MockCustomerRepo)
		svc := service.NewCustomerService(repo)

		_, err := svc.Create(context.Background(), bizID, service.CreateCustomerInput{
			Name: "Ravi", Phone: "12345", StateCode: "Maharashtra", GSTIN: "not-a-gstin",
		})
		fields := violationFields(t, err)
		assert.Contains(t, fields, "phone")
		assert.Contains(t, fields, "state_code")
		assert.Contains(t, fields, "gstin")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCustomerService_Search(t *testing.T) {
	bizID := uuid.New()

	t.Run("by_name", func(t *testing.T) {
		repo := new(mocks.MockCustomerRepo)
		svc := service.NewCustomerService(repo)
		repo.On("SearchByName", mock.Anything, bizID, "ravi", 0, 20).Return([]domain.Customer{{Name: "Ravi Kumar"}}, 1, nil)

		list, total, err := svc.Search(context.Background(), bizID, "  ravi ", 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, list, 1)
	})

	t.Run("empty_query_lists", func(t *testing.T) {
		repo := new(mocks.MockCustomerRepo)
		svc := service.NewCustomerService(repo)
		repo.On("List", mock.Anything, bizID, 10, 20).Return([]domain.Customer{}, 0, nil)

		_, _, err := svc.Search(context.Background(), bizID, "", 10, 20)
		require.NoError(t, err)
		repo.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCustomerService_Update(t *testing.T) {
	bizID, custID := uuid.New(), uuid.New()
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)
	repo.On("GetByID", mock.Anything, bizID, custID).Return(&domain.Customer{ID: custID, BusinessID: bizID, Name: "Ravi"}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)

	state := "9"
	c, err := svc.Update(context.Background(), bizID, custID, service.UpdateCustomerInput{StateCode: &state})
	require.NoError(t, err)
	assert.Equal(t, "09", c.StateCode)
	assert.Equal(t, "Ravi", c.Name)
}

func TestCustomerService_Delete_HasInvoices(t *testing.T) {
	bizID, custID := uuid.New(), uuid.New()
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)
	repo.On("Delete", mock.Anything, bizID, custID).Return(domain.ErrCustomerHasInvoices)

	err := svc.Delete(context.Background(), bizID, custID)
	assert.ErrorIs(t, err, domain.ErrCustomerHasInvoices)
}
