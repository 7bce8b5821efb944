package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/repository"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
)

func strPtr(s string) *string { return &s }

func TestProductCreate_Success(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo)

	created, err := svc.Create(&model.Product{
		Name:    "Drip Coffee Maker",
		SKU:     "dcm-01",
		Barcode: strPtr("4006381333931"),
		Price:   4999,
		Cost:    2100,
	})

	require.NoError(t, err)
	assert.Equal(t, "DCM-01", created.SKU) // normalized to upper case
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, 1, repo.creates)
}

func TestProductCreate_MissingNameRejected(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo)

	_, err := svc.Create(&model.Product{SKU: "X-1"})

	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
	assert.Equal(t, 0, repo.creates)
}

func TestProductCreate_DuplicateSKU(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo)

	_, err := svc.Create(&model.Product{Name: "First", SKU: "DUP-1"})
	require.NoError(t, err)

	_, err = svc.Create(&model.Product{Name: "Second", SKU: "DUP-1"})
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeConflict))
	assert.Equal(t, 1, repo.creates)
}

func TestProductCreate_DuplicateBarcode(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo)

	_, err := svc.Create(&model.Product{
		Name: "First", SKU: "A-1", Barcode: strPtr("12345678"),
	})
	require.NoError(t, err)

	_, err = svc.Create(&model.Product{
		Name: "Second", SKU: "A-2", Barcode: strPtr("12345678"),
	})
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeConflict))
	// The duplicate is not persisted.
	assert.Equal(t, 1, repo.creates)
}

func TestProductUpdate_KeepsOwnSKU(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo)

	created, err := svc.Create(&model.Product{Name: "Kettle", SKU: "KTL-1", Price: 1500})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, &model.Product{
		Name: "Electric Kettle", SKU: "KTL-1", Price: 1800,
	})
	require.NoError(t, err)
	assert.Equal(t, "Electric Kettle", updated.Name)
	assert.EqualValues(t, 1800, updated.Price)
}

func TestProductUpdate_NotFound(t *testing.T) {
	svc := NewProductService(newMockProductRepo())

	_, err := svc.Update(uuid.New(), &model.Product{Name: "Ghost", SKU: "G-1"})

	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeNotFound))
}

func TestProductSearch_EmptyQueryRejected(t *testing.T) {
	svc := NewProductService(newMockProductRepo())

	_, _, err := svc.Search("  ", repository.Pagination{Page: 1, Limit: 20})

	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
}
