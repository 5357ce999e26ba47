package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esupport-inventory/internal/model"
)

func TestComputerRepository_CreateDuplicateServiceTag(t *testing.T) {
	db := setupTestDB(t)
	repo := NewComputerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Computer{Name: "LAP-1", Model: "X1", Brand: model.BrandLenovo, ServiceTag: "ST1"}))
	err := repo.Create(ctx, &model.Computer{Name: "LAP-2", Model: "X1", Brand: model.BrandLenovo, ServiceTag: "ST1"})

	assert.True(t, errors.Is(err, ErrDuplicateServiceTag))
}

func TestComputerRepository_CreateWithMissingEmployee(t *testing.T) {
	db := setupTestDB(t)
	repo := NewComputerRepository(db)

	err := repo.Create(context.Background(), &model.Computer{
		Name: "LAP-1", Model: "X1", Brand: model.BrandOther, ServiceTag: "ST1", AssignedToID: ptr(uint(77)),
	})
	assert.True(t, errors.Is(err, ErrInvalidReference))
}

func TestComputerRepository_GetByIDOrdersServiceHistory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewComputerRepository(db)

	acme := seedCompany(t, db, "Acme", "")
	emp := seedEmployee(t, db, acme.ID, "Jan", "Kowalski", "")
	pc := seedComputer(t, db, "LAP-1", "ST1", &acme.ID, &emp.ID)
	seedServiceAction(t, db, pc.ID, "Older", "2023-05-01", model.StatusDone)
	first := seedServiceAction(t, db, pc.ID, "Same day A", "2024-01-01", model.StatusDone)
	second := seedServiceAction(t, db, pc.ID, "Same day B", "2024-01-01", model.StatusOpen)

	got, err := repo.GetByID(context.Background(), pc.ID)
	require.NoError(t, err)
	require.Len(t, got.ServiceActions, 3)
	assert.Equal(t, second.ID, got.ServiceActions[0].ID)
	assert.Equal(t, first.ID, got.ServiceActions[1].ID)
	assert.Equal(t, "Older", got.ServiceActions[2].Title)
	assert.Equal(t, "Acme", got.CompanyName())
	require.NotNil(t, got.Company)
}

func TestComputerRepository_GetByIDWithoutHistory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewComputerRepository(db)

	pc := seedComputer(t, db, "LAP-1", "ST1", nil, nil)

	got, err := repo.GetByID(context.Background(), pc.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.ServiceActions)
	assert.Empty(t, got.ServiceActions)
	assert.Nil(t, got.AssignedTo)
}

func TestComputerRepository_UpdateUnassigns(t *testing.T) {
	db := setupTestDB(t)
	repo := NewComputerRepository(db)
	ctx := context.Background()

	acme := seedCompany(t, db, "Acme", "")
	emp := seedEmployee(t, db, acme.ID, "Jan", "Kowalski", "")
	pc := seedComputer(t, db, "LAP-1", "ST1", &acme.ID, &emp.ID)

	update := &model.Computer{Name: "LAP-1", Model: "X1", Brand: model.BrandLenovo, ServiceTag: "ST1", CompanyID: &acme.ID}
	require.NoError(t, repo.Update(ctx, pc.ID, update))

	got, err := repo.GetByID(ctx, pc.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AssignedToID)
	assert.Equal(t, model.BrandLenovo, got.Brand)

	assert.True(t, errors.Is(repo.Update(ctx, 999, update), ErrComputerNotFound))
}

func TestComputerRepository_DeleteCascadesServiceActions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewComputerRepository(db)

	pc := seedComputer(t, db, "LAP-1", "ST1", nil, nil)
	seedServiceAction(t, db, pc.ID, "Battery", "2024-01-01", model.StatusOpen)

	require.NoError(t, repo.Delete(context.Background(), pc.ID))
	assert.Equal(t, int64(0), count(t, db, &model.ServiceAction{}))
}

func TestComputerRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewComputerRepository(db)
	ctx := context.Background()

	acme := seedCompany(t, db, "Acme", "")
	globex := seedCompany(t, db, "Globex", "")
	jan := seedEmployee(t, db, acme.ID, "Jan", "Kowalski", "")
	piotr := seedEmployee(t, db, globex.ID, "Piotr", "Nowak", "")
	seedComputer(t, db, "LAP-3", "ST3", &acme.ID, nil)
	seedComputer(t, db, "LAP-1", "ST1", &acme.ID, &jan.ID)
	seedComputer(t, db, "LAP-2", "ST2", &acme.ID, &piotr.ID)

	t.Run("ordered by name with company name", func(t *testing.T) {
		page, err := repo.List(ctx, ListQuery{})
		require.NoError(t, err)
		require.Len(t, page.Items, 3)
		assert.Equal(t, "LAP-1", page.Items[0].Name)
		assert.Equal(t, "Acme", page.Items[0].CompanyName)
		assert.Equal(t, "Globex", page.Items[1].CompanyName)
		assert.Equal(t, "-", page.Items[2].CompanyName)
	})

	t.Run("search by employee last name", func(t *testing.T) {
		page, err := repo.List(ctx, ListQuery{Search: "nowak"})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "LAP-2", page.Items[0].Name)
	})

	t.Run("assigned employee company filter", func(t *testing.T) {
		page, err := repo.List(ctx, ListQuery{Filters: map[string]string{"assigned_to_company": fmt.Sprint(globex.ID)}})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.TotalCount)
		assert.Equal(t, "LAP-2", page.Items[0].Name)
	})

	t.Run("owning company filter", func(t *testing.T) {
		page, err := repo.List(ctx, ListQuery{Filters: map[string]string{"company": fmt.Sprint(acme.ID)}})
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.TotalCount)
	})

	t.Run("brand filter", func(t *testing.T) {
		page, err := repo.List(ctx, ListQuery{Filters: map[string]string{"brand": "HP"}})
		require.NoError(t, err)
		assert.Equal(t, int64(0), page.TotalCount)
		assert.Empty(t, page.Items)
	})

	t.Run("malformed employee filter", func(t *testing.T) {
		_, err := repo.List(ctx, ListQuery{Filters: map[string]string{"assigned_to": "-3"}})
		assert.True(t, errors.Is(err, ErrInvalidFilter))
	})
}

func TestComputerRepository_DistinctModels(t *testing.T) {
	db := setupTestDB(t)
	repo := NewComputerRepository(db)

	require.NoError(t, db.Create(&model.Computer{Name: "A", Model: "ThinkPad X1", Brand: model.BrandLenovo, ServiceTag: "A"}).Error)
	require.NoError(t, db.Create(&model.Computer{Name: "B", Model: "ThinkPad X1", Brand: model.BrandLenovo, ServiceTag: "B"}).Error)
	require.NoError(t, db.Create(&model.Computer{Name: "C", Model: "EliteBook", Brand: model.BrandHP, ServiceTag: "C"}).Error)
	require.NoError(t, db.Create(&model.Computer{Name: "D", Model: "", Brand: model.BrandOther, ServiceTag: "D"}).Error)

	models, err := repo.DistinctModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"EliteBook", "ThinkPad X1"}, models)
}
