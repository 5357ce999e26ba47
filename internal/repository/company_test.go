package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esupport-inventory/internal/model"
)

func TestCompanyRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	company := &model.Company{Name: "Acme", VATID: "PL1234567890", City: "Kraków"}
	require.NoError(t, repo.Create(ctx, company))
	assert.NotZero(t, company.ID)

	got, err := repo.GetByID(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, "PL1234567890", got.VATID)
}

func TestCompanyRepository_DuplicateName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Company{Name: "Acme"}))
	err := repo.Create(ctx, &model.Company{Name: "Acme"})

	assert.True(t, errors.Is(err, ErrDuplicateCompanyName))
}

func TestCompanyRepository_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 42)
	assert.True(t, errors.Is(err, ErrCompanyNotFound))

	err = repo.Update(ctx, 42, &model.Company{Name: "Ghost"})
	assert.True(t, errors.Is(err, ErrCompanyNotFound))

	err = repo.Delete(ctx, 42)
	assert.True(t, errors.Is(err, ErrCompanyNotFound))

	ok, err := repo.Exists(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompanyRepository_UpdateClearsOptionalFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	company := seedCompany(t, db, "Acme", "Kraków")
	require.NoError(t, repo.Update(ctx, company.ID, &model.Company{Name: "Acme S.A."}))

	got, err := repo.GetByID(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme S.A.", got.Name)
	assert.Empty(t, got.City)
}

func TestCompanyRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	acme := seedCompany(t, db, "Acme", "")
	other := seedCompany(t, db, "Globex", "")
	emp := seedEmployee(t, db, acme.ID, "Jan", "Kowalski", "jan@acme.pl")
	pc := seedComputer(t, db, "LAP-1", "ST1", &acme.ID, &emp.ID)
	seedServiceAction(t, db, pc.ID, "Battery", "2024-01-01", model.StatusDone)
	seedComputer(t, db, "LAP-9", "ST9", &other.ID, nil)

	require.NoError(t, repo.Delete(ctx, acme.ID))

	assert.Equal(t, int64(0), count(t, db, &model.Employee{}))
	assert.Equal(t, int64(1), count(t, db, &model.Computer{}))
	assert.Equal(t, int64(0), count(t, db, &model.ServiceAction{}))
}

func TestCompanyRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	seedCompany(t, db, "Globex", "Warszawa")
	seedCompany(t, db, "Acme", "Kraków")
	seedCompany(t, db, "Initech", "Kraków")

	t.Run("ordered by name", func(t *testing.T) {
		page, err := repo.List(ctx, ListQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.TotalCount)
		require.Len(t, page.Items, 3)
		assert.Equal(t, "Acme", page.Items[0].Name)
		assert.Equal(t, "Initech", page.Items[2].Name)
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		page, err := repo.List(ctx, ListQuery{Search: "GLOB"})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Globex", page.Items[0].Name)
	})

	t.Run("city filter with pagination", func(t *testing.T) {
		page, err := repo.List(ctx, ListQuery{Filters: map[string]string{"city": "Kraków"}, Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.TotalCount)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Initech", page.Items[0].Name)
	})

	t.Run("unknown filter ignored", func(t *testing.T) {
		page, err := repo.List(ctx, ListQuery{Filters: map[string]string{"color": "red"}})
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.TotalCount)
	})
}

func TestCompanyRepository_ListChoices(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)

	seedCompany(t, db, "Globex", "")
	seedCompany(t, db, "Acme", "")

	choices, err := repo.ListChoices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Globex"}, []string{choices[0].Name, choices[1].Name})
	assert.Equal(t, []string{"city"}, CompanyFilterKeys())
}
