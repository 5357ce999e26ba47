package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esupport-inventory/internal/model"
)

func TestServiceActionRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceActionRepository(db)
	ctx := context.Background()

	pc := seedComputer(t, db, "LAP-1", "ST1", nil, nil)
	action := &model.ServiceAction{
		ComputerID: pc.ID,
		Title:      "Battery replacement",
		ActionDate: day("2024-03-15"),
		Cost:       decimal.RequireFromString("150.50"),
		Status:     model.StatusOpen,
	}
	require.NoError(t, repo.Create(ctx, action))

	got, err := repo.GetByID(ctx, action.ID)
	require.NoError(t, err)
	assert.True(t, got.Cost.Equal(decimal.RequireFromString("150.5")), got.Cost.String())
	assert.Equal(t, "2024-03-15", got.ActionDate.Format("2006-01-02"))
	require.NotNil(t, got.Computer)
	assert.Equal(t, "ST1", got.Computer.ServiceTag)

	action.Status = model.StatusDone
	require.NoError(t, repo.Update(ctx, action.ID, action))
	got, err = repo.GetByID(ctx, action.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDone, got.Status)

	require.NoError(t, repo.Delete(ctx, action.ID))
	_, err = repo.GetByID(ctx, action.ID)
	assert.True(t, errors.Is(err, ErrServiceActionNotFound))
}

func TestServiceActionRepository_CreateWithMissingComputer(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceActionRepository(db)

	err := repo.Create(context.Background(), &model.ServiceAction{
		ComputerID: 5, Title: "Ghost", ActionDate: day("2024-01-01"), Cost: decimal.Zero, Status: model.StatusOpen,
	})
	assert.True(t, errors.Is(err, ErrInvalidReference))
}

func TestServiceActionRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceActionRepository(db)
	ctx := context.Background()

	acme := seedCompany(t, db, "Acme", "")
	globex := seedCompany(t, db, "Globex", "")
	jan := seedEmployee(t, db, acme.ID, "Jan", "Kowalski", "")
	piotr := seedEmployee(t, db, globex.ID, "Piotr", "Nowak", "")
	lap1 := seedComputer(t, db, "LAP-1", "ST1", &acme.ID, &jan.ID)
	lap2 := seedComputer(t, db, "LAP-2", "ST2", &globex.ID, &piotr.ID)

	seedServiceAction(t, db, lap1.ID, "Battery", "2024-01-01", model.StatusDone)
	seedServiceAction(t, db, lap1.ID, "Keyboard", "2024-02-10", model.StatusOpen)
	seedServiceAction(t, db, lap2.ID, "Screen", "2023-12-31", model.StatusDone)
	seedServiceAction(t, db, lap2.ID, "Fan", "2024-02-29", model.StatusOpen)

	titles := func(page *Page[model.ServiceAction]) []string {
		out := []string{}
		for _, a := range page.Items {
			out = append(out, a.Title)
		}
		return out
	}

	tests := []struct {
		name    string
		query   ListQuery
		want    []string
		wantErr error
	}{
		{name: "newest first", query: ListQuery{}, want: []string{"Fan", "Keyboard", "Battery", "Screen"}},
		{name: "status", query: ListQuery{Filters: map[string]string{"status": "open"}}, want: []string{"Fan", "Keyboard"}},
		{name: "exact date", query: ListQuery{Filters: map[string]string{"action_date": "2024-01-01"}}, want: []string{"Battery"}},
		{name: "year", query: ListQuery{Filters: map[string]string{"year": "2023"}}, want: []string{"Screen"}},
		{name: "year and month", query: ListQuery{Filters: map[string]string{"year": "2024", "month": "2"}}, want: []string{"Fan", "Keyboard"}},
		{name: "computer", query: ListQuery{Filters: map[string]string{"computer": fmt.Sprint(lap2.ID)}}, want: []string{"Fan", "Screen"}},
		{name: "employee company", query: ListQuery{Filters: map[string]string{"company": fmt.Sprint(acme.ID)}}, want: []string{"Keyboard", "Battery"}},
		{name: "search service tag", query: ListQuery{Search: "st2"}, want: []string{"Fan", "Screen"}},
		{name: "search employee company", query: ListQuery{Search: "acme"}, want: []string{"Keyboard", "Battery"}},
		{name: "month without year", query: ListQuery{Filters: map[string]string{"month": "2"}}, wantErr: ErrInvalidFilter},
		{name: "bad month", query: ListQuery{Filters: map[string]string{"year": "2024", "month": "13"}}, wantErr: ErrInvalidFilter},
		{name: "bad date", query: ListQuery{Filters: map[string]string{"action_date": "01/01/2024"}}, wantErr: ErrInvalidFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := repo.List(ctx, tt.query)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(page))
			assert.Equal(t, int64(len(tt.want)), page.TotalCount)
		})
	}

	page, err := repo.List(ctx, ListQuery{Limit: 1})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.NotNil(t, page.Items[0].Computer)
	require.NotNil(t, page.Items[0].Computer.AssignedTo)
	assert.Equal(t, "Globex", page.Items[0].Computer.CompanyName())
}
