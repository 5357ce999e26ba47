package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esupport-inventory/internal/model"
)

type acmeInventory struct {
	acme, employee, lap1, lap2 uint
}

func seedAcmeInventory(t *testing.T, suite *IntegrationTestSuite) acmeInventory {
	t.Helper()

	var inv acmeInventory
	inv.acme = suite.create(t, "/admin/companies", map[string]string{"name": "Acme"})
	suite.create(t, "/admin/companies", map[string]string{"name": "Empty Co"})
	inv.employee = suite.create(t, "/admin/employees", map[string]interface{}{
		"company_id": inv.acme, "first_name": "Jan", "last_name": "Kowalski", "email": "jan@acme.pl",
	})
	inv.lap1 = suite.create(t, "/admin/computers", map[string]interface{}{
		"name": "LAP-1", "model": "X1", "brand": "Lenovo", "service_tag": "ST1",
		"company_id": inv.acme, "assigned_to_id": inv.employee,
	})
	inv.lap2 = suite.create(t, "/admin/computers", map[string]interface{}{
		"name": "LAP-2", "model": "X1", "brand": "Lenovo", "service_tag": "ST2", "company_id": inv.acme,
	})
	suite.create(t, "/admin/service-actions", map[string]interface{}{
		"computer_id": inv.lap1, "title": "Battery replacement", "action_date": "2024-01-01", "cost": "0", "status": "done",
	})
	return inv
}

func TestIntegration_ComputerReport(t *testing.T) {
	suite := setupIntegrationTest(t)
	inv := seedAcmeInventory(t, suite)

	t.Run("acme", func(t *testing.T) {
		status, resp := suite.do(t, http.MethodGet, fmt.Sprintf("/reports/computers?company=%d", inv.acme), nil)
		require.Equal(t, http.StatusOK, status)

		company := resp["company"].(map[string]interface{})
		assert.Equal(t, "Acme", company["name"])
		assert.Len(t, list(resp, "companies"), 2)

		computers := list(resp, "computers")
		require.Len(t, computers, 2)

		lap1 := computers[0]
		assert.Equal(t, "LAP-1", lap1["name"])
		assert.Equal(t, "ST1", lap1["service_tag"])
		assignee := lap1["assigned_to"].(map[string]interface{})
		assert.Equal(t, "Jan Kowalski", assignee["full_name"])
		actions := list(lap1, "service_actions")
		require.Len(t, actions, 1)
		assert.Equal(t, "2024-01-01", actions[0]["action_date"])
		assert.Equal(t, "0.00", actions[0]["cost"])
		assert.Equal(t, "done", actions[0]["status"])

		lap2 := computers[1]
		assert.Equal(t, "LAP-2", lap2["name"])
		assert.Nil(t, lap2["assigned_to"])
		assert.Equal(t, []interface{}{}, lap2["service_actions"])
	})

	t.Run("no selection", func(t *testing.T) {
		for _, path := range []string{"/reports/computers", "/admin/computer-report"} {
			status, resp := suite.do(t, http.MethodGet, path, nil)
			require.Equal(t, http.StatusOK, status, path)
			assert.Nil(t, resp["company"])
			assert.Len(t, list(resp, "companies"), 2)
			assert.Equal(t, []interface{}{}, resp["computers"])
		}
	})

	t.Run("unknown company", func(t *testing.T) {
		status, resp := suite.do(t, http.MethodGet, "/admin/computer-report?company=999", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Nil(t, resp["company"])
		assert.Equal(t, []interface{}{}, resp["computers"])

		status, resp = suite.do(t, http.MethodGet, "/reports/computers?company=999", nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "NOT_FOUND", resp["code"])

		status, _ = suite.do(t, http.MethodGet, "/reports/computers?company=abc", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestIntegration_DeletingEmployeeUnassignsComputers(t *testing.T) {
	suite := setupIntegrationTest(t)
	inv := seedAcmeInventory(t, suite)

	status, _ := suite.do(t, http.MethodDelete, fmt.Sprintf("/admin/employees/%d", inv.employee), nil)
	require.Equal(t, http.StatusOK, status)

	status, resp := suite.do(t, http.MethodGet, fmt.Sprintf("/reports/computers?company=%d", inv.acme), nil)
	require.Equal(t, http.StatusOK, status)
	computers := list(resp, "computers")
	require.Len(t, computers, 2)
	assert.Nil(t, computers[0]["assigned_to"])
	assert.Len(t, list(computers[0], "service_actions"), 1)
}

func TestIntegration_DeletingCompanyCascades(t *testing.T) {
	suite := setupIntegrationTest(t)
	inv := seedAcmeInventory(t, suite)

	status, _ := suite.do(t, http.MethodDelete, fmt.Sprintf("/admin/companies/%d", inv.acme), nil)
	require.Equal(t, http.StatusOK, status)

	for _, m := range []interface{}{&model.Employee{}, &model.Computer{}, &model.ServiceAction{}} {
		var n int64
		require.NoError(t, suite.DB.Model(m).Count(&n).Error)
		assert.Zero(t, n, "%T rows left", m)
	}

	status, _ = suite.do(t, http.MethodGet, fmt.Sprintf("/admin/computers/%d", inv.lap1), nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, resp := suite.do(t, http.MethodGet, fmt.Sprintf("/admin/computer-report?company=%d", inv.acme), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, resp["company"])
	assert.Len(t, list(resp, "companies"), 1)

	status, _ = suite.do(t, http.MethodGet, fmt.Sprintf("/reports/computers?company=%d", inv.acme), nil)
	assert.Equal(t, http.StatusNotFound, status)
}
