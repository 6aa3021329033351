package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenosis/employees/internal/employee/domain"
	"github.com/xenosis/employees/internal/testutil"
)

const adminPassword = "Admin1234"

type apiClient struct {
	t      *testing.T
	server *httptest.Server
}

func (a *apiClient) do(method, path, email, password string, body any) (int, []byte) {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(a.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if email != "" {
		req.SetBasicAuth(email, password)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req) //nolint:gosec // httptest server URL
	require.NoError(a.t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	return resp.StatusCode, raw
}

func harishPayload(password string) map[string]any {
	return map[string]any{
		"firstname":      "Harish",
		"lastname":       "Palaspagar",
		"email":          "harish@x.com",
		"password":       password,
		"dateOfBirth":    "1990-01-01",
		"department":     "HR",
		"salary":         "50000",
		"attendanceDays": 25,
		"roles":          []string{"USER"},
	}
}

// TestAPI_Integration drives the employee lifecycle over HTTP against real
// databases. It is skipped when they are not reachable.
func TestAPI_Integration(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql"} {
		t.Run(driver, func(t *testing.T) {
			testutil.SkipIfNoDB(t, driver)
			testutil.SetupDB(t, driver)

			cfg := testConfig()
			cfg.DBDriver = driver
			cfg.DBConnectionString = testutil.TestDSN(driver)
			container := NewContainer(cfg)
			t.Cleanup(func() { _ = container.Shutdown(context.Background()) })

			bootstrap(t, container)

			server, err := container.HTTPServer(t.Context())
			require.NoError(t, err)
			api := &apiClient{t: t, server: httptest.NewServer(server.GetHandler())}
			t.Cleanup(api.server.Close)

			status, _ := api.do(http.MethodGet, "/v1/employees", "", "", nil)
			assert.Equal(t, http.StatusUnauthorized, status)

			status, _ = api.do(http.MethodGet, "/v1/employees", "admin@x.com", "wrong", nil)
			assert.Equal(t, http.StatusUnauthorized, status)

			status, raw := api.do(http.MethodPost, "/v1/employees", "admin@x.com", adminPassword, harishPayload("Secret123"))
			require.Equal(t, http.StatusCreated, status, string(raw))
			var created map[string]any
			require.NoError(t, json.Unmarshal(raw, &created))
			assert.NotContains(t, created, "password")
			id := int64(created["id"].(float64))

			status, _ = api.do(http.MethodPost, "/v1/employees", "admin@x.com", adminPassword, harishPayload("Secret123"))
			assert.Equal(t, http.StatusConflict, status)

			status, raw = api.do(http.MethodPost, "/v1/employees", "admin@x.com", adminPassword, map[string]any{})
			assert.Equal(t, http.StatusUnprocessableEntity, status, string(raw))

			status, _ = api.do(http.MethodGet, "/v1/employees", "harish@x.com", "Secret123", nil)
			assert.Equal(t, http.StatusOK, status)

			status, _ = api.do(http.MethodGet, "/v1/reports/salary", "harish@x.com", "Secret123", nil)
			assert.Equal(t, http.StatusForbidden, status)

			updated := harishPayload("NewSecret9")
			updated["department"] = "Finance"
			path := "/v1/employees/" + strconv.FormatInt(id, 10)
			status, raw = api.do(http.MethodPut, path, "admin@x.com", adminPassword, updated)
			require.Equal(t, http.StatusOK, status, string(raw))

			status, _ = api.do(http.MethodGet, "/v1/employees", "harish@x.com", "Secret123", nil)
			assert.Equal(t, http.StatusUnauthorized, status, "old password must stop working after update")

			status, raw = api.do(http.MethodGet, "/v1/reports/department", "admin@x.com", adminPassword, nil)
			require.Equal(t, http.StatusOK, status)
			assert.JSONEq(t, `[
				{"department":"Finance","totalEmployees":1},
				{"department":"IT","totalEmployees":1}
			]`, string(raw))

			status, _ = api.do(http.MethodDelete, path, "admin@x.com", adminPassword, nil)
			assert.Equal(t, http.StatusOK, status)

			status, _ = api.do(http.MethodGet, path, "admin@x.com", adminPassword, nil)
			assert.Equal(t, http.StatusNotFound, status)
		})
	}
}

// bootstrap creates the first ADMIN through the ungated use case, the way
// the create-employee command does.
func bootstrap(t *testing.T, container *Container) {
	t.Helper()

	useCase, err := container.EmployeeUseCase()
	require.NoError(t, err)

	days := 20
	_, err = useCase.Create(context.Background(), domain.EmployeeInput{
		Firstname:      "Asha",
		Lastname:       "Rao",
		Email:          "admin@x.com",
		Password:       adminPassword,
		DateOfBirth:    time.Date(1985, 3, 2, 0, 0, 0, 0, time.UTC),
		Department:     "IT",
		AttendanceDays: &days,
		Roles:          []domain.Role{domain.RoleAdmin},
	})
	require.NoError(t, err)
}
