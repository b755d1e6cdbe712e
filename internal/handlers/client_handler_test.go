package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clientbook/internal/audit"
	"github.com/BruksfildServices01/clientbook/internal/config"
	"github.com/BruksfildServices01/clientbook/internal/dto"
	"github.com/BruksfildServices01/clientbook/internal/httperr"
	"github.com/BruksfildServices01/clientbook/internal/httpresp"
	"github.com/BruksfildServices01/clientbook/internal/infra/repository"
	"github.com/BruksfildServices01/clientbook/internal/models"
	"github.com/BruksfildServices01/clientbook/internal/routes"
	"github.com/BruksfildServices01/clientbook/internal/testutil"
	ucClient "github.com/BruksfildServices01/clientbook/internal/usecase/client"
)

func setupClientTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := repository.NewClientGormRepository(testutil.NewSQLiteDB(t))
	dispatcher := audit.NewDispatcher(audit.New())
	t.Cleanup(dispatcher.Close)

	uc := ucClient.NewSet(repo, dispatcher)
	require.NoError(t, uc.Schema.Execute(context.Background(), true))

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, uc, &config.Config{})

	return r
}

func perform(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func createClient(t *testing.T, r *gin.Engine, body map[string]any) models.Client {
	t.Helper()
	w := perform(r, http.MethodPost, "/api/clients", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.Client](t, w)
}

func TestCreateClientHandler(t *testing.T) {
	r := setupClientTestRouter(t)

	t.Run("Successfully creates a client with phones", func(t *testing.T) {
		c := createClient(t, r, map[string]any{
			"first_name": "Ivan",
			"last_name":  "Petrov",
			"email":      "petr@mail.ru",
			"phones":     []string{"211-46-31", "322-25-21"},
		})

		assert.NotZero(t, c.ID)
		assert.Equal(t, "Petrov", c.LastName)
		assert.Len(t, c.Phones, 2)
	})

	t.Run("Rejects missing fields", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/api/clients", map[string]any{"first_name": "Ivan"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_request", decode[httperr.HTTPError](t, w).Code)
	})

	t.Run("Conflicts on duplicate email", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/api/clients", map[string]any{
			"first_name": "Other", "last_name": "Petrov", "email": "petr@mail.ru",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "email_taken", decode[httperr.HTTPError](t, w).Code)
	})

	t.Run("Conflicts on duplicate phone", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/api/clients", map[string]any{
			"first_name": "Ivan", "last_name": "Ivanov", "email": "ivan@mail.ru",
			"phones": []string{"211-46-31"},
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "phone_taken", decode[httperr.HTTPError](t, w).Code)
	})
}

func TestListClientsHandler(t *testing.T) {
	r := setupClientTestRouter(t)
	createClient(t, r, map[string]any{
		"first_name": "Ivan", "last_name": "Ivanov", "email": "ivan@mail.ru",
	})
	createClient(t, r, map[string]any{
		"first_name": "Ivan", "last_name": "Petrov", "email": "petr@mail.ru",
		"phones": []string{"211-46-31", "322-25-21"},
	})

	t.Run("No filters returns every combination", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/clients", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[httpresp.ListResponse[dto.ClientSearchRow]](t, w)
		assert.Equal(t, 3, resp.Total)
		assert.Nil(t, resp.Data[0].Phone)
	})

	t.Run("Filters by phone", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/clients?phone=211-46-31", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[httpresp.ListResponse[dto.ClientSearchRow]](t, w)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "petr@mail.ru", resp.Data[0].Email)
	})

	t.Run("Blank parameter does not filter", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/clients?first_name=Ivan&email=", nil)
		require.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, 3, decode[httpresp.ListResponse[dto.ClientSearchRow]](t, w).Total)
	})
}

func TestUpdateClientHandler(t *testing.T) {
	r := setupClientTestRouter(t)
	c := createClient(t, r, map[string]any{
		"first_name": "Ivan", "last_name": "Ivanov", "email": "ivan@mail.ru",
		"phones": []string{"344-12-12"},
	})
	path := "/api/clients/" + jsonID(c.ID)

	t.Run("Absent phones are kept", func(t *testing.T) {
		w := perform(r, http.MethodPatch, path, map[string]any{"first_name": "Dmitry"})
		require.Equal(t, http.StatusOK, w.Code)

		got := decode[models.Client](t, w)
		assert.Equal(t, "Dmitry", got.FirstName)
		assert.Len(t, got.Phones, 1)
	})

	t.Run("Phones are replaced", func(t *testing.T) {
		w := perform(r, http.MethodPatch, path, map[string]any{
			"email":  "newmail@mail.ru",
			"phones": []string{"777-77-77", "555-55-55"},
		})
		require.Equal(t, http.StatusOK, w.Code)

		got := decode[models.Client](t, w)
		assert.Equal(t, "newmail@mail.ru", got.Email)
		require.Len(t, got.Phones, 2)
		assert.Equal(t, "777-77-77", got.Phones[0].Number)
	})

	t.Run("Empty phones clear the list", func(t *testing.T) {
		w := perform(r, http.MethodPatch, path, map[string]any{"phones": []string{}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decode[models.Client](t, w).Phones)
	})

	t.Run("Unknown client", func(t *testing.T) {
		w := perform(r, http.MethodPatch, "/api/clients/999", map[string]any{"first_name": "X"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		w := perform(r, http.MethodPatch, "/api/clients/abc", map[string]any{"first_name": "X"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_client_id", decode[httperr.HTTPError](t, w).Code)
	})
}

func TestPhoneHandlers(t *testing.T) {
	r := setupClientTestRouter(t)
	c := createClient(t, r, map[string]any{
		"first_name": "Ivan", "last_name": "Ivanov", "email": "ivan@mail.ru",
	})
	base := "/api/clients/" + jsonID(c.ID)

	w := perform(r, http.MethodPost, base+"/phones", map[string]any{"phone": "555-55-55"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "555-55-55", decode[models.Phone](t, w).Number)

	w = perform(r, http.MethodPost, "/api/clients/999/phones", map[string]any{"phone": "000-00-00"})
	assert.GreaterOrEqual(t, w.Code, http.StatusBadRequest)

	w = perform(r, http.MethodDelete, base+"/phones/555-55-55", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(r, http.MethodDelete, base+"/phones/555-55-55", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "phone_not_found", decode[httperr.HTTPError](t, w).Code)
}

func TestDeleteClientHandler(t *testing.T) {
	r := setupClientTestRouter(t)
	c := createClient(t, r, map[string]any{
		"first_name": "Ivan", "last_name": "Ivanov", "email": "ivan@mail.ru",
		"phones": []string{"777-77-77"},
	})
	path := "/api/clients/" + jsonID(c.ID)

	w := perform(r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(r, http.MethodGet, "/api/clients?phone=777-77-77", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, decode[httpresp.ListResponse[dto.ClientSearchRow]](t, w).Total)
}

func jsonID(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
