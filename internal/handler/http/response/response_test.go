package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://api.local/api/v1/departments?search=it&page=2&per_page=2", nil)
	rec := httptest.NewRecorder()

	page := pagination.NewPage([]string{"c", "d"}, 5, pagination.Params{Page: 2, PerPage: 2})
	Paginated(rec, req, page)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, []interface{}{"c", "d"}, body.Data)

	require.NotNil(t, body.Meta)
	assert.Equal(t, Meta{CurrentPage: 2, PerPage: 2, Total: 5, LastPage: 3, From: 3, To: 4}, *body.Meta)

	require.NotNil(t, body.Links)
	assert.Equal(t, "http://api.local/api/v1/departments?page=1&per_page=2&search=it", body.Links.First)
	assert.Equal(t, "http://api.local/api/v1/departments?page=3&per_page=2&search=it", body.Links.Last)
	require.NotNil(t, body.Links.Prev)
	assert.Equal(t, "http://api.local/api/v1/departments?page=1&per_page=2&search=it", *body.Links.Prev)
	require.NotNil(t, body.Links.Next)
	assert.Equal(t, "http://api.local/api/v1/departments?page=3&per_page=2&search=it", *body.Links.Next)
}

func TestPaginated_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://api.local/api/v1/employees", nil)
	rec := httptest.NewRecorder()

	Paginated(rec, req, pagination.NewPage[string](nil, 0, pagination.Params{Page: 1, PerPage: 10}))

	body := decode(t, rec)
	assert.Equal(t, []interface{}{}, body.Data)
	assert.Equal(t, Meta{CurrentPage: 1, PerPage: 10, Total: 0, LastPage: 1}, *body.Meta)
	assert.Nil(t, body.Links.Prev)
	assert.Nil(t, body.Links.Next)
}
