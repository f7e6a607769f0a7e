package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return c
}

func TestPageParamsDefaults(t *testing.T) {
	page, pageSize := pageParams(testContext(""))
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPageSize, pageSize)
}

func TestPageParamsExplicit(t *testing.T) {
	page, pageSize := pageParams(testContext("page=3&pageSize=50"))
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, pageSize)
}

func TestPageParamsClamped(t *testing.T) {
	page, pageSize := pageParams(testContext("page=-2&pageSize=100000"))
	assert.Equal(t, 1, page)
	assert.Equal(t, MaxPageSize, pageSize)
}

func TestCreatePaginatedResponse(t *testing.T) {
	c := testContext("page=2&pageSize=10")
	resp := CreatePaginatedResponse(c, []string{"a", "b"}, 25)

	assert.Equal(t, int64(25), resp.TotalRows)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 2, resp.CurrentPage)
	assert.Equal(t, 10, resp.PageSize)
}
