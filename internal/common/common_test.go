package common

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext(target string, params gin.Params) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	c.Params = params
	return c
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults", target: "/x", wantPage: 1, wantPageSize: DefaultPageSize},
		{name: "explicit", target: "/x?page=3&pageSize=5", wantPage: 3, wantPageSize: 5},
		{name: "negative", target: "/x?page=-2&pageSize=0", wantPage: 1, wantPageSize: DefaultPageSize},
		{name: "clamped", target: "/x?pageSize=1000", wantPage: 1, wantPageSize: MaxPageSize},
		{name: "garbage", target: "/x?page=abc", wantPage: 1, wantPageSize: DefaultPageSize},
		{name: "huge page", target: "/x?page=9223372036854775807", wantPage: MaxPage, wantPageSize: DefaultPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size := ParsePagination(newContext(tt.target, nil), DefaultPageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, size)
		})
	}
	assert.Equal(t, 40, Offset(3, 20))
	assert.Positive(t, Offset(MaxPage, MaxPageSize))
}

func TestParseIDParam(t *testing.T) {
	c := newContext("/x", gin.Params{{Key: "user_id", Value: "12"}})
	id, err := ParseIDParam(c, "user_id")
	assert.NoError(t, err)
	assert.Equal(t, uint(12), id)

	for _, bad := range []string{"0", "-1", "abc", ""} {
		c := newContext("/x", gin.Params{{Key: "user_id", Value: bad}})
		_, err := ParseIDParam(c, "user_id")
		assert.Error(t, err, bad)
	}
}

func TestParseOptionalUintQuery(t *testing.T) {
	assert.Nil(t, ParseOptionalUintQuery(newContext("/x", nil), "skill_id"))
	assert.Nil(t, ParseOptionalUintQuery(newContext("/x?skill_id=nope", nil), "skill_id"))
	got := ParseOptionalUintQuery(newContext("/x?skill_id=4", nil), "skill_id")
	if assert.NotNil(t, got) {
		assert.Equal(t, uint(4), *got)
	}
}
