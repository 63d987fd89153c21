package handler

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func queryContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/packages?"+rawQuery, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestFilterFromQuery_DefaultsAreWideOpen(t *testing.T) {
	f := filterFromQuery(queryContext(t, ""))
	assert.Empty(t, f.Destination)
	assert.Equal(t, uint32(0), f.MinDuration)
	assert.Equal(t, uint32(math.MaxUint32), f.MaxDuration)
	assert.Equal(t, uint32(0), f.MinPriceCents)
	assert.Equal(t, uint32(math.MaxUint32), f.MaxPriceCents)
}

func TestFilterFromQuery_ParsesAllParams(t *testing.T) {
	f := filterFromQuery(queryContext(t,
		"destination=bali&min_duration=3&max_duration=14&min_price_cents=50000&max_price_cents=250000"))
	assert.Equal(t, "bali", f.Destination)
	assert.Equal(t, uint32(3), f.MinDuration)
	assert.Equal(t, uint32(14), f.MaxDuration)
	assert.Equal(t, uint32(50000), f.MinPriceCents)
	assert.Equal(t, uint32(250000), f.MaxPriceCents)
}

func TestFilterFromQuery_MalformedNumbersTreatedAsAbsent(t *testing.T) {
	f := filterFromQuery(queryContext(t, "min_duration=abc&max_price_cents=-5"))
	assert.Equal(t, uint32(0), f.MinDuration)
	assert.Equal(t, uint32(math.MaxUint32), f.MaxPriceCents)
}
