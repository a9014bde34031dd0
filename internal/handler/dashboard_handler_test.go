package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andhika-Putra/dashboard-app/internal/api"
	"github.com/Andhika-Putra/dashboard-app/internal/config"
	"github.com/Andhika-Putra/dashboard-app/internal/models"
	"github.com/Andhika-Putra/dashboard-app/internal/service"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	records := []models.DailyRecord{
		{
			Date: time.Date(2011, 4, 1, 0, 0, 0, 0, time.UTC), Season: models.SeasonSpring,
			Year: 2011, Month: 4, DayType: models.DayTypeWorking,
			Temperature: 0.4, Humidity: 0.6, TotalCount: 100,
		},
		{
			Date: time.Date(2012, 7, 1, 0, 0, 0, 0, time.UTC), Season: models.SeasonSummer,
			Year: 2012, Month: 7, DayType: models.DayTypeWeekend,
			Temperature: 0.7, Humidity: 0.5, TotalCount: 200,
		},
	}
	svc := service.NewDashboardService(records)
	return api.SetupRouter(&config.Config{Port: ":0", WebDir: t.TempDir(), Debug: true}, svc)
}

func doRequest(t *testing.T, router *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestGetMetrics(t *testing.T) {
	router := testRouter(t)

	w := doRequest(t, router, "/api/v1/dashboard/metrics?year=2011&seasons=Spring")
	require.Equal(t, http.StatusOK, w.Code)

	env := decode(t, w)
	assert.Equal(t, 0, env.Code)

	var m models.Metrics
	require.NoError(t, json.Unmarshal(env.Data, &m))
	assert.Equal(t, 1, m.Days)
	require.NotNil(t, m.MeanTotal)
	assert.Equal(t, 100.0, *m.MeanTotal)
}

func TestGetMetricsEmptyView(t *testing.T) {
	router := testRouter(t)

	w := doRequest(t, router, "/api/v1/dashboard/metrics?year=1999")
	require.Equal(t, http.StatusOK, w.Code)

	var m models.Metrics
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &m))
	assert.Equal(t, 0, m.Days)
	assert.Nil(t, m.MeanTotal)
	assert.Nil(t, m.MaxTotal)
	assert.Nil(t, m.MinTotal)
}

func TestGetMetricsRejectsBadSeason(t *testing.T) {
	router := testRouter(t)

	w := doRequest(t, router, "/api/v1/dashboard/metrics?seasons=Monsoon")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Message, "Monsoon")
}

func TestGetFilters(t *testing.T) {
	router := testRouter(t)

	w := doRequest(t, router, "/api/v1/dashboard/filters")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Years   []string `json:"years"`
		Seasons []string `json:"seasons"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, []string{"All", "2011", "2012"}, data.Years)
	assert.Equal(t, []string{"Spring", "Summer", "Fall", "Winter"}, data.Seasons)
}

func TestGetMonthlyTrend(t *testing.T) {
	router := testRouter(t)

	w := doRequest(t, router, "/api/v1/dashboard/monthly-trend")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Data  []models.MonthlyMean `json:"data"`
		Count int                  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, 2, data.Count)
	assert.Equal(t, 4, data.Data[0].Month)
	assert.Equal(t, 7, data.Data[1].Month)
}

func TestGetClusters(t *testing.T) {
	router := testRouter(t)

	w := doRequest(t, router, "/api/v1/dashboard/clusters")
	require.Equal(t, http.StatusOK, w.Code)

	var breakdown models.ClusterBreakdown
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &breakdown))
	require.Len(t, breakdown.Counts, 3)

	// Two rows cannot form three quantile bins.
	assert.Equal(t, "equal-width", breakdown.Method)
}

func TestGetChartPNG(t *testing.T) {
	router := testRouter(t)

	charts := []string{
		"temperature", "humidity", "working-day",
		"monthly-trend", "cluster-distribution", "season-clusters",
	}
	for _, name := range charts {
		t.Run(name, func(t *testing.T) {
			w := doRequest(t, router, "/api/v1/charts/"+name+".png?year=All")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
			assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, w.Body.Bytes()[:4])
		})
	}
}

func TestGetChartUnknownName(t *testing.T) {
	router := testRouter(t)

	w := doRequest(t, router, "/api/v1/charts/pie.png")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	router := testRouter(t)

	w := doRequest(t, router, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
