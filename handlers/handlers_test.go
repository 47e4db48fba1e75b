package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polarplotter/cache"
	"polarplotter/db"
	"polarplotter/handlers"
	"polarplotter/models"
	"polarplotter/service"
	"polarplotter/session"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	example, err := service.LoadExampleTable()
	require.NoError(t, err)
	sessions := session.NewManager(cache.New(time.Minute), example)

	exports, err := service.NewExportService(t.TempDir(), database, "", 5*time.Second)
	require.NoError(t, err)

	h := handlers.New(sessions, exports)

	r := gin.New()
	r.GET("/health", h.HealthHandler)
	r.GET("/api/version", h.VersionHandler)
	r.GET("/api/sidebar", h.SidebarHandler)
	r.POST("/api/sessions", h.CreateSessionHandler)
	r.GET("/api/style", h.GetStyleHandler)
	r.PUT("/api/style", h.UpdateStyleHandler)
	r.POST("/api/style/reset", h.ResetStyleHandler)
	r.GET("/api/data", h.GetDataHandler)
	r.PUT("/api/data", h.SetDataHandler)
	r.POST("/api/data/upload", h.UploadDataHandler)
	r.POST("/api/data/example", h.UseExampleHandler)
	r.GET("/api/chart", h.GetChartHandler)
	r.POST("/api/export/html", h.ExportHTMLHandler)
	r.GET("/api/exports", h.ListExportsHandler)
	r.GET("/api/exports/file/:filename", h.DownloadExportHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, sessionID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestSidebar_VersionSubstituted(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/sidebar", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Polar Plotter v0.3.1")
	assert.NotContains(t, w.Body.String(), "{VERSION}")
}

func TestCreateSession(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sessions", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
}

func TestGetChart_ExampleDatasetByDefault(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/chart", "sess", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var desc models.ChartDescription
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &desc))
	require.Len(t, desc.Data, 1)
	assert.Len(t, desc.Data[0].Theta, 17) // 16 rows + closing point
	assert.Equal(t, "Job Requirements", desc.Layout.Title.Text)
}

func TestSetData_ThenChartReversedAndClosed(t *testing.T) {
	r := newTestRouter(t)

	body := models.SetDataRequest{Rows: []models.Row{
		{Label: "A", Value: 1},
		{Label: "B", Value: 2},
		{Label: "C", Value: 3},
	}}
	w := doJSON(t, r, http.MethodPut, "/api/data", "sess", body)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/chart", "sess", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var desc models.ChartDescription
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &desc))
	assert.Equal(t, []string{"A", "C", "B", "A"}, desc.Data[0].Theta)
	assert.Equal(t, []float64{1, 3, 2, 1}, desc.Data[0].R)
	// User title applies once the example dataset is replaced.
	assert.Equal(t, "", desc.Layout.Title.Text)
}

func TestSetData_EmptyTableYieldsNoChart(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/data", "sess", models.SetDataRequest{Rows: []models.Row{}})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/chart", "sess", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUseExample_RestoresDataset(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/data", "sess", models.SetDataRequest{Rows: []models.Row{{Label: "X", Value: 1}}})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/data/example", "sess", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"source":"example"`)
	assert.Contains(t, w.Body.String(), "Computer Vision")
}

func TestUpdateStyle_Partial(t *testing.T) {
	r := newTestRouter(t)

	opacity := 0.3
	color := "#FF0000"
	w := doJSON(t, r, http.MethodPut, "/api/style", "sess", models.UpdateStyleRequest{
		Opacity:     &opacity,
		MarkerColor: &color,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var style models.StyleConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &style))
	assert.Equal(t, 0.3, style.Opacity)
	assert.Equal(t, "#FF0000", style.MarkerColor)
	// Untouched fields keep their defaults.
	assert.Equal(t, "#636EFA", style.LineColor)
	assert.Equal(t, 6, style.MarkerSize)
}

func TestUpdateStyle_OutOfRangeRejected(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		req  models.UpdateStyleRequest
	}{
		{"opacity above 1", func() models.UpdateStyleRequest {
			v := 1.5
			return models.UpdateStyleRequest{Opacity: &v}
		}()},
		{"bad color", func() models.UpdateStyleRequest {
			v := "red"
			return models.UpdateStyleRequest{MarkerColor: &v}
		}()},
		{"bad symbol", func() models.UpdateStyleRequest {
			v := "blob"
			return models.UpdateStyleRequest{MarkerSymbol: &v}
		}()},
		{"bad dash", func() models.UpdateStyleRequest {
			v := "wavy"
			return models.UpdateStyleRequest{LineDash: &v}
		}()},
		{"line width too big", func() models.UpdateStyleRequest {
			v := 11
			return models.UpdateStyleRequest{LineWidth: &v}
		}()},
		{"bad mode", func() models.UpdateStyleRequest {
			v := []string{"text"}
			return models.UpdateStyleRequest{Mode: &v}
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPut, "/api/style", "sess", tt.req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	// None of the rejected updates may have leaked into the session.
	w := doJSON(t, r, http.MethodGet, "/api/style", "sess", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var style models.StyleConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &style))
	assert.Equal(t, models.DefaultStyle(), style)
}

func TestResetStyle(t *testing.T) {
	r := newTestRouter(t)

	opacity := 0.1
	title := "custom"
	w := doJSON(t, r, http.MethodPut, "/api/style", "sess", models.UpdateStyleRequest{
		Opacity: &opacity,
		Title:   &title,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/style/reset", "sess", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var style models.StyleConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &style))
	assert.Equal(t, models.DefaultStyle(), style)
}

func TestSessions_IsolatedOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	opacity := 0.2
	w := doJSON(t, r, http.MethodPut, "/api/style", "alice", models.UpdateStyleRequest{Opacity: &opacity})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/style", "bob", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var style models.StyleConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &style))
	assert.Equal(t, models.DefaultStyle(), style)
}

func TestUploadData_CSV(t *testing.T) {
	r := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "skills.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("Label,Value\nGo,5\nPython,3.4\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/data/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Session-ID", "sess")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"source":"upload"`)
	assert.Contains(t, w.Body.String(), "Go")
}

func TestUploadData_NoFile(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/data/upload", "sess", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadData_MalformedRejected(t *testing.T) {
	r := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "bad.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("OnlyOneColumn\nA\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/data/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Session-ID", "sess")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportHTML_AndDownload(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/export/html", "sess", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ExportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Filename)
	assert.True(t, strings.HasPrefix(resp.Path, "/api/exports/file/"))

	w = doJSON(t, r, http.MethodGet, "/api/exports", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), resp.Filename)

	w = doJSON(t, r, http.MethodGet, resp.Path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "Plotly.newPlot")
}

func TestExportHTML_NoChart(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/data", "sess", models.SetDataRequest{Rows: []models.Row{}})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/export/html", "sess", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadExport_NotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/exports/file/nope.html", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
