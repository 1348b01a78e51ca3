package httpadapter_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/detunized/pentomino-cal-solver/internal/adapters/http"
	"github.com/detunized/pentomino-cal-solver/internal/almanac"
	"github.com/detunized/pentomino-cal-solver/internal/hint"
	"github.com/detunized/pentomino-cal-solver/internal/infrastructure/storage"
	"github.com/detunized/pentomino-cal-solver/internal/solver"
	"github.com/detunized/pentomino-cal-solver/internal/usecase"
	"github.com/detunized/pentomino-cal-solver/internal/validator"
)

func testMux(t *testing.T) *http.ServeMux {
	t.Helper()
	s := solver.NewBacktrackingSolver()
	uc := usecase.NewService(s, validator.New(), hint.New(s), almanac.New(s, 4), storage.NewFS(t.TempDir()))
	mux := http.NewServeMux()
	httpadapter.New(uc).Register(mux)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestSolveEndpoint(t *testing.T) {
	mux := testMux(t)
	rec := postJSON(t, mux, "/api/solve", map[string]int{"month": 6, "day": 28})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Solved bool   `json:"solved"`
		Grid   string `json:"grid"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Solved)
	assert.NotEmpty(t, resp.Grid)
}

func TestSolveEndpointRejectsBadMonth(t *testing.T) {
	mux := testMux(t)
	rec := postJSON(t, mux, "/api/solve", map[string]int{"month": 13, "day": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "month")
}

func TestSolveEndpointMethod(t *testing.T) {
	mux := testMux(t)
	req := httptest.NewRequest(http.MethodGet, "/api/solve", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSolveEndpointUsesCache(t *testing.T) {
	mux := testMux(t)
	first := postJSON(t, mux, "/api/solve", map[string]int{"month": 3, "day": 14})
	require.Equal(t, http.StatusOK, first.Code)
	second := postJSON(t, mux, "/api/solve", map[string]int{"month": 3, "day": 14})
	require.Equal(t, http.StatusOK, second.Code)

	var a, b struct {
		Solution struct {
			Board json.RawMessage `json:"board"`
		} `json:"solution"`
	}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
	assert.JSONEq(t, string(a.Solution.Board), string(b.Solution.Board))
}

func TestHintEndpoint(t *testing.T) {
	mux := testMux(t)
	rec := postJSON(t, mux, "/api/hint", map[string]int{"month": 6, "day": 28})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Found bool `json:"found"`
		Hint  struct {
			Piece string `json:"piece"`
		} `json:"hint"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	assert.Equal(t, "A", resp.Hint.Piece)
}

func TestListEndpoint(t *testing.T) {
	mux := testMux(t)
	// solve caches the solution, list should report it
	rec := postJSON(t, mux, "/api/solve", map[string]int{"month": 6, "day": 28})
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/list", nil)
	listRec := httptest.NewRecorder()
	mux.ServeHTTP(listRec, req)
	require.Equal(t, http.StatusOK, listRec.Code)

	var resp struct {
		Solutions []struct {
			Month int `json:"month"`
			Day   int `json:"day"`
		} `json:"solutions"`
	}
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &resp))
	require.Len(t, resp.Solutions, 1)
	assert.Equal(t, 6, resp.Solutions[0].Month)
	assert.Equal(t, 28, resp.Solutions[0].Day)
}
