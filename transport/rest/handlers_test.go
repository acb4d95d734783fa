package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := prometheus.NewRegistry()
	manager := usecase.NewGameManager(logger, repository.NewMemoryGameRepository(), metrics.New(registry))

	server := httptest.NewServer(NewHandler(logger, manager, registry))
	t.Cleanup(server.Close)

	return server
}

func doRequest(t *testing.T, method, url string) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, body
}

func doGame(t *testing.T, method, url string, wantStatus int) *entity.GameView {
	t.Helper()

	status, body := doRequest(t, method, url)
	require.Equal(t, wantStatus, status, string(body))

	var view entity.GameView
	require.NoError(t, json.Unmarshal(body, &view))

	return &view
}

func TestPing(t *testing.T) {
	server := newTestServer(t)

	status, body := doRequest(t, http.MethodGet, server.URL+"/ping")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pong", string(body))
}

func TestGameFlow(t *testing.T) {
	server := newTestServer(t)

	// Given: a new game
	view := doGame(t, http.MethodPost, server.URL+"/games", http.StatusCreated)
	require.NotEmpty(t, view.ID)
	assert.Equal(t, "Next player: X", view.StatusLine)
	gameURL := server.URL + "/games/" + view.ID

	// When: X wins along the left column
	for _, cell := range []string{"0", "1", "3", "4", "6"} {
		view = doGame(t, http.MethodPost, gameURL+"/squares/"+cell, http.StatusOK)
	}

	// Then: the winner and the winning squares are reported
	assert.Equal(t, "Winner: X", view.StatusLine)
	assert.True(t, view.Squares[0].Winning)
	assert.True(t, view.Squares[3].Winning)
	assert.True(t, view.Squares[6].Winning)
	require.Len(t, view.Moves, 6)
	assert.Equal(t, "Go to move #5 (col: 1, row: 3)", view.Moves[5].Description)

	// When: clicking after the win
	after := doGame(t, http.MethodPost, gameURL+"/squares/8", http.StatusOK)

	// Then: nothing changes
	assert.Equal(t, view, after)

	// When: jumping back to step 2 and playing elsewhere
	view = doGame(t, http.MethodPost, gameURL+"/jump/2", http.StatusOK)
	assert.Equal(t, "Next player: X", view.StatusLine)
	view = doGame(t, http.MethodPost, gameURL+"/squares/8", http.StatusOK)

	// Then: the later history is gone
	require.Len(t, view.Moves, 4)
	assert.Equal(t, 3, view.StepNumber)
	assert.Equal(t, "Next player: O", view.StatusLine)

	// When: toggling the move order
	view = doGame(t, http.MethodPost, gameURL+"/order", http.StatusOK)

	// Then: the newest move comes first
	assert.True(t, view.Descending)
	assert.Equal(t, 3, view.Moves[0].Step)

	// And: the game can be fetched and deleted
	fetched := doGame(t, http.MethodGet, gameURL, http.StatusOK)
	assert.Equal(t, view, fetched)

	status, _ := doRequest(t, http.MethodDelete, gameURL)
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = doRequest(t, http.MethodGet, gameURL)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestErrors(t *testing.T) {
	server := newTestServer(t)
	view := doGame(t, http.MethodPost, server.URL+"/games", http.StatusCreated)
	gameURL := server.URL + "/games/" + view.ID

	tests := []struct {
		name   string
		method string
		url    string
		status int
	}{
		{"unknown game", http.MethodGet, server.URL + "/games/missing", http.StatusNotFound},
		{"turn in unknown game", http.MethodPost, server.URL + "/games/missing/squares/0", http.StatusNotFound},
		{"cell out of range", http.MethodPost, gameURL + "/squares/9", http.StatusBadRequest},
		{"cell not a number", http.MethodPost, gameURL + "/squares/x", http.StatusBadRequest},
		{"step out of range", http.MethodPost, gameURL + "/jump/3", http.StatusBadRequest},
		{"step not a number", http.MethodPost, gameURL + "/jump/x", http.StatusBadRequest},
		{"delete unknown game", http.MethodDelete, server.URL + "/games/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, tt.method, tt.url)

			assert.Equal(t, tt.status, status)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer(t)
	doGame(t, http.MethodPost, server.URL+"/games", http.StatusCreated)

	status, body := doRequest(t, http.MethodGet, server.URL+"/metrics")

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, strings.Contains(string(body), "tictactoe_games_created_total 1"))
}
