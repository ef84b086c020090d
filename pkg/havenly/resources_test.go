package havenly

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProperties_NoTokenShortCircuits(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL)

	res := client.Properties(context.Background(), ListOptions{})

	require.False(t, res.Success)
	require.Equal(t, "Invalid api call, No token provided!", res.Message)
	require.Zero(t, hits.Load(), "no network call should be made without a token")
}

func TestProperties_AttachesBearerAndDecodesPage(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/landlord/properties/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
			return
		}
		if r.URL.Query().Get("current_page") != "3" || r.URL.Query().Get("search") != "sea" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data":         []map[string]any{{"id": "p1", "name": "Seaside", "status": "active"}},
			"current_page": 3,
			"per_page":     10,
			"total":        21,
			"total_pages":  3,
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL)
	client.Tokens.Set("tok-1")

	res := client.Properties(context.Background(), ListOptions{CurrentPage: 3, Search: "sea"})

	require.True(t, res.Success)
	require.Len(t, res.Data.Data, 1)
	require.Equal(t, "Seaside", res.Data.Data[0].Name)
	require.Equal(t, 3, res.Data.CurrentPage)
	require.EqualValues(t, 21, res.Data.Total)
}

func TestCallers_ServerErrorBecomesFailedResult(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "property not found"})
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL)
	client.Tokens.Set("tok-1")

	res := client.Property(context.Background(), "missing")

	require.False(t, res.Success)
	require.Equal(t, "property not found", res.Message)
}

func TestCallers_TransportErrorBecomesFailedResult(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // deliberately unreachable

	client := NewClient(srv.URL)
	client.Tokens.Set("tok-1")

	res := client.BrowseRooms(context.Background(), ListOptions{City: "Cebu"})

	require.False(t, res.Success)
	require.NotEmpty(t, res.Message)
}

func TestCreateRoom_PostsPayload(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/landlord/properties/p1/rooms", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		var in CreateRoomInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Number != "101" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"id": "r1", "property_id": "p1", "number": in.Number, "status": "available",
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL)
	client.Tokens.Set("tok-1")

	res := client.CreateRoom(context.Background(), "p1", CreateRoomInput{Number: "101", RentMonthly: 450})

	require.True(t, res.Success)
	require.Equal(t, "r1", res.Data.ID)
	require.Equal(t, "available", res.Data.Status)
}
