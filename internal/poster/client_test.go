package poster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(url string) *Client {
	return NewClient(url, 2*time.Second, 2*time.Second, 10)
}

func TestSearchDeduplicatesAcrossGroups(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "Spring Fever 2025" {
			t.Errorf("Unexpected query parameter: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"jisshu-2": ["https://img/a.jpg", "https://img/b.jpg"],
			"jisshu-3": ["https://img/b.jpg", "https://img/c.jpg"],
			"jisshu-4": ["https://img/a.jpg", "https://img/d.jpg"]
		}`))
	}))
	defer srv.Close()

	posters := newTestClient(srv.URL).Search(context.Background(), "Spring Fever", 2025)

	want := []string{"https://img/a.jpg", "https://img/b.jpg", "https://img/c.jpg", "https://img/d.jpg"}
	if len(posters) != len(want) {
		t.Fatalf("Expected %d posters, got %d: %v", len(want), len(posters), posters)
	}
	for i, u := range want {
		if posters[i] != u {
			t.Errorf("Poster %d = %q, want %q", i, posters[i], u)
		}
	}
}

func TestSearchCapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jisshu-2": [
			"u1","u2","u3","u4","u5","u6","u7","u8","u9","u10","u11","u12"
		]}`))
	}))
	defer srv.Close()

	posters := newTestClient(srv.URL).Search(context.Background(), "anything", 0)
	if len(posters) != 10 {
		t.Errorf("Expected 10 posters after truncation, got %d", len(posters))
	}
}

func TestSearchAbsentGroupsTreatedAsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jisshu-3": ["only.jpg"]}`))
	}))
	defer srv.Close()

	posters := newTestClient(srv.URL).Search(context.Background(), "anything", 0)
	if len(posters) != 1 || posters[0] != "only.jpg" {
		t.Errorf("Expected single poster from jisshu-3, got %v", posters)
	}
}

func TestSearchServerErrorReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if posters := newTestClient(srv.URL).Search(context.Background(), "anything", 0); posters != nil {
		t.Errorf("Expected empty result on HTTP 500, got %v", posters)
	}
}

func TestSearchMalformedBodyReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	if posters := newTestClient(srv.URL).Search(context.Background(), "anything", 0); posters != nil {
		t.Errorf("Expected empty result on malformed body, got %v", posters)
	}
}

func TestSearchTimeoutReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond, 50*time.Millisecond, 10)
	if posters := c.Search(context.Background(), "anything", 0); posters != nil {
		t.Errorf("Expected empty result on timeout, got %v", posters)
	}
}

func TestFetchImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("image-bytes"))
	}))
	defer srv.Close()

	data, err := newTestClient(srv.URL).FetchImage(context.Background(), srv.URL+"/poster.jpg")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("Unexpected image payload: %q", data)
	}
}

func TestFetchImageErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).FetchImage(context.Background(), srv.URL+"/missing.jpg"); err == nil {
		t.Error("Expected error on HTTP 404")
	}
}

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		title string
		year  int
		want  string
	}{
		{"Spring Fever", 2025, "Spring Fever 2025"},
		{"Haq 2025 720p NF WEBRip", 0, "Haq 2025 720p NF WEBRip"},
		{"L'amour, l'après-midi", 1972, "L amour l apr s midi 1972"},
		{"  spaced   out  ", 0, "spaced out"},
	}

	for _, tt := range tests {
		if got := BuildQuery(tt.title, tt.year); got != tt.want {
			t.Errorf("BuildQuery(%q, %d) = %q, want %q", tt.title, tt.year, got, tt.want)
		}
	}
}
