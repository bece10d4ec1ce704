package portal

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/legisclaro/legisclaro/internal/citations"
)

// newPortalServer serves a search page pointing at a statute page on the
// same test server.
func newPortalServer(t *testing.T, statuteBody string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/legislacao-1/pesquisa", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><body>
			<div class="item">
				<a href="%s/lei">Ver lei</a>
				<h3>Lei 8.078/90 - Código de Defesa do Consumidor</h3>
			</div>
		</body></html>`, srv.URL)
	})
	mux.HandleFunc("/lei", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><head><style>.x{}</style></head><body><p>%s</p></body></html>`, statuteBody)
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSearchParsesFirstResult(t *testing.T) {
	srv := newPortalServer(t, "Art. 6º São direitos básicos do consumidor")
	client := NewClient(srv.URL)

	ref, err := client.Search(context.Background(), "Lei 8.078/90")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if ref.Title != "Lei 8.078/90 - Código de Defesa do Consumidor" {
		t.Errorf("unexpected title %q", ref.Title)
	}
	if !strings.HasSuffix(ref.Link, "/lei") {
		t.Errorf("unexpected link %q", ref.Link)
	}
}

func TestFetchResolvesContent(t *testing.T) {
	srv := newPortalServer(t, "Art. 6º São direitos básicos do consumidor")
	client := NewClient(srv.URL)

	content := client.Fetch(context.Background(), citations.ConsumerCodeID)
	if content == nil {
		t.Fatal("expected content, got nil")
	}
	if content.ID != citations.ConsumerCodeID {
		t.Errorf("unexpected id %q", content.ID)
	}
	if !strings.Contains(content.Content, "direitos básicos do consumidor") {
		t.Errorf("statute text missing from content: %q", content.Content)
	}
}

func TestFetchTruncatesContent(t *testing.T) {
	srv := newPortalServer(t, strings.Repeat("a", 3*maxContentLen))
	client := NewClient(srv.URL)

	content := client.Fetch(context.Background(), citations.CivilCodeID)
	if content == nil {
		t.Fatal("expected content, got nil")
	}
	if len(content.Content) > maxContentLen {
		t.Errorf("content length %d exceeds %d", len(content.Content), maxContentLen)
	}
}

func TestFetchTruncatesOnRuneBoundary(t *testing.T) {
	srv := newPortalServer(t, "x"+strings.Repeat("ç", 2*maxContentLen))
	client := NewClient(srv.URL)

	content := client.Fetch(context.Background(), citations.CivilCodeID)
	if content == nil {
		t.Fatal("expected content, got nil")
	}
	if !utf8.ValidString(content.Content) {
		t.Error("truncated content is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(content.Content); n != maxContentLen {
		t.Errorf("rune count = %d, want %d", n, maxContentLen)
	}
}

func TestSearchMissingStructure(t *testing.T) {
	tests := []struct {
		name string
		page string
	}{
		{"no result container", `<html><body><p>nada encontrado</p></body></html>`},
		{"no link", `<html><body><div class="item"><h3>Lei</h3></div></body></html>`},
		{"no heading", `<html><body><div class="item"><a href="/lei">x</a></div></body></html>`},
		{"empty href", `<html><body><div class="item"><a>x</a><h3>Lei</h3></div></body></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.page)
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).Search(context.Background(), "Lei 8.078/90")
			if err == nil {
				t.Fatal("expected error for malformed result page")
			}
		})
	}
}

func TestFetchNeverErrors(t *testing.T) {
	t.Run("server down", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		if content := NewClient(srv.URL).Fetch(context.Background(), "Lei 8.078/90"); content != nil {
			t.Errorf("expected nil on network failure, got %+v", content)
		}
	})

	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "interno", http.StatusInternalServerError)
		}))
		defer srv.Close()

		if content := NewClient(srv.URL).Fetch(context.Background(), "Lei 8.078/90"); content != nil {
			t.Errorf("expected nil on HTTP 500, got %+v", content)
		}
	})

	t.Run("missing structure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html><body>sem resultados</body></html>`)
		}))
		defer srv.Close()

		if content := NewClient(srv.URL).Fetch(context.Background(), "Lei 8.078/90"); content != nil {
			t.Errorf("expected nil on missing structure, got %+v", content)
		}
	})
}

func TestNodeTextSkipsScriptAndStyle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><script>var x = 1;</script></head><body><p>Art. 1º</p></body></html>`)
	}))
	defer srv.Close()

	text, err := NewClient(srv.URL).FetchText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchText: %v", err)
	}
	if strings.Contains(text, "var x") {
		t.Errorf("script body leaked into text: %q", text)
	}
	if !strings.Contains(text, "Art. 1º") {
		t.Errorf("visible text missing: %q", text)
	}
}
