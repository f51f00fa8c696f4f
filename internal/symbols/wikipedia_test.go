package symbols

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const samplePage = `<html><body>
<table class="wikitable sortable">
<tr><th>Symbol</th><th>Security</th></tr>
<tr><td>MMM
</td><td>3M</td></tr>
<tr><td> aos </td><td>A. O. Smith</td></tr>
<tr><td>BRK.B</td><td>Berkshire Hathaway</td></tr>
<tr><td>BRK.B</td><td>duplicate row</td></tr>
<tr><td>BF.B</td><td>Brown-Forman</td></tr>
</table>
</body></html>`

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"MMM", "MMM"},
		{"  aos  ", "AOS"},
		{"BRK.B", "BRK-B"},
		{"BF.B\nfootnote", "BF-B"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDedupe_PreservesOrder(t *testing.T) {
	got := Dedupe([]string{"B", "A", "B", "", "C", "A"})
	want := []string{"B", "A", "C"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestWikipediaProvider_CurrentConstituents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	p := NewWikipediaProvider(srv.URL)
	roster, err := p.CurrentConstituents(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"MMM", "AOS", "BRK-B", "BF-B"}
	if len(roster) != len(want) {
		t.Fatalf("roster = %v, want %v", roster, want)
	}
	for i := range want {
		if roster[i] != want[i] {
			t.Fatalf("roster = %v, want %v", roster, want)
		}
	}
}

func TestWikipediaProvider_Failures(t *testing.T) {
	cases := []struct {
		name string
		body string
		code int
	}{
		{name: "http error", body: "nope", code: http.StatusInternalServerError},
		{name: "no table", body: "<html><body><p>empty</p></body></html>", code: http.StatusOK},
		{name: "empty table", body: `<table class="wikitable sortable"><tr><th>Symbol</th></tr></table>`, code: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.code)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			roster, err := NewWikipediaProvider(srv.URL).CurrentConstituents(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if roster != nil {
				t.Fatalf("failure must yield nil roster, got %v", roster)
			}
		})
	}
}
