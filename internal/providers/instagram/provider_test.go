package instagram

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/seenimoa/commentlens/pkg/models"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFetchMediaComments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/C1/comments":
			if r.URL.Query().Get("fields") != "id,text,timestamp,like_count,reply_count" {
				t.Errorf("fields = %q", r.URL.Query().Get("fields"))
			}
			if r.URL.Query().Get("after") == "" {
				w.Write([]byte(`{"data":[{"id":"a","text":"so good","timestamp":"2024-02-01T00:00:00+0000","like_count":7,"reply_count":2}],
					"paging":{"cursors":{"after":"n1"},"next":"https://graph.instagram.com/next"}}`))
				return
			}
			w.Write([]byte(`{"data":[{"id":"b","text":"ok","reply_count":0}]}`))
		case "/a/replies":
			w.Write([]byte(`{"data":[{"id":"a1","text":"agree"},{"id":"a2","text":"no"}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	p := New(Options{AccessToken: "ig", BaseURL: srv.URL, HTTPClient: srv.Client(), Logger: quietLogger()})
	comments, err := p.Fetch(context.Background(), "C1")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	want := []string{"a", "a1", "a2", "b"}
	if len(comments) != len(want) {
		t.Fatalf("expected %d comments, got %d", len(want), len(comments))
	}
	for i, id := range want {
		if comments[i].ID != id {
			t.Errorf("comments[%d].ID = %s, want %s", i, comments[i].ID, id)
		}
		if comments[i].Platform != models.PlatformInstagram {
			t.Errorf("comments[%d].Platform = %s", i, comments[i].Platform)
		}
	}
	if comments[1].ParentID != "a" || !comments[1].IsReply {
		t.Errorf("reply not linked: %+v", comments[1])
	}
}

func TestFetchWithoutTokenReturnsMock(t *testing.T) {
	p := New(Options{BaseURL: "http://127.0.0.1:0", Logger: quietLogger()})
	comments, err := p.Fetch(context.Background(), "C1")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(comments) != 2 || comments[0].Text != "Amazing! 🔥" || comments[0].Likes != 25 {
		t.Errorf("unexpected mock comments %+v", comments)
	}
}
