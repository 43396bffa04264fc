package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/seenimoa/commentlens/internal/infra"
	"github.com/seenimoa/commentlens/pkg/models"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockProvider implements the Provider interface for testing.
type mockProvider struct {
	BaseProvider
	fetchFn func(ctx context.Context, id string) ([]models.Comment, error)
	mock    []MockComment
}

func newMockProvider(platform models.Platform, credential string) *mockProvider {
	return &mockProvider{
		BaseProvider: NewBaseProvider(Info{
			Name:     platform.String(),
			Platform: platform,
		}, credential, "Failed to fetch "+platform.DisplayName()+" comments.", quietLogger()),
		mock: []MockComment{{Text: "canned", Author: "User1", Likes: 1}},
	}
}

func (m *mockProvider) Fetch(ctx context.Context, id string) ([]models.Comment, error) {
	live := m.fetchFn
	if live == nil {
		live = func(context.Context, string) ([]models.Comment, error) {
			return []models.Comment{{ID: "live-1", Text: "live", Platform: m.Info().Platform}}, nil
		}
	}
	return m.FetchOrMock(ctx, id, live, func() []models.Comment {
		return MockComments(m.Info().Platform, m.mock)
	})
}

// --- Registry Tests ---

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(newMockProvider(models.PlatformYouTube, "")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got, err := reg.Get(models.PlatformYouTube)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Info().Name != "youtube" {
		t.Errorf("expected name youtube, got %s", got.Info().Name)
	}
}

func TestRegistryRegisterRequiresPlatform(t *testing.T) {
	reg := NewRegistry()
	p := &mockProvider{BaseProvider: NewBaseProvider(Info{Name: "nameless"}, "", "", quietLogger())}
	if err := reg.Register(p); err == nil {
		t.Fatal("expected error for provider without platform")
	}
}

func TestRegistryGetNotFound(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Get(models.PlatformFacebook)
	var nf *ErrProviderNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrProviderNotFound, got %T", err)
	}
	if nf.Platform != models.PlatformFacebook {
		t.Errorf("expected platform facebook, got %s", nf.Platform)
	}
}

func TestRegistryListOrder(t *testing.T) {
	reg := NewRegistry()
	_ = reg.Register(newMockProvider(models.PlatformSnapchat, ""))
	_ = reg.Register(newMockProvider(models.PlatformInstagram, ""))
	_ = reg.Register(newMockProvider(models.PlatformYouTube, ""))

	list := reg.List()
	want := []models.Platform{models.PlatformYouTube, models.PlatformInstagram, models.PlatformSnapchat}
	if len(list) != len(want) {
		t.Fatalf("expected %d providers, got %d", len(want), len(list))
	}
	for i, p := range want {
		if list[i].Platform != p {
			t.Errorf("list[%d] = %s, want %s", i, list[i].Platform, p)
		}
	}
}

func TestRegistryFetchDispatch(t *testing.T) {
	reg := NewRegistry()
	yt := newMockProvider(models.PlatformYouTube, "key")
	var gotID string
	yt.fetchFn = func(_ context.Context, id string) ([]models.Comment, error) {
		gotID = id
		return []models.Comment{{ID: "c1"}}, nil
	}
	_ = reg.Register(yt)

	comments, err := reg.Fetch(context.Background(), Target{Platform: models.PlatformYouTube, ID: "abc123"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotID != "abc123" {
		t.Errorf("provider got id %q, want abc123", gotID)
	}
	if len(comments) != 1 {
		t.Errorf("expected 1 comment, got %d", len(comments))
	}
}

func TestRegistryFetchUnregistered(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Fetch(context.Background(), Target{Platform: models.PlatformInstagram, ID: "x"})
	var nf *ErrProviderNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrProviderNotFound, got %v", err)
	}
}

// --- Fallback policy ---

func TestFetchOrMockWithoutCredential(t *testing.T) {
	p := newMockProvider(models.PlatformYouTube, "")
	var called atomic.Bool
	p.fetchFn = func(context.Context, string) ([]models.Comment, error) {
		called.Store(true)
		return nil, errors.New("must not be called")
	}

	comments, err := p.Fetch(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called.Load() {
		t.Error("upstream was called without a credential")
	}
	if len(comments) != 1 || comments[0].Text != "canned" {
		t.Fatalf("expected canned mock comment, got %+v", comments)
	}
}

func TestFetchOrMockCredentialedFailure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "upstream message wins",
			err:     fmt.Errorf("page 1: %w", &infra.UpstreamError{StatusCode: 403, Message: "API key not valid"}),
			wantMsg: "API key not valid",
		},
		{
			name:    "fallback message",
			err:     &infra.UpstreamError{StatusCode: 500},
			wantMsg: "Failed to fetch YouTube comments.",
		},
		{
			name:    "transport error",
			err:     errors.New("connection refused"),
			wantMsg: "Failed to fetch YouTube comments.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newMockProvider(models.PlatformYouTube, "key")
			p.fetchFn = func(context.Context, string) ([]models.Comment, error) {
				return nil, tt.err
			}

			_, err := p.Fetch(context.Background(), "abc")
			var ff *ErrFetchFailed
			if !errors.As(err, &ff) {
				t.Fatalf("expected ErrFetchFailed, got %T: %v", err, err)
			}
			if ff.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", ff.Error(), tt.wantMsg)
			}
			if !errors.Is(err, tt.err) {
				t.Error("cause not reachable through Unwrap")
			}
		})
	}
}

func TestMockComments(t *testing.T) {
	entries := []MockComment{
		{Text: "one", Author: "User1", Likes: 10},
		{Text: "two", Author: "User2", Likes: 5},
	}
	got := MockComments(models.PlatformFacebook, entries)
	if len(got) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(got))
	}
	seen := map[string]bool{}
	for i, c := range got {
		if c.ID == "" || seen[c.ID] {
			t.Errorf("comment %d has empty or duplicate id %q", i, c.ID)
		}
		seen[c.ID] = true
		if c.Platform != models.PlatformFacebook {
			t.Errorf("comment %d platform = %s", i, c.Platform)
		}
		if c.IsReply || c.ParentID != "" {
			t.Errorf("comment %d should be top-level", i)
		}
		if _, err := time.Parse(time.RFC3339, c.Timestamp); err != nil {
			t.Errorf("comment %d timestamp %q: %v", i, c.Timestamp, err)
		}
		if c.Text != entries[i].Text || c.Likes != entries[i].Likes {
			t.Errorf("comment %d = %+v, want %+v", i, c, entries[i])
		}
	}
}

// --- Errors ---

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&ErrInvalidURL{}, "Invalid URL provided"},
		{&ErrInvalidURL{Reason: "Invalid YouTube URL"}, "Invalid YouTube URL"},
		{&ErrUnsupportedPlatform{}, "Unsupported platform"},
		{&ErrUnsupportedPlatform{Host: "twitter.com"}, "Unsupported platform: twitter.com"},
		{&ErrUnsupportedFeature{Platform: models.PlatformSnapchat}, "Snapchat integration is not yet supported"},
		{&ErrFetchFailed{Platform: models.PlatformInstagram}, "failed to fetch Instagram comments"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("%T.Error() = %q, want %q", tt.err, got, tt.want)
		}
	}
}
