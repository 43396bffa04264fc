package provider

import (
	"net/url"
	"strings"

	"github.com/seenimoa/commentlens/pkg/models"
)

// Target is a classified post URL.
type Target struct {
	Platform models.Platform `json:"platform"`
	ID       string          `json:"id"` // video, post or media id; empty for snapchat
	URL      string          `json:"url"`
}

type hostRule struct {
	fragment string
	platform models.Platform
}

// hostRules is matched in order against the lowercased hostname.
var hostRules = []hostRule{
	{"youtube.com", models.PlatformYouTube},
	{"youtu.be", models.PlatformYouTube},
	{"facebook.com", models.PlatformFacebook},
	{"instagram.com", models.PlatformInstagram},
	{"snapchat.com", models.PlatformSnapchat},
}

// ClassifyURL determines the platform of rawURL and extracts its content id.
func ClassifyURL(rawURL string) (Target, error) {
	raw := strings.TrimSpace(rawURL)
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Target{}, &ErrInvalidURL{URL: raw, Reason: "Invalid URL provided"}
	}

	host := strings.ToLower(u.Hostname())
	platform, ok := platformForHost(host)
	if !ok {
		return Target{}, &ErrUnsupportedPlatform{Host: host}
	}

	t := Target{Platform: platform, URL: raw}
	switch platform {
	case models.PlatformYouTube:
		t.ID = youTubeID(host, u)
		if t.ID == "" {
			return Target{}, &ErrInvalidURL{URL: raw, Reason: "Invalid YouTube URL"}
		}
	case models.PlatformFacebook, models.PlatformInstagram:
		t.ID = lastSegment(u.Path)
		if t.ID == "" {
			return Target{}, &ErrInvalidURL{
				URL:    raw,
				Reason: "Invalid " + platform.DisplayName() + " URL",
			}
		}
	}
	return t, nil
}

func platformForHost(host string) (models.Platform, bool) {
	for _, r := range hostRules {
		if strings.Contains(host, r.fragment) {
			return r.platform, true
		}
	}
	return "", false
}

// youTubeID reads the v query parameter on youtube.com and the first path
// segment on youtu.be.
func youTubeID(host string, u *url.URL) string {
	if strings.Contains(host, "youtu.be") {
		return firstSegment(u.Path)
	}
	return strings.TrimSpace(u.Query().Get("v"))
}

func firstSegment(p string) string {
	for _, seg := range strings.Split(p, "/") {
		if seg != "" {
			return seg
		}
	}
	return ""
}

func lastSegment(p string) string {
	segs := strings.Split(p, "/")
	for i := len(segs) - 1; i >= 0; i-- {
		if segs[i] != "" {
			return segs[i]
		}
	}
	return ""
}
