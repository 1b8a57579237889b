package catalog

import (
	"net/url"
	"regexp"
	"strings"
)

const watchBase = "https://www.youtube.com/watch?v="

var (
	embedRe = regexp.MustCompile(`/embed/([a-zA-Z0-9_-]{6,})`)
	vRe     = regexp.MustCompile(`v=([a-zA-Z0-9_-]{6,})`)
	shortRe = regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{6,})`)
)

// YouTubeID extracts a video id from an embed, youtu.be or watch URL. It
// returns "" when none is found.
func YouTubeID(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}
	if strings.Contains(u, "/embed/") {
		if m := embedRe.FindStringSubmatch(u); m != nil {
			return m[1]
		}
		return ""
	}
	parsed, err := url.Parse(u)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		if m := vRe.FindStringSubmatch(u); m != nil {
			return m[1]
		}
		if m := shortRe.FindStringSubmatch(u); m != nil {
			return m[1]
		}
		return ""
	}
	if strings.Contains(parsed.Hostname(), "youtu.be") {
		return strings.TrimSpace(strings.Replace(parsed.Path, "/", "", 1))
	}
	return parsed.Query().Get("v")
}

// WatchURL returns the youtube.com page for a video id.
func WatchURL(id string) string {
	return watchBase + url.QueryEscape(id)
}
