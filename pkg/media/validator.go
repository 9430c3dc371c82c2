// Package media decides whether embedded media is safe to render and
// which asset represents a content item.
//
// Everything here is a pure function over already-loaded metadata: no
// network calls, no file I/O. Validation is total — every input maps
// to a success value or a typed *Error.
package media

import (
	"net/url"
	"regexp"
	"strings"
)

// EmbedHost is the canonical host used for normalized video embeds.
const EmbedHost = "www.youtube-nocookie.com"

// trustedVideoHosts is the fixed allow-list of video hosting domains.
// Subdomains of these domains are also trusted.
var trustedVideoHosts = []string{
	"youtube.com",
	"youtu.be",
	"youtube-nocookie.com",
}

// videoIDRe is the structural shape of a video identifier. It rejects
// malformed or truncated IDs early; it is not a liveness check.
var videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Embed is a validated, renderable video embed.
type Embed struct {
	URL string `json:"embedUrl"`
}

// IsTrustedVideoHost reports whether hostname is one of the allowed
// video hosting domains or a subdomain of one. Matching is
// case-insensitive. A domain only counts as a subdomain match when it
// ends in "." + allowed domain and every preceding label is non-empty,
// so "notyoutube.com" and "evil.com..youtube.com" never pass.
func IsTrustedVideoHost(hostname string) bool {
	host := strings.ToLower(strings.TrimSuffix(hostname, "."))
	if host == "" {
		return false
	}

	for _, domain := range trustedVideoHosts {
		if host == domain {
			return true
		}
		suffix := "." + domain
		if !strings.HasSuffix(host, suffix) {
			continue
		}
		labels := strings.Split(strings.TrimSuffix(host, suffix), ".")
		valid := true
		for _, label := range labels {
			if label == "" {
				valid = false
				break
			}
		}
		if valid {
			return true
		}
	}
	return false
}

// ExtractVideoID pulls the canonical 11-character video identifier out
// of an already-parsed URL. It understands the short-link form
// (youtu.be/ID), the long form (?v=ID) and the path-embedded forms
// (/embed/ID, /shorts/ID, /v/ID). Returns "" when no candidate of the
// right shape is found.
func ExtractVideoID(u *url.URL) string {
	host := strings.ToLower(u.Hostname())

	if host == "youtu.be" || strings.HasSuffix(host, ".youtu.be") {
		id := strings.SplitN(strings.Trim(u.Path, "/"), "/", 2)[0]
		if videoIDRe.MatchString(id) {
			return id
		}
		return ""
	}

	if v := u.Query().Get("v"); videoIDRe.MatchString(v) {
		return v
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, seg := range segments {
		switch seg {
		case "embed", "shorts", "v":
			if i+1 < len(segments) && videoIDRe.MatchString(segments[i+1]) {
				return segments[i+1]
			}
		}
	}
	return ""
}

// ValidateVideoURL turns a raw URL into a normalized embed, or a typed
// error explaining why it cannot be rendered. Iframes are only ever
// built for hosts on the allow-list; everything else is rejected
// before an ID is even looked for.
func ValidateVideoURL(raw string) (Embed, *Error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return Embed{}, &Error{
			Code:    CodeInvalidURL,
			Message: "video URL is not a valid absolute URL",
		}
	}

	if !IsTrustedVideoHost(u.Hostname()) {
		return Embed{}, &Error{
			Code:    CodeUnsupportedHost,
			Message: "video host is not on the trusted allow-list",
		}
	}

	id := ExtractVideoID(u)
	if id == "" {
		return Embed{}, &Error{
			Code:    CodeInvalidID,
			Message: "no valid video ID found in URL",
		}
	}

	return Embed{URL: "https://" + EmbedHost + "/embed/" + id}, nil
}
