package client

import (
	"net/url"
	"regexp"
	"strings"
)

// schemePrefix matches an RFC 3986 scheme at the start of a link only, so a
// URL inside the query or fragment does not count.
var schemePrefix = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)

// DisplayDomain derives the host used for logos from a project link. Links
// without a scheme are read as https. A leading "www." is dropped.
//
// Stored links are not validated, so a link that does not parse to a host
// yields the trimmed, lowercased link and ok=false; callers should then skip
// anything that needs a real domain.
func DisplayDomain(link string) (domain string, ok bool) {
	raw := strings.TrimSpace(link)
	if raw == "" {
		return "", false
	}

	u, err := url.Parse(LinkURL(raw))
	if err != nil || u.Hostname() == "" {
		return strings.ToLower(raw), false
	}

	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www."), true
}

// LogoURL is the primary logo source for a domain.
func LogoURL(domain string) string {
	return "https://logo.clearbit.com/" + domain
}

// FallbackLogoURL is used when LogoURL fails to load.
func FallbackLogoURL(domain string) string {
	return "https://www.google.com/s2/favicons?domain=" + url.QueryEscape(domain) + "&sz=64"
}

// LinkURL is the link as an absolute URL suitable for opening.
func LinkURL(link string) string {
	link = strings.TrimSpace(link)
	if schemePrefix.MatchString(link) {
		return link
	}
	return "https://" + link
}
