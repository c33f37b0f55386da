// Package crawl: link categorization and normalization rules.
// Provides helpers to classify, normalize, and filter URLs found on a site.
package crawl

import (
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/gaurav-prasanna/profilestrap/core"
)

// imageExtensions are file extensions treated as image links.
var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".tiff": true,
}

// socialPlatforms are hosts excluded from organization link lists.
var socialPlatforms = []string{
	"facebook.com", "instagram.com", "twitter.com", "x.com",
	"linkedin.com", "youtube.com", "tiktok.com", "snapchat.com",
}

// IsImage checks if a URL's path ends with a known image extension.
func IsImage(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(parsed.Path))
	return imageExtensions[ext]
}

// Categorize partitions links into internal, external, image, and other
// buckets relative to baseURL's host. Image extensions take priority over the
// host comparison. Links with a non-HTTP scheme (mailto:, tel:, javascript:)
// or that fail to parse land in Other.
func Categorize(links []string, baseURL string) *core.CategorizedLinkSet {
	baseHost := ""
	if base, err := url.Parse(baseURL); err == nil {
		baseHost = base.Host
	}

	set := &core.CategorizedLinkSet{}
	for _, link := range links {
		parsed, err := url.Parse(link)
		switch {
		case err != nil:
			set.Other = append(set.Other, link)
		case imageExtensions[strings.ToLower(path.Ext(parsed.Path))]:
			set.Images = append(set.Images, link)
		case !isWebScheme(parsed.Scheme):
			set.Other = append(set.Other, link)
		case parsed.Host == baseHost || parsed.Host == "":
			set.Internal = append(set.Internal, link)
		default:
			set.External = append(set.External, link)
		}
	}
	return set
}

// InternalPaths reduces internal links to their paths, trimmed of slashes.
// Empty paths are dropped and duplicates collapse to their first occurrence.
func InternalPaths(links []string, baseURL string) []string {
	paths := NewOrderedSet()
	for _, link := range Categorize(links, baseURL).Internal {
		parsed, err := url.Parse(link)
		if err != nil {
			continue
		}
		if p := strings.Trim(parsed.Path, "/"); p != "" {
			paths.Add(p)
		}
	}
	return paths.Items()
}

// NormalizeURL reduces a link to scheme://host/path, dropping query and
// fragment. Opaque links (mailto:, tel:) keep scheme:opaque. Unparseable
// input is returned unchanged.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if parsed.Opaque != "" {
		return parsed.Scheme + ":" + parsed.Opaque
	}
	return parsed.Scheme + "://" + parsed.Host + parsed.EscapedPath()
}

// CleanLinks normalizes, deduplicates, and sorts links.
func CleanLinks(links []string) []string {
	set := NewOrderedSet()
	for _, link := range links {
		set.Add(NormalizeURL(link))
	}
	out := set.Items()
	sort.Strings(out)
	return out
}

// OrganizationLinks keeps links mentioning org (case-insensitive), skipping
// social media profiles, and returns them normalized and sorted.
func OrganizationLinks(links []string, org string) []string {
	org = strings.ToLower(strings.TrimSpace(org))
	if org == "" {
		return nil
	}

	var kept []string
	for _, link := range links {
		lower := strings.ToLower(link)
		if !strings.Contains(lower, org) || isSocial(lower) {
			continue
		}
		kept = append(kept, link)
	}
	return CleanLinks(kept)
}

func isSocial(link string) bool {
	for _, p := range socialPlatforms {
		if strings.Contains(link, p) {
			return true
		}
	}
	return false
}

func isWebScheme(scheme string) bool {
	switch strings.ToLower(scheme) {
	case "", "http", "https":
		return true
	}
	return false
}
