package ui

import (
	"encoding/xml"
	"strings"
	"time"

	"lantern-site/internal/content"
)

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapXML renders the sitemap for the site's public pages.
func SitemapXML(site *content.Site, now time.Time) ([]byte, error) {
	base := strings.TrimRight(site.BaseURL, "/")
	set := sitemapSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: base + "/", LastMod: now.Format("2006-01-02")},
		},
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}

	return append([]byte(xml.Header), out...), nil
}

// RobotsTxt renders the crawler policy, pointing at the sitemap.
func RobotsTxt(site *content.Site) string {
	base := strings.TrimRight(site.BaseURL, "/")
	return "User-agent: *\nAllow: /\n\nSitemap: " + base + "/sitemap.xml\n"
}
