// Package namemc resolves skin variants by first scraping a NameMC search
// for the canonical owner of the queried name, then deriving a fixed set of
// decorated variants from that one name.
package namemc

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/raushankrgupta/skin-finder/config"
	"github.com/raushankrgupta/skin-finder/models"
	"github.com/raushankrgupta/skin-finder/narration"
	"github.com/raushankrgupta/skin-finder/resolver/base"
	"github.com/raushankrgupta/skin-finder/resolver/candidates"
)

// Resolver is the search-assisted strategy.
type Resolver struct {
	Fetcher base.DocumentFetcher
	Cache   *LookupCache
}

func New() *Resolver {
	return &Resolver{
		Fetcher: base.NewFetcher(),
		Cache:   NewLookupCache(config.RedisAddr),
	}
}

func (r *Resolver) Name() string {
	return "namemc"
}

// Resolve looks up one canonical owner name (best effort, base name on any
// failure) and derives exactly three variants from it. The single upstream
// identifier is trusted, so unlike the local strategy there is no dedup
// pass here.
func (r *Resolver) Resolve(ctx context.Context, query string, sink narration.Sink) []models.SkinData {
	baseName := candidates.BaseName(query)

	name := r.lookupOwner(ctx, query, sink)
	if name == "" {
		sink.Line("Using direct name match")
		name = baseName
	}

	variants := []string{name, name + "_", "Itz" + name}
	out := make([]models.SkinData, 0, len(variants))
	for i, v := range variants {
		skin := models.SkinFor(v)
		skin.Title = fmt.Sprintf("Variant %d", i+1)
		out = append(out, skin)
		sink.Line(fmt.Sprintf("Derived %s from %s", skin.Title, v))
	}
	return out
}

// lookupOwner scrapes the search page for the first result's profile link
// and extracts the owner name from it. Every failure mode (network, bad
// status, missing markup) comes back as "", never as an error.
func (r *Resolver) lookupOwner(ctx context.Context, query string, sink narration.Sink) string {
	if name, ok := r.Cache.Get(ctx, query); ok {
		sink.Line(fmt.Sprintf("Archive owner cached: %s", name))
		return name
	}

	sink.Line("Searching public skin archive...")

	target := config.SearchBase + url.QueryEscape(strings.TrimSpace(query))
	if config.CorsProxyURL != "" {
		target = config.CorsProxyURL + url.QueryEscape(target)
	}

	doc, err := r.Fetcher.FetchDocument(target, func(doc *goquery.Document) bool {
		return doc.Find("body").Length() > 0
	})
	if err != nil {
		log.Printf("[namemc] Archive search failed: %v", err)
		sink.Line("Archive search unavailable")
		return ""
	}

	name := ownerFromDocument(doc)
	if name == "" {
		sink.Line("No archive match found")
		return ""
	}

	r.Cache.Set(ctx, query, name)
	sink.Line(fmt.Sprintf("Resolved archive owner: %s", name))
	return name
}

// ownerFromDocument pulls the owner name out of the first search result's
// byline link. Selector fallbacks, same scheme as any scrape target that
// reshuffles its markup.
func ownerFromDocument(doc *goquery.Document) string {
	name := ""
	doc.Find("a[href^='/profile/']").EachWithBreak(func(i int, s *goquery.Selection) bool {
		name = ownerFromHref(s.AttrOr("href", ""))
		return name == ""
	})
	if name == "" {
		// Absolute links when the page came through the relay
		doc.Find("a[href*='/profile/']").EachWithBreak(func(i int, s *goquery.Selection) bool {
			name = ownerFromHref(s.AttrOr("href", ""))
			return name == ""
		})
	}
	return name
}

// ownerFromHref extracts the name from "/profile/Notch.1" style hrefs.
func ownerFromHref(href string) string {
	idx := strings.Index(href, "/profile/")
	if idx < 0 {
		return ""
	}
	rest := href[idx+len("/profile/"):]
	rest, _, _ = strings.Cut(rest, "?")
	rest, _, _ = strings.Cut(rest, "#")
	// Disambiguation suffix (".1", ".2") is not part of the name
	rest, _, _ = strings.Cut(rest, ".")
	rest = strings.Trim(rest, "/")
	if unescaped, err := url.PathUnescape(rest); err == nil {
		rest = unescaped
	}
	return rest
}
