// Package base fetches public pages as goquery documents, escalating
// through plain HTTP, headless Chrome and Selenium until one of them gets
// past the search host's bot filtering.
package base

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const browserUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DocumentFetcher is what resolvers depend on; tests swap in a stub.
type DocumentFetcher interface {
	FetchDocument(url string, validator func(*goquery.Document) bool) (*goquery.Document, error)
}

// Fetcher escalates through the fetch strategies until the validator
// accepts a document.
type Fetcher struct {
	Client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		Client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				ForceAttemptHTTP2:     false,
				TLSNextProto:          make(map[string]func(string, *tls.Conn) http.RoundTripper),
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
}

// FetchDocument tries each strategy in cost order and returns the first
// document the validator accepts.
func (f *Fetcher) FetchDocument(url string, validator func(*goquery.Document) bool) (*goquery.Document, error) {
	// Strategy 1: plain HTTP (fastest)
	doc, err := f.fetchHTTP(url)
	if err == nil {
		if validator(doc) && !looksBlocked(doc) {
			fmt.Printf("[Fetcher] HTTP success: %s\n", url)
			return doc, nil
		}
		fmt.Printf("[Fetcher] HTTP returned unusable content, trying fallbacks...\n")
	} else {
		fmt.Printf("[Fetcher] HTTP failed: %v\n", err)
	}

	// Strategy 2: headless Chrome
	fmt.Printf("[Fetcher] Trying ChromeDP: %s\n", url)
	doc, err = f.fetchChromeDP(url)
	if err == nil && validator(doc) && !looksBlocked(doc) {
		fmt.Printf("[Fetcher] ChromeDP success\n")
		return doc, nil
	}
	if err != nil {
		fmt.Printf("[Fetcher] ChromeDP failed: %v\n", err)
	}

	// Strategy 3: Selenium (full browser)
	fmt.Printf("[Fetcher] Trying Selenium: %s\n", url)
	doc, err = f.fetchSelenium(url)
	if err == nil && validator(doc) && !looksBlocked(doc) {
		fmt.Printf("[Fetcher] Selenium success\n")
		return doc, nil
	}
	if err != nil {
		fmt.Printf("[Fetcher] Selenium failed: %v\n", err)
	}

	return nil, fmt.Errorf("all fetch strategies failed for %s", url)
}

// looksBlocked flags interstitial bot-check pages so a 200 from the relay
// doesn't get parsed as a real result page.
func looksBlocked(doc *goquery.Document) bool {
	title := strings.ToLower(strings.TrimSpace(doc.Find("title").Text()))
	return strings.Contains(title, "just a moment") ||
		strings.Contains(title, "attention required") ||
		strings.Contains(title, "access denied") ||
		strings.Contains(title, "captcha")
}

func (f *Fetcher) fetchHTTP(url string) (*goquery.Document, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	// Mimic a real browser, the search host blocks obvious bots
	req.Header.Set("User-Agent", browserUA)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	res, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code error: %d %s", res.StatusCode, res.Status)
	}

	return goquery.NewDocumentFromReader(res.Body)
}
