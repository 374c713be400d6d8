package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/glamour"
	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheItem struct {
	rendered  string
	expiresAt time.Time
}

// markdownCache memoizes glamour output. Assistant replies are re-rendered on
// every View call otherwise, and glamour is too slow for a render loop.
type markdownCache struct {
	lruCache *lru.Cache[string, cacheItem]
	renderer *glamour.TermRenderer
	ttl      time.Duration
}

func newMarkdownCache() *markdownCache {
	l, err := lru.New[string, cacheItem](200)
	if err != nil {
		log.Fatalf("Failed to create LRU cache: %v", err)
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		log.Printf("markdown renderer unavailable, falling back to plain text: %v", err)
	}
	return &markdownCache{lruCache: l, renderer: r, ttl: 10 * time.Minute}
}

// Render returns the terminal form of md, from cache when fresh.
func (c *markdownCache) Render(md string) string {
	if item, ok := c.lruCache.Get(md); ok {
		if time.Now().Before(item.expiresAt) {
			return item.rendered
		}
		c.lruCache.Remove(md)
	}
	out := md
	if c.renderer != nil {
		if rendered, err := c.renderer.Render(md); err == nil {
			out = rendered
		}
	}
	c.lruCache.Add(md, cacheItem{rendered: out, expiresAt: time.Now().Add(c.ttl)})
	return out
}
