package article

import (
	"bytes"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/seenimoa/newsnugget/pkg/models"
	"github.com/seenimoa/newsnugget/pkg/utils"
)

// noise is removed before looking for article text.
const noise = "script, style, noscript, iframe, svg, nav, header, footer, aside, form, " +
	"button, [role=navigation], [aria-hidden=true], .advertisement, .ad, .share, .related"

// Parse extracts article metadata and body text from an HTML page.
// pageURL resolves relative image links and supplies the website name.
// It returns a *ParseError when the page yields no article text.
func Parse(pageURL string, html []byte) (*models.Article, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, &ParseError{URL: pageURL, Reason: "read html", Err: err}
	}

	a := &models.Article{
		URL:      pageURL,
		Website:  utils.WebsiteName(pageURL),
		Title:    extractTitle(doc),
		Authors:  extractAuthors(doc),
		TopImage: extractImage(doc, pageURL),
	}
	if t, ok := extractPublishDate(doc, pageURL); ok {
		a.PublishedAt = &t
	}

	doc.Find(noise).Remove()
	a.Text = extractText(doc)
	if a.Text == "" {
		return nil, &ParseError{URL: pageURL, Reason: "no article text found"}
	}
	return a, nil
}

// ------------------------------------------------------------------
// Metadata
// ------------------------------------------------------------------

func metaContent(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if v := strings.TrimSpace(doc.Find(sel).First().AttrOr("content", "")); v != "" {
			return v
		}
	}
	return ""
}

func extractTitle(doc *goquery.Document) string {
	if t := metaContent(doc, `meta[property="og:title"]`, `meta[name="twitter:title"]`); t != "" {
		return t
	}
	if t := collapse(doc.Find("title").First().Text()); t != "" {
		return t
	}
	return collapse(doc.Find("h1").First().Text())
}

func extractAuthors(doc *goquery.Document) []string {
	var authors []string
	seen := make(map[string]bool)
	add := func(name string) {
		name = cleanAuthor(name)
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			return
		}
		seen[key] = true
		authors = append(authors, name)
	}

	doc.Find(`meta[name="author"], meta[property="article:author"], meta[name="byl"]`).Each(func(_ int, s *goquery.Selection) {
		content := s.AttrOr("content", "")
		if strings.HasPrefix(content, "http") {
			return // profile URL, not a name
		}
		for _, part := range splitAuthors(content) {
			add(part)
		}
	})
	doc.Find(`[rel="author"], [itemprop="author"], .byline-author, .author-name`).Each(func(_ int, s *goquery.Selection) {
		if name := s.Find(`[itemprop="name"]`).First(); name.Length() > 0 {
			add(name.Text())
			return
		}
		add(s.Text())
	})
	return authors
}

// splitAuthors splits "Ann Lee and Bo Chan" or "Ann Lee, Bo Chan".
func splitAuthors(s string) []string {
	s = strings.ReplaceAll(s, " and ", ",")
	return strings.Split(s, ",")
}

func cleanAuthor(name string) string {
	name = collapse(name)
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "by ") {
		name = strings.TrimSpace(name[3:])
	}
	// Bylines longer than a few words are usually a sentence, not a name.
	if name == "" || len(strings.Fields(name)) > 5 {
		return ""
	}
	return name
}

func extractPublishDate(doc *goquery.Document, pageURL string) (time.Time, bool) {
	candidates := []string{
		metaContent(doc,
			`meta[property="article:published_time"]`,
			`meta[name="pubdate"]`,
			`meta[name="publishdate"]`,
			`meta[itemprop="datePublished"]`,
			`meta[name="date"]`,
			`meta[name="DC.date.issued"]`,
		),
		doc.Find("time[datetime]").First().AttrOr("datetime", ""),
		doc.Find(`[itemprop="datePublished"]`).First().AttrOr("datetime", ""),
	}
	for _, c := range candidates {
		if t, ok := utils.ParseDate(c); ok {
			return t, true
		}
	}
	return utils.DateFromURL(pageURL)
}

func extractImage(doc *goquery.Document, pageURL string) string {
	src := metaContent(doc, `meta[property="og:image"]`, `meta[name="twitter:image"]`)
	if src == "" {
		src = doc.Find(`link[rel="image_src"]`).First().AttrOr("href", "")
	}
	if src == "" {
		src = doc.Find("article img[src]").First().AttrOr("src", "")
	}
	if src == "" {
		return ""
	}
	return resolve(pageURL, src)
}

func resolve(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

// ------------------------------------------------------------------
// Body text
// ------------------------------------------------------------------

// extractText returns the paragraphs of the most likely article container,
// separated by blank lines.
func extractText(doc *goquery.Document) string {
	container := bestContainer(doc)
	if container == nil {
		return ""
	}

	var paragraphs []string
	container.Find("p").Each(func(_ int, p *goquery.Selection) {
		if t := collapse(p.Text()); t != "" {
			paragraphs = append(paragraphs, t)
		}
	})
	if len(paragraphs) == 0 {
		if t := collapse(container.Text()); t != "" {
			paragraphs = append(paragraphs, t)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

// bestContainer prefers semantic article markup and otherwise picks the
// element whose direct <p> children hold the most text.
func bestContainer(doc *goquery.Document) *goquery.Selection {
	for _, sel := range []string{"article", `[itemprop="articleBody"]`, "main", `[role="main"]`} {
		s := doc.Find(sel)
		if s.Length() == 0 {
			continue
		}
		best, bestLen := s.First(), 0
		s.Each(func(_ int, c *goquery.Selection) {
			if n := paragraphTextLen(c.Find("p")); n > bestLen {
				best, bestLen = c, n
			}
		})
		if bestLen > 0 {
			return best
		}
	}

	scores := make(map[*html.Node]int)
	var order []*html.Node
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		parent := p.Parent()
		if len(parent.Nodes) == 0 {
			return
		}
		n := parent.Nodes[0]
		if _, ok := scores[n]; !ok {
			order = append(order, n)
		}
		scores[n] += len(collapse(p.Text()))
	})

	var best *html.Node
	bestScore := 0
	for _, n := range order {
		if scores[n] > bestScore {
			best, bestScore = n, scores[n]
		}
	}
	if best != nil {
		return doc.FindNodes(best)
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		return nil
	}
	return body
}

func paragraphTextLen(ps *goquery.Selection) int {
	n := 0
	ps.Each(func(_ int, p *goquery.Selection) { n += len(collapse(p.Text())) })
	return n
}

// collapse trims s and folds internal whitespace runs to single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
