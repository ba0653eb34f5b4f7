// Package content serves the site's localized sections from the message
// catalogs embedded in the binary.
package content

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/language"
)

//go:embed messages/*.json
var catalogFS embed.FS

// ErrUnknownSection is returned for a section name no catalog defines.
var ErrUnknownSection = errors.New("unknown section")

// SectionNames lists the sections in page order.
var SectionNames = []string{"hero", "about", "philosophy", "quotes", "origins", "faq", "contact"}

type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Item is one card, question, quote or milestone. Meta carries the quote
// author or milestone era.
type Item struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Meta  string `json:"meta"`
	Href  string `json:"href"`
}

type Section struct {
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	Paragraphs []string `json:"paragraphs"`
	Items      []Item   `json:"items"`
}

type Header struct {
	Brand   string `json:"brand"`
	Links   []Link `json:"links"`
	Actions []Link `json:"actions"`
}

type Footer struct {
	Text   string `json:"text"`
	Rights string `json:"rights"`
}

type messages struct {
	Header   Header             `json:"header"`
	Sections map[string]Section `json:"sections"`
	Footer   Footer             `json:"footer"`
}

// Catalog holds every embedded locale. English is the fallback for anything
// a translation leaves out.
type Catalog struct {
	tags    []language.Tag
	byTag   map[language.Tag]*messages
	matcher language.Matcher
}

// NewCatalog loads the embedded catalogs.
func NewCatalog() (*Catalog, error) {
	entries, err := catalogFS.ReadDir("messages")
	if err != nil {
		return nil, fmt.Errorf("read catalogs: %w", err)
	}

	c := &Catalog{
		tags:  []language.Tag{language.English},
		byTag: make(map[language.Tag]*messages),
	}
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".json")
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", e.Name(), err)
		}
		raw, err := catalogFS.ReadFile(path.Join("messages", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", e.Name(), err)
		}
		var m messages
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode catalog %s: %w", e.Name(), err)
		}
		c.byTag[tag] = &m
		if tag != language.English {
			c.tags = append(c.tags, tag)
		}
	}
	if _, ok := c.byTag[language.English]; !ok {
		return nil, errors.New("english catalog missing")
	}

	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// Tags returns the available locales, English first.
func (c *Catalog) Tags() []string {
	out := make([]string, 0, len(c.tags))
	for _, t := range c.tags {
		out = append(out, t.String())
	}
	return out
}

// Match picks the closest available locale for one or more BCP 47 tags or
// Accept-Language style strings; anything unrecognised yields English.
func (c *Catalog) Match(prefs ...string) Locale {
	_, idx := language.MatchStrings(c.matcher, prefs...)
	tag := c.tags[idx]
	return Locale{
		tag:      tag,
		msgs:     c.byTag[tag],
		fallback: c.byTag[language.English],
	}
}

// Locale is one resolved language.
type Locale struct {
	tag      language.Tag
	msgs     *messages
	fallback *messages
}

func (l Locale) Tag() string {
	return l.tag.String()
}

// Section returns the named section, falling back to English when this
// locale lacks it.
func (l Locale) Section(name string) (Section, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if s, ok := l.msgs.Sections[name]; ok {
		return s, nil
	}
	if s, ok := l.fallback.Sections[name]; ok {
		return s, nil
	}
	return Section{}, fmt.Errorf("%w: %q", ErrUnknownSection, name)
}

func (l Locale) Header() Header {
	if l.msgs.Header.Brand == "" {
		return l.fallback.Header
	}
	return l.msgs.Header
}

func (l Locale) Footer() Footer {
	if l.msgs.Footer.Text == "" {
		return l.fallback.Footer
	}
	return l.msgs.Footer
}
