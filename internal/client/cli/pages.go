package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) showHome() error {
	h := a.locale.Header()
	a.println(h.Brand)
	labels := make([]string, 0, len(h.Links))
	for _, l := range h.Links {
		labels = append(labels, l.Label)
	}
	a.println(strings.Join(labels, " · "))
	for _, act := range h.Actions {
		a.printf("%s: %s\n", act.Label, act.Href)
	}
	a.println()
	return a.showSection("hero")
}

func (a *App) showSection(name string) error {
	s, err := a.locale.Section(name)
	if err != nil {
		return err
	}

	a.println(s.Title)
	a.println(strings.Repeat("=", len([]rune(s.Title))))
	if s.Subtitle != "" {
		a.println(s.Subtitle)
	}
	for _, item := range s.Items {
		a.println()
		switch {
		case item.Title != "" && item.Meta != "":
			a.printf("%s: %s\n", item.Meta, item.Title)
		case item.Title != "":
			a.println(item.Title)
		}
		if item.Body != "" {
			a.println("  " + item.Body)
		}
		if item.Title == "" && item.Meta != "" {
			a.println("    - " + item.Meta)
		}
		if item.Href != "" {
			a.println("  " + item.Href)
		}
	}
	if len(s.Paragraphs) > 0 {
		a.println()
	}
	for _, p := range s.Paragraphs {
		a.println(p)
	}

	f := a.locale.Footer()
	a.println()
	a.println(fmt.Sprintf("%s %s", f.Text, f.Rights))
	return nil
}

func (a *App) lang(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printf("Language: %s (available: %s)\n", a.locale.Tag(), strings.Join(a.catalog.Tags(), ", "))
		return nil
	}
	a.locale = a.catalog.Match(args[0])
	a.printf("Language: %s\n", a.locale.Tag())
	return nil
}
