package ui

import (
	"strings"
	"testing"

	"tabi/internal/itinerary"
	"tabi/internal/model"
)

func TestStyleForCategoryFallback(t *testing.T) {
	for _, c := range []model.Category{"", "shopping", "TRANSPORT"} {
		if got := styleForCategory(c); got != fallbackCategory {
			t.Errorf("styleForCategory(%q) = %+v, want fallback", c, got)
		}
	}
}

func TestEveryDataCategoryHasAStyle(t *testing.T) {
	for _, d := range itinerary.Default().Days() {
		for _, a := range d.Activities {
			if styleForCategory(a.Category) == fallbackCategory {
				t.Errorf("day %d %q uses unstyled category %q", d.ID, a.Description, a.Category)
			}
		}
	}
}

func TestHelpLegendListsEveryCategory(t *testing.T) {
	if len(legendOrder) != len(categoryStyles) {
		t.Fatalf("legend has %d categories, table has %d", len(legendOrder), len(categoryStyles))
	}
	help := RenderFullHelp(120, 60)
	for _, c := range legendOrder {
		s, ok := categoryStyles[c]
		if !ok {
			t.Errorf("legend category %q has no style", c)
			continue
		}
		if !strings.Contains(help, s.Icon+" "+s.Label) {
			t.Errorf("help is missing %q", s.Icon+" "+s.Label)
		}
	}
}

func TestRenderBarClamps(t *testing.T) {
	for _, pct := range []int{-10, 0, 38, 100, 250} {
		if got := len([]rune(stripBar(renderBar(pct, ColorAccent)))); got != barWidth {
			t.Errorf("renderBar(%d) has %d cells, want %d", pct, got, barWidth)
		}
	}
}

// stripBar keeps only the bar glyphs of a rendered bar.
func stripBar(s string) string {
	var out []rune
	for _, r := range s {
		if r == '█' || r == '░' {
			out = append(out, r)
		}
	}
	return string(out)
}
