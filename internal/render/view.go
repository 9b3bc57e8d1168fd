// Package render turns search results into display-ready card views.
package render

import (
	"html/template"
	"strings"
	"time"

	"travelrec/internal/models"
	"travelrec/internal/search"
)

// Fallbacks and user-facing messages.
const (
	PlaceholderName  = "Destination"
	PlaceholderImage = "/static/images/placeholder.jpg"
	FallbackImage    = "https://placehold.co/200x160?text=Photo"

	HintMessage      = `Try searching for "beach", "temple", or "country".`
	NoResultsMessage = `No recommendations found. Try "beach", "temple", or "country".`
)

// Card is the view-model of one destination. Fields hold raw values;
// escaping happens at the rendering boundary.
type Card struct {
	Name        string
	Description string
	ImageURL    string
}

// NewCard applies display defaults to a destination.
func NewCard(d models.Destination) Card {
	card := Card{
		Name:        d.Name,
		Description: d.Description,
		ImageURL:    d.ImageURL,
	}
	if card.Name == "" {
		card.Name = PlaceholderName
	}
	if card.ImageURL == "" {
		card.ImageURL = PlaceholderImage
	}
	return card
}

// View is the display state of the results area.
type View struct {
	Message   string
	Cards     []Card
	LocalTime string
}

// Build derives the view for a search result at the viewer's instant now.
// An unformattable timezone leaves LocalTime empty.
func Build(res search.Result, now time.Time) View {
	if !res.Matched {
		return View{Message: HintMessage}
	}
	if len(res.Destinations) == 0 {
		return View{Message: NoResultsMessage}
	}

	view := View{Cards: make([]Card, 0, len(res.Destinations))}
	for _, d := range res.Destinations {
		view.Cards = append(view.Cards, NewCard(d))
	}

	if rep := res.Representative; rep != nil {
		if s, err := FormatLocalTime(now, rep.Timezone, NewCard(*rep).Name); err == nil {
			view.LocalTime = s
		}
	}
	return view
}

// IsEmpty reports whether there is nothing to show, as after a reset.
func (v View) IsEmpty() bool {
	return v.Message == "" && len(v.Cards) == 0 && v.LocalTime == ""
}

// HTML renders the results list. The name is escaped for attribute context
// and the description for text context.
func (v View) HTML() template.HTML {
	if v.Message != "" {
		return template.HTML("<p>" + v.Message + "</p>")
	}

	var b strings.Builder
	for _, card := range v.Cards {
		name := EscapeAttr(card.Name)
		b.WriteString(`<div class="result-card">`)
		b.WriteString(`<img src="` + EscapeAttr(card.ImageURL) + `" alt="` + name + `" onerror="this.src='` + FallbackImage + `'">`)
		b.WriteString(`<div class="card-body">`)
		b.WriteString(`<h3>` + name + `</h3>`)
		b.WriteString(`<p>` + EscapeText(card.Description) + `</p>`)
		b.WriteString(`</div>`)
		b.WriteString(`</div>`)
	}
	return template.HTML(b.String())
}
