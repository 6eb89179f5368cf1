// Package narration turns structured turn events into player-facing
// messages and fans them out to sinks.
package narration

import (
	"strings"
	"text/template"
)

// Catalog maps narration event keys to message templates. Template
// variables interpolate from event metadata.
type Catalog struct {
	messages map[string]string
}

// NewCatalog creates a catalog from a key-to-template map.
func NewCatalog(messages map[string]string) *Catalog {
	return &Catalog{messages: messages}
}

// Format renders the message for the key. Unknown keys fall back to
// the key itself so an event is never silently dropped.
func (c *Catalog) Format(key string, metadata map[string]string) string {
	if c == nil {
		return key
	}
	text, ok := c.messages[key]
	if !ok {
		return key
	}

	tmpl, err := template.New(key).Parse(text)
	if err != nil {
		return text
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, metadata); err != nil {
		return text
	}
	return sb.String()
}

// DefaultCatalog returns the built-in English messages for the turn
// event keys.
func DefaultCatalog() *Catalog {
	return NewCatalog(map[string]string{
		"turn.resources.collected":   "Rolled {{.Dice}} for {{.Total}} resource points ({{.Points}} total).",
		"turn.commodities.yielded":   "Work sites yielded {{.Ore}} ore, {{.Lumber}} lumber, {{.Stone}} stone, {{.Luxuries}} luxuries.",
		"turn.consumption.paid":      "Paid {{.Paid}} of {{.Total}} consumption; {{.Food}} food remains.",
		"turn.consumption.shortfall": "Food shortfall of {{.Shortfall}}: pay {{.Price}} RP or accept unrest.",
		"turn.unrest.adjusted":       "Unrest changed by {{.Delta}} to {{.Unrest}}.",
		"turn.ruin.accrued":          "Unrest is rampant: distribute {{.Ruin}} ruin.",
		"turn.hexloss.checked":       "Hex loss check rolled {{.Roll}} vs DC {{.DC}}; lost: {{.HexLost}}.",
		"turn.anarchy.warning":       "Unrest {{.Unrest}} has reached the anarchy threshold of {{.Threshold}}.",
		"turn.event.occurred":        "A kingdom event occurs (rolled {{.Roll}} vs DC {{.DC}}).",
		"turn.event.quiet":           "No kingdom event this turn (rolled {{.Roll}} vs DC {{.DC}}).",
		"turn.ended":                 "Turn ended: {{.Dice}} resource dice, {{.Points}} resource points, {{.Consumption}} consumption carried in.",
	})
}
