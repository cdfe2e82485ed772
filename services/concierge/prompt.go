package concierge

import (
	"encoding/json"
	"fmt"
	"strings"

	"concierge/models"
)

// Conversation is the fixed two-message exchange sent to the model.
type Conversation struct {
	System string
	Human  string
}

// systemPrompt pins the model to strict-JSON output.
const systemPrompt = "You are an AI concierge that returns STRICT JSON only. " +
	"No commentary. No markdown. If uncertain, make reasonable defaults."

// outputSchema spells out the exact JSON shape the model must return. Any
// change to the response contract must be reflected here.
const outputSchema = `Return STRICT JSON with this shape:
{
  "plan": [
    {"day": 1, "date": "YYYY-MM-DD", "morning": "...", "afternoon": "...", "evening": "..."},
    ... (one per day)
  ],
  "activities": [
    {"title":"", "address":"","geo":{"lat":0,"lng":0}, "price_tier":"$|$$|$$$", "duration_min":90,
     "tags":[""], "wheelchair_friendly":true, "child_friendly":true}
  ],
  "restaurants": [
    {"name":"", "address":"", "cuisine":"", "satisfies_filters":["vegan"], "price_tier":"$|$$|$$$", "notes":""}
  ],
  "packing_checklist": ["light jacket", "sunscreen", "..."]
}
Rules:
- Respect dietary_filters (e.g., vegan) for restaurants.
- Respect mobility_needs (e.g., wheelchair) on activities flags.
- Plan must cover each day between start_date and end_date.
- Keep texts short, practical, and specific to location.
- Output JSON only, no code fences, no extra text.`

// BuildPrompt deterministically renders the request and live context into the
// two-message conversation. Pure function, no side effects.
func BuildPrompt(req *models.ConciergeRequest, live models.LiveContext) Conversation {
	var b strings.Builder

	fmt.Fprintf(&b, "Booking:\n")
	fmt.Fprintf(&b, "- dates: %s to %s\n", req.Booking.StartDate, req.Booking.EndDate)
	fmt.Fprintf(&b, "- location: %s\n", req.Booking.Location)
	fmt.Fprintf(&b, "- party_type: %s\n\n", req.Booking.PartyType)

	fmt.Fprintf(&b, "Preferences:\n")
	fmt.Fprintf(&b, "- budget: %s\n", req.Preferences.Budget)
	fmt.Fprintf(&b, "- interests: %s\n", joinOrNone(req.Preferences.Interests))
	fmt.Fprintf(&b, "- mobility_needs: %s\n", orNone(req.Preferences.MobilityNeeds))
	fmt.Fprintf(&b, "- dietary_filters: %s\n\n", joinOrNone(req.Preferences.DietaryFilters))

	fmt.Fprintf(&b, "Live Context (very short bullets):\n")
	fmt.Fprintf(&b, "- weather: %s\n", bulletList(live.Weather))
	fmt.Fprintf(&b, "- pois: %s\n", bulletList(live.POIs))
	fmt.Fprintf(&b, "- events: %s\n\n", bulletList(live.Events))

	if req.NLUQuery != "" {
		fmt.Fprintf(&b, "User ask: %q\n\n", req.NLUQuery)
	} else {
		fmt.Fprintf(&b, "User ask: (none)\n\n")
	}

	b.WriteString(outputSchema)

	return Conversation{System: systemPrompt, Human: b.String()}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// bulletList renders a bullet slice as a JSON array so the prompt stays
// byte-identical for identical inputs.
func bulletList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}
