package concierge

import (
	"strings"
	"testing"

	"concierge/models"
)

func sampleRequest() *models.ConciergeRequest {
	return &models.ConciergeRequest{
		Booking: models.BookingInfo{
			StartDate: "2025-10-20",
			EndDate:   "2025-10-23",
			Location:  "San Francisco, CA",
			PartyType: "family with two kids",
		},
		Preferences: models.PreferencesInfo{
			Budget:         "moderate",
			Interests:      []string{"museums", "parks"},
			DietaryFilters: []string{"vegan"},
		},
		NLUQuery: "somewhere quiet in the evenings",
	}
}

func sampleLiveContext() models.LiveContext {
	return models.LiveContext{
		Weather: []string{"Mild, 18C, light rain Tuesday"},
		POIs:    []string{"Golden Gate Park", "Exploratorium"},
		Events:  []string{"Fleet Week airshow"},
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	a := BuildPrompt(sampleRequest(), sampleLiveContext())
	b := BuildPrompt(sampleRequest(), sampleLiveContext())
	if a.System != b.System || a.Human != b.Human {
		t.Error("identical inputs produced different conversations")
	}
}

func TestBuildPromptEmbedsAllFields(t *testing.T) {
	conv := BuildPrompt(sampleRequest(), sampleLiveContext())

	for _, want := range []string{
		"2025-10-20 to 2025-10-23",
		"San Francisco, CA",
		"family with two kids",
		"budget: moderate",
		"museums, parks",
		"vegan",
		"Golden Gate Park",
		"Fleet Week airshow",
		`User ask: "somewhere quiet in the evenings"`,
		`"packing_checklist"`,
		"Respect dietary_filters",
	} {
		if !strings.Contains(conv.Human, want) {
			t.Errorf("human message missing %q", want)
		}
	}
	if !strings.Contains(conv.System, "STRICT JSON") {
		t.Errorf("system message missing strict-JSON instruction: %q", conv.System)
	}
}

func TestBuildPromptNonePlaceholders(t *testing.T) {
	req := &models.ConciergeRequest{
		Booking: models.BookingInfo{
			StartDate: "2025-10-20",
			EndDate:   "2025-10-21",
			Location:  "Austin, TX",
			PartyType: "couple",
		},
		Preferences: models.PreferencesInfo{Budget: "moderate"},
	}
	conv := BuildPrompt(req, models.LiveContext{})

	for _, want := range []string{
		"interests: (none)",
		"mobility_needs: (none)",
		"dietary_filters: (none)",
		"User ask: (none)",
	} {
		if !strings.Contains(conv.Human, want) {
			t.Errorf("human message missing placeholder %q", want)
		}
	}
}
