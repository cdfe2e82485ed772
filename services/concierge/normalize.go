package concierge

import "concierge/models"

// defaultPackingItem seeds packing_checklist when the model omits it.
const defaultPackingItem = "light jacket"

// requiredKeys are the four top-level keys every response must carry.
var requiredKeys = []string{"plan", "activities", "restaurants", "packing_checklist"}

// Normalize guarantees the four required keys exist, inserting empty lists
// (or the minimal packing default) for any that are missing. Keys that are
// present pass through untouched, whatever their type; nested shapes are
// deliberately not validated.
func Normalize(data map[string]any) models.ItineraryResult {
	for _, k := range requiredKeys {
		if _, ok := data[k]; ok {
			continue
		}
		if k == "packing_checklist" {
			data[k] = []any{defaultPackingItem}
		} else {
			data[k] = []any{}
		}
	}
	return models.ItineraryResult(data)
}
