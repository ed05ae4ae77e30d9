package resolver

// placeCorrections is a hand-curated table of place-name misspellings seen
// in real queries, applied by exact lowercase lookup before falling back to
// fuzzy resolution. It is broader than the spell checker's table since it
// also covers variants the gazetteer scores poorly.
func placeCorrections() map[string]string {
	return map[string]string{
		"malasiya":     "Malaysia",
		"malaysiya":    "Malaysia",
		"kolalampur":   "Kuala Lumpur",
		"kualalampur":  "Kuala Lumpur",
		"kolalumpur":   "Kuala Lumpur",
		"israil":       "Israel",
		"isreal":       "Israel",
		"singapur":     "Singapore",
		"bangalor":     "Bangalore",
		"bangaluru":    "Bangalore",
		"mumbay":       "Mumbai",
		"kolkatta":     "Kolkata",
		"chenai":       "Chennai",
		"dilli":        "Delhi",
		"hydrabad":     "Hyderabad",
		"new yourk":    "New York",
		"newyork":      "New York",
		"los angelas":  "Los Angeles",
		"losangeles":   "Los Angeles",
		"sanfrancisco": "San Francisco",
		"washingtondc": "Washington DC",
		"madras":       "Chennai",
		"madhurai":     "Madurai",
		"banglore":     "Bangalore",
		"londan":       "London",
		"tokio":        "Tokyo",
	}
}
