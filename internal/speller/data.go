package speller

// builtinCorrections ships with the binary and is never persisted.
// Keys are lowercased misspellings.
func builtinCorrections() map[string]string {
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
	}
}
