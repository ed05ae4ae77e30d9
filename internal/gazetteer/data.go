package gazetteer

// builtinLocations seeds the gazetteer with major cities, countries and states
// relevant to the assistant's user base. Coordinates are approximate centroids.
func builtinLocations() map[string]Record {
	return map[string]Record{
		"New York":      {Name: "New York", Lat: 40.7128, Lon: -74.0060, Country: "US", Type: TypeCity},
		"London":        {Name: "London", Lat: 51.5074, Lon: -0.1278, Country: "GB", Type: TypeCity},
		"Paris":         {Name: "Paris", Lat: 48.8566, Lon: 2.3522, Country: "FR", Type: TypeCity},
		"Tokyo":         {Name: "Tokyo", Lat: 35.6762, Lon: 139.6503, Country: "JP", Type: TypeCity},
		"Delhi":         {Name: "Delhi", Lat: 28.7041, Lon: 77.1025, Country: "IN", Type: TypeCity},
		"Mumbai":        {Name: "Mumbai", Lat: 19.0760, Lon: 72.8777, Country: "IN", Type: TypeCity},
		"Bangalore":     {Name: "Bangalore", Lat: 12.9716, Lon: 77.5946, Country: "IN", Type: TypeCity},
		"Chennai":       {Name: "Chennai", Lat: 13.0827, Lon: 80.2707, Country: "IN", Type: TypeCity},
		"Kolkata":       {Name: "Kolkata", Lat: 22.5726, Lon: 88.3639, Country: "IN", Type: TypeCity},
		"Hyderabad":     {Name: "Hyderabad", Lat: 17.3850, Lon: 78.4867, Country: "IN", Type: TypeCity},
		"Kanyakumari":   {Name: "Kanyakumari", Lat: 8.0883, Lon: 77.5385, Country: "IN", Type: TypeCity},
		"Madurai":       {Name: "Madurai", Lat: 9.9252, Lon: 78.1198, Country: "IN", Type: TypeCity},
		"Singapore":     {Name: "Singapore", Lat: 1.3521, Lon: 103.8198, Country: "SG", Type: TypeCity},
		"Kuala Lumpur":  {Name: "Kuala Lumpur", Lat: 3.1390, Lon: 101.6869, Country: "MY", Type: TypeCity},
		"Bangkok":       {Name: "Bangkok", Lat: 13.7563, Lon: 100.5018, Country: "TH", Type: TypeCity},
		"Dubai":         {Name: "Dubai", Lat: 25.2048, Lon: 55.2708, Country: "AE", Type: TypeCity},
		"Los Angeles":   {Name: "Los Angeles", Lat: 34.0522, Lon: -118.2437, Country: "US", Type: TypeCity},
		"San Francisco": {Name: "San Francisco", Lat: 37.7749, Lon: -122.4194, Country: "US", Type: TypeCity},
		"Chicago":       {Name: "Chicago", Lat: 41.8781, Lon: -87.6298, Country: "US", Type: TypeCity},
		"Washington DC": {Name: "Washington DC", Lat: 38.9072, Lon: -77.0369, Country: "US", Type: TypeCity},

		"Malaysia":       {Name: "Malaysia", Lat: 4.2105, Lon: 101.9758, Type: TypeCountry},
		"Israel":         {Name: "Israel", Lat: 31.0461, Lon: 34.8516, Type: TypeCountry},
		"India":          {Name: "India", Lat: 20.5937, Lon: 78.9629, Type: TypeCountry},
		"United States":  {Name: "United States", Lat: 37.0902, Lon: -95.7129, Type: TypeCountry},
		"United Kingdom": {Name: "United Kingdom", Lat: 55.3781, Lon: -3.4360, Type: TypeCountry},
		"Japan":          {Name: "Japan", Lat: 36.2048, Lon: 138.2529, Type: TypeCountry},
		"Thailand":       {Name: "Thailand", Lat: 15.8700, Lon: 100.9925, Type: TypeCountry},
		"Australia":      {Name: "Australia", Lat: -25.2744, Lon: 133.7751, Type: TypeCountry},
		"Austria":        {Name: "Austria", Lat: 47.5162, Lon: 14.5501, Type: TypeCountry},
		"Germany":        {Name: "Germany", Lat: 51.1657, Lon: 10.4515, Type: TypeCountry},
		"France":         {Name: "France", Lat: 46.2276, Lon: 2.2137, Type: TypeCountry},
		"Italy":          {Name: "Italy", Lat: 41.8719, Lon: 12.5674, Type: TypeCountry},
		"Spain":          {Name: "Spain", Lat: 40.4637, Lon: -3.7492, Type: TypeCountry},
		"Canada":         {Name: "Canada", Lat: 56.1304, Lon: -106.3468, Type: TypeCountry},
		"Brazil":         {Name: "Brazil", Lat: -14.2350, Lon: -51.9253, Type: TypeCountry},
		"China":          {Name: "China", Lat: 35.8617, Lon: 104.1954, Type: TypeCountry},
		"Russia":         {Name: "Russia", Lat: 61.5240, Lon: 105.3188, Type: TypeCountry},

		"California": {Name: "California", Lat: 36.7783, Lon: -119.4179, Type: TypeState},
	}
}

// builtinAliases maps abbreviations and common alternate spellings to
// canonical gazetteer names. Every target must be a builtinLocations key.
func builtinAliases() map[string]string {
	return map[string]string{
		"US":         "United States",
		"USA":        "United States",
		"UK":         "United Kingdom",
		"Britain":    "United Kingdom",
		"NYC":        "New York",
		"LA":         "Los Angeles",
		"SF":         "San Francisco",
		"KL":         "Kuala Lumpur",
		"Bengaluru":  "Bangalore",
		"Bombay":     "Mumbai",
		"Calcutta":   "Kolkata",
		"DC":         "Washington DC",
		"autralia":   "Australia",
		"austrialia": "Australia",
		"aussie":     "Australia",
		"oz":         "Australia",
		"ciatel":     "Israel",
	}
}
