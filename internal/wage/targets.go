package wage

// Occupation pairs a display name with its SOC code.
type Occupation struct {
	Name    string `json:"name"`
	SocCode string `json:"soc"`
}

// Targets is the fixed input of a run: the metros to resolve and the
// occupations to report, both in output order.
type Targets struct {
	Metros      []string
	Occupations []Occupation
}

// DefaultTargets returns the production metro list (the 40 largest metros
// by population, CBSA 2023 names) and the two reported occupations.
func DefaultTargets() Targets {
	return Targets{
		Metros: []string{
			"New York-Newark-Jersey City, NY-NJ",
			"Los Angeles-Long Beach-Anaheim, CA",
			"Chicago-Naperville-Elgin, IL-IN",
			"Dallas-Fort Worth-Arlington, TX",
			"Houston-Pasadena-The Woodlands, TX",
			"Washington-Arlington-Alexandria, DC-VA-MD-WV",
			"Miami-Fort Lauderdale-West Palm Beach, FL",
			"Philadelphia-Camden-Wilmington, PA-NJ-DE-MD",
			"Atlanta-Sandy Springs-Roswell, GA",
			"Phoenix-Mesa-Chandler, AZ",
			"Boston-Cambridge-Newton, MA-NH",
			"San Francisco-Oakland-Fremont, CA",
			"Riverside-San Bernardino-Ontario, CA",
			"Detroit-Warren-Dearborn, MI",
			"Seattle-Tacoma-Bellevue, WA",
			"Minneapolis-St. Paul-Bloomington, MN-WI",
			"San Diego-Chula Vista-Carlsbad, CA",
			"Tampa-St. Petersburg-Clearwater, FL",
			"Denver-Aurora-Centennial, CO",
			"St. Louis, MO-IL",
			"Baltimore-Columbia-Towson, MD",
			"Charlotte-Concord-Gastonia, NC-SC",
			"Orlando-Kissimmee-Sanford, FL",
			"San Antonio-New Braunfels, TX",
			"Portland-Vancouver-Hillsboro, OR-WA",
			"Sacramento-Roseville-Folsom, CA",
			"Pittsburgh, PA",
			"Austin-Round Rock-San Marcos, TX",
			"Las Vegas-Henderson-North Las Vegas, NV",
			"Cincinnati, OH-KY-IN",
			"Kansas City, MO-KS",
			"Columbus, OH",
			"Indianapolis-Carmel-Greenwood, IN",
			"Cleveland, OH",
			"San Jose-Sunnyvale-Santa Clara, CA",
			"Nashville-Davidson--Murfreesboro--Franklin, TN",
			"Jacksonville, FL",
			"Raleigh-Cary, NC",
			"Milwaukee-Waukesha, WI",
			"Madison, WI",
		},
		Occupations: []Occupation{
			{Name: "Software Developers", SocCode: "15-1252"},
			{Name: "Petroleum Engineers", SocCode: "17-2171"},
		},
	}
}
