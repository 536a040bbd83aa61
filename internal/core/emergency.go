package core

import (
	"net/url"

	"health-companion/pkg"
)

// helplines are the fixed emergency numbers shown alongside the map links.
var helplines = []pkg.Helpline{
	{Name: "Ambulance", Number: "102 / 108"},
	{Name: "Police", Number: "100 / 112"},
	{Name: "Women Helpline", Number: "1091"},
}

// EmergencyLinks formats the city name into the two fixed map-search URLs
// and attaches the helpline list. Pure string formatting, no network call.
func EmergencyLinks(city string) pkg.EmergencyInfo {
	escaped := url.QueryEscape(city)
	return pkg.EmergencyInfo{
		City:          city,
		HospitalsURL:  "https://www.google.com/maps/search/hospitals+near+" + escaped,
		AmbulancesURL: "https://www.google.com/maps/search/ambulance+service+near+" + escaped,
		Helplines:     helplines,
	}
}
