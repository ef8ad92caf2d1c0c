package view

import (
	"strings"

	"github.com/bellj/connect-api-examples/internal/square"
)

// LocationInfo projects a location's display fields for the page header.
type LocationInfo struct {
	BusinessName string
	AddressLine  string
	CityLine     string
}

func NewLocationInfo(loc square.Location) LocationInfo {
	info := LocationInfo{BusinessName: loc.BusinessName}
	if info.BusinessName == "" {
		info.BusinessName = loc.Name
	}

	if a := loc.Address; a != nil {
		parts := []string{}
		if a.AddressLine1 != "" {
			parts = append(parts, a.AddressLine1)
		}
		if a.AddressLine2 != "" {
			parts = append(parts, a.AddressLine2)
		}
		info.AddressLine = strings.Join(parts, ", ")

		cityParts := []string{}
		if a.Locality != "" {
			cityParts = append(cityParts, a.Locality)
		}
		if a.AdministrativeDistrictLevel1 != "" {
			cityParts = append(cityParts, a.AdministrativeDistrictLevel1)
		}
		city := strings.Join(cityParts, ", ")
		if a.PostalCode != "" {
			if city != "" {
				city += " " + a.PostalCode
			} else {
				city = a.PostalCode
			}
		}
		info.CityLine = city
	}
	return info
}
