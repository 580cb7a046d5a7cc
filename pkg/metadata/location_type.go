package metadata

import (
	"fmt"
	"strings"
)

type LocationType string

const (
	LocationDepartment LocationType = "DEPARTMENT"
	LocationBuilding   LocationType = "BUILDING"
	LocationStore      LocationType = "STORE"
	LocationRoom       LocationType = "ROOM"
	LocationLab        LocationType = "LAB"
	LocationJunkyard   LocationType = "JUNKYARD"
	LocationOther      LocationType = "OTHER"
)

func NewLocationType(value string) (LocationType, error) {
	locationType := LocationType(strings.ToUpper(strings.TrimSpace(value)))
	if !locationType.IsValid() {
		return "", fmt.Errorf(
			"invalid location type: %s, only valid values are: %s, %s, %s, %s, %s, %s, %s",
			value, LocationDepartment, LocationBuilding, LocationStore,
			LocationRoom, LocationLab, LocationJunkyard, LocationOther,
		)
	}
	return locationType, nil
}

func (t LocationType) IsValid() bool {
	switch t {
	case LocationDepartment, LocationBuilding, LocationStore, LocationRoom,
		LocationLab, LocationJunkyard, LocationOther:
		return true
	default:
		return false
	}
}

func (t LocationType) String() string {
	return string(t)
}
