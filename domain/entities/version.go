package entities

import (
	"encoding/json"
	"fmt"
)

// Version is a major/minor pair. On the wire it is the two-element array
// [major, minor], which is how checkVersion requests carry the script's
// requirement.
type Version struct {
	Major int
	Minor int
}

// BridgeVersion is the protocol version implemented by this bridge. A
// script's checkVersion requirement is compared against it: majors must
// match exactly, and the required minor may not exceed BridgeVersion.Minor.
var BridgeVersion = Version{Major: 5, Minor: 0}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// MarshalJSON encodes the version as [major, minor].
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{v.Major, v.Minor})
}

// UnmarshalJSON decodes a [major, minor] array.
func (v *Version) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("version must be a [major, minor] array: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("version must have exactly two elements, got %d", len(pair))
	}
	v.Major, v.Minor = pair[0], pair[1]
	return nil
}
