package docwritex

import "errors"

// DurabilityLevel specifies how strongly the store must acknowledge a write
// before it is considered successful.
type DurabilityLevel int

const (
	// DurabilityLevelUnknown indicates to use the collection default.
	DurabilityLevelUnknown = DurabilityLevel(0)

	// DurabilityLevelNone indicates the write needs no acknowledgement.
	DurabilityLevelNone = DurabilityLevel(1)

	// DurabilityLevelAcknowledged indicates the primary must acknowledge the write.
	DurabilityLevelAcknowledged = DurabilityLevel(2)

	// DurabilityLevelMajority indicates the write must be replicated to the
	// majority of the store's members.
	DurabilityLevelMajority = DurabilityLevel(3)
)

func (l DurabilityLevel) String() string {
	switch l {
	case DurabilityLevelUnknown:
		return "UNSET"
	case DurabilityLevelNone:
		return "NONE"
	case DurabilityLevelAcknowledged:
		return "ACKNOWLEDGED"
	case DurabilityLevelMajority:
		return "MAJORITY"
	}
	return ""
}

// DurabilityLevelFromString parses the textual form produced by String.
func DurabilityLevelFromString(level string) (DurabilityLevel, error) {
	switch level {
	case "UNSET":
		return DurabilityLevelUnknown, nil
	case "NONE":
		return DurabilityLevelNone, nil
	case "ACKNOWLEDGED":
		return DurabilityLevelAcknowledged, nil
	case "MAJORITY":
		return DurabilityLevelMajority, nil
	}
	return DurabilityLevelUnknown, errors.New("invalid durability level string")
}
