package catalog

// Unit ids whose display name differs from the catalog id.
var displayNames = map[string]string{
	"MonkeyKing": "Wukong",
}

// DisplayName returns the player-facing name of a unit id.
func DisplayName(unitID string) string {
	if name, ok := displayNames[unitID]; ok {
		return name
	}

	return unitID
}

// InternalName maps a player-facing name back to the catalog id.
func InternalName(name string) string {
	for id, display := range displayNames {
		if display == name {
			return id
		}
	}

	return name
}
