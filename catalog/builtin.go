package catalog

var defaultAbilities = map[string]int{
	"Flash":   300,
	Teleport:  300,
	"Clarity": 240,
	"Cleanse": 240,
	"Exhaust": 240,
	"Ghost":   240,
	"Heal":    240,
	"Barrier": 180,
	"Ignite":  180,
	"Smite":   90,
}

// A handful of common units so the tracker is useful offline. A fetched
// Data Dragon catalog replaces them.
var defaultUnits = map[string][]float64{
	"Aatrox":     {120, 100, 80},
	"Ahri":       {130, 105, 80},
	"Ashe":       {100, 80, 60},
	"Malphite":   {130, 105, 80},
	"MonkeyKing": {120, 100, 80},
}
