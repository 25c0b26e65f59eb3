package model

// CustomTheme is the theme option for free-text themes.
const CustomTheme = "Custom"

// ThemeOptions lists the selectable themes in display order.
var ThemeOptions = []string{
	"Princess",
	"Space/Astronaut",
	"Unicorn",
	"Superheroes",
	"Animals",
	"Dinosaurs",
	"Mermaids",
	"Sports",
	CustomTheme,
}

var decorationIdeas = map[string][]string{
	"Princess": {
		"Crown/Tiara for birthday girl",
		"Castle decorations",
		"Pink and purple balloons",
		"Wands as party favors",
		"Princess cake topper",
	},
	"Space/Astronaut": {
		"Star decorations",
		"Rocket balloons",
		"Planet decorations",
		"Space themed tablecloth",
		"Astronaut helmet props",
	},
	"Unicorn": {
		"Unicorn headbands",
		"Rainbow decorations",
		"Magical stars",
		"Pastel colored balloons",
		"Glitter and confetti",
	},
	"Superheroes": {
		"Superhero masks",
		"City skyline backdrop",
		"Comic book decorations",
		"Superhero capes as favors",
		"POW! and BAM! signs",
	},
	"Animals": {
		"Animal balloons",
		"Zoo themed decorations",
		"Animal masks",
		"Jungle vines and leaves",
		"Animal print tablecloth",
	},
	"Dinosaurs": {
		"Dinosaur figures",
		"Prehistoric plants",
		"Dinosaur footprints",
		"Volcano decorations",
		"Dinosaur eggs",
	},
	"Mermaids": {
		"Seashell decorations",
		"Blue and teal balloons",
		"Mermaid tails",
		"Fishing nets with sea creatures",
		"Treasure chest props",
	},
	"Sports": {
		"Sports ball decorations",
		"Team banners",
		"Trophy centerpieces",
		"Sports equipment props",
		"Team color balloons",
	},
}

// DecorationIdeas returns suggested decorations for a known theme.
// Custom and unknown themes have none.
func DecorationIdeas(theme string) []string {
	ideas, ok := decorationIdeas[theme]
	if !ok {
		return nil
	}
	out := make([]string, len(ideas))
	copy(out, ideas)
	return out
}

// IsKnownTheme reports whether theme is one of the predefined options other
// than Custom.
func IsKnownTheme(theme string) bool {
	_, ok := decorationIdeas[theme]
	return ok
}
