package templates

import (
	"slices"

	"github.com/educreate/gamecore/internal/catalog"
)

// StyleCategory groups visual styles.
type StyleCategory string

const (
	StyleClassic     StyleCategory = "classic"
	StyleThemed      StyleCategory = "themed"
	StyleSeasonal    StyleCategory = "seasonal"
	StyleEducational StyleCategory = "educational"
)

// Palette is the color set of a visual style.
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// VisualStyle is a selectable look for a game.
type VisualStyle struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Thumbnail string        `json:"thumbnail"`
	Category  StyleCategory `json:"category"`
	Colors    Palette       `json:"colors"`
}

// DefaultStyle is used when a configuration does not name a style.
const DefaultStyle = "classic"

// commonStyles are offered by every template, ahead of its own styles.
var commonStyles = []VisualStyle{
	{
		ID:        "classic",
		Name:      "Classic",
		Thumbnail: "/styles/classic.jpg",
		Category:  StyleClassic,
		Colors:    Palette{Primary: "#3B82F6", Secondary: "#EFF6FF", Background: "#FFFFFF", Text: "#1F2937"},
	},
	{
		ID:        "classroom",
		Name:      "Classroom",
		Thumbnail: "/styles/classroom.jpg",
		Category:  StyleEducational,
		Colors:    Palette{Primary: "#059669", Secondary: "#ECFDF5", Background: "#F9FAFB", Text: "#1F2937"},
	},
	{
		ID:        "clouds",
		Name:      "Clouds",
		Thumbnail: "/styles/clouds.jpg",
		Category:  StyleThemed,
		Colors:    Palette{Primary: "#0EA5E9", Secondary: "#E0F2FE", Background: "#F0F9FF", Text: "#0C4A6E"},
	},
}

var templateStyles = map[catalog.GameType][]VisualStyle{
	catalog.GameQuiz: {
		{
			ID:        "tv-gameshow",
			Name:      "TV Game Show",
			Thumbnail: "/styles/quiz/tv-gameshow.jpg",
			Category:  StyleThemed,
			Colors:    Palette{Primary: "#DC2626", Secondary: "#FEF2F2", Background: "#1F2937", Text: "#FFFFFF"},
		},
		{
			ID:        "blackboard",
			Name:      "Blackboard",
			Thumbnail: "/styles/quiz/blackboard.jpg",
			Category:  StyleEducational,
			Colors:    Palette{Primary: "#FBBF24", Secondary: "#FEF3C7", Background: "#1F2937", Text: "#FFFFFF"},
		},
	},
	catalog.GameMatching: {
		{
			ID:        "wooden-desk",
			Name:      "Wooden Desk",
			Thumbnail: "/styles/matching/wooden-desk.jpg",
			Category:  StyleClassic,
			Colors:    Palette{Primary: "#92400E", Secondary: "#FEF3C7", Background: "#FFFBEB", Text: "#92400E"},
		},
	},
}

// Styles returns the styles available to a template: the common styles
// followed by the template's own. Unknown templates get the common styles.
func Styles(id catalog.GameType) []VisualStyle {
	return slices.Concat(commonStyles, templateStyles[id])
}

// Style looks up a style by id among those available to a template.
func Style(id catalog.GameType, styleID string) (VisualStyle, bool) {
	for _, s := range Styles(id) {
		if s.ID == styleID {
			return s, true
		}
	}
	return VisualStyle{}, false
}
