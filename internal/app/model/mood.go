package model

type Mood string // alcohol strength band

const (
	MoodNonAlcoholic     Mood = "non_alcoholic"
	MoodLightRefreshing  Mood = "light_refreshing"
	MoodModerateBalanced Mood = "moderate_balanced"
	MoodStrongBold       Mood = "strong_bold"
)

func (m Mood) Label() string {
	switch m {
	case MoodNonAlcoholic:
		return "Non-Alcoholic"
	case MoodLightRefreshing:
		return "Light & Refreshing"
	case MoodModerateBalanced:
		return "Moderate & Balanced"
	case MoodStrongBold:
		return "Strong & Bold"
	}
	return ""
}
