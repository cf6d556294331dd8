package service

import "github.com/ikkim/winecraft-backend/internal/app/model"

// ClassifyMood maps an alcohol percentage onto its strength band. Bounds are
// inclusive upper limits.
func ClassifyMood(alcoholPercentage int) model.Mood {
	switch {
	case alcoholPercentage <= 3:
		return model.MoodNonAlcoholic
	case alcoholPercentage <= 8:
		return model.MoodLightRefreshing
	case alcoholPercentage <= 15:
		return model.MoodModerateBalanced
	default:
		return model.MoodStrongBold
	}
}
