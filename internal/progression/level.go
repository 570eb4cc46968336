package progression

// LevelFor derives the level from total experience: floor(xp / LevelThreshold) + 1
func LevelFor(experience int) int {
	if experience <= 0 {
		return 1
	}
	return experience/LevelThreshold + 1
}

// XPProgress returns the experience earned inside the current level and the
// experience still needed to reach the next one
func XPProgress(experience int) (intoLevel int, toNext int) {
	if experience < 0 {
		experience = 0
	}
	intoLevel = experience % LevelThreshold
	toNext = LevelThreshold - intoLevel
	return
}
