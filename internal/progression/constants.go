package progression

// LevelThreshold is the experience needed per level
const LevelThreshold = 100

// StartingDay is the day counter of a new game
const StartingDay = 1
