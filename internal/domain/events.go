package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "plot.planted")
const (
	// EventTypeGameStarted is published when a new game session is created
	EventTypeGameStarted = "game.started"

	// EventTypePlotPlanted is published when a crop is planted on an empty plot
	EventTypePlotPlanted = "plot.planted"

	// EventTypePlotWatered is published when an occupied plot is watered
	EventTypePlotWatered = "plot.watered"

	// EventTypePlotMatured is published when a daily tick brings a crop to MATURE
	EventTypePlotMatured = "plot.matured"

	// EventTypePlotWithered is published when a daily tick withers a crop
	EventTypePlotWithered = "plot.withered"

	// EventTypePlotHarvested is published when a mature crop is harvested
	EventTypePlotHarvested = "plot.harvested"

	// EventTypePlotRemoved is published when a crop is cleared without reward
	EventTypePlotRemoved = "plot.removed"

	// EventTypeDayAdvanced is published after every daily tick
	EventTypeDayAdvanced = "day.advanced"

	// EventTypeLevelUp is published when a harvest crosses a level boundary
	EventTypeLevelUp = "progression.level_up"
)
