package advisor

import "time"

// FallbackMessage is returned whenever the advisor cannot produce an answer
const FallbackMessage = "The farm advisor is resting right now. Keep your crops watered and try asking again later."

// DefaultTimeout bounds a single advisor call when none is configured
const DefaultTimeout = 15 * time.Second

// MaxQueryLength caps user text, in characters, before it is built into a prompt
const MaxQueryLength = 1000

// systemPrompt frames every conversation with the backend
const systemPrompt = "You are a friendly farming advisor inside a small farm game. " +
	"Crops need water every few days, lose health when their soil dries out completely, " +
	"and wither for good if neglected. Answer in at most three short sentences unless asked for a guide."

// identifyTemplate builds the structured "identify this problem" query
const identifyTemplate = "My %s crop has this problem: %s. What is most likely wrong and what should I do?"

// guideTemplate asks for a growing guide built from a catalog entry
const guideTemplate = "Provide a detailed guide for growing %s in Zimbabwe urban settings. " +
	"About the crop: %s It takes %d days to mature and its water need is %d out of 10. " +
	"Include: 1. Best planting season 2. Watering requirements 3. Common Zimbabwean pests affecting it 4. Harvest signs."

// Log messages
const (
	LogMsgAdvisorDisabled = "Advisor disabled, returning fallback"
	LogMsgAdvisorFailed   = "Advisor backend failed, returning fallback"
	LogMsgAdvisorEmpty    = "Advisor backend returned no text, returning fallback"
)
