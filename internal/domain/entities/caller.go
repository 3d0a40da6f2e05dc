package entities

// Caller is whoever invoked a slash command, reduced to what the bot checks.
type Caller struct {
	UserID          string
	IsAdministrator bool
}
