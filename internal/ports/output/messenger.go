package output

import "context"

// Messenger posts plain text messages to a chat channel.
type Messenger interface {
	SendChannelMessage(ctx context.Context, channelID, content string) error
}
