package discord

import "fmt"

// RoleMention renders a role reference that Discord displays as an @mention.
func RoleMention(roleID string) string {
	return fmt.Sprintf("<@&%s>", roleID)
}
