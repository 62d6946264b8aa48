package utility

import "math/rand"

var avatarEmojis = []string{
	"🦊", "🐸", "🦉", "🐙", "🦁", "🐢", "🐼", "🦄",
	"🐳", "🦜", "🐝", "🦔", "🐨", "🦋", "🐺", "🦩",
}

// RandomAvatarEmoji picks a default avatar for profiles created without one.
func RandomAvatarEmoji() string {
	return avatarEmojis[rand.Intn(len(avatarEmojis))]
}
