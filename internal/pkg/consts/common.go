package consts

const (
	MimePrefixImage = "image"
	MimePrefixVideo = "video"
)

const (
	DefaultAvatarURL = "default_avatar.png"
)

// NotificationPageSize is how many notifications the inbox query returns.
const NotificationPageSize = 20
