package consts

// Realtime pub/sub channel prefixes. The recipient/video/conversation ID
// is appended to form the concrete topic.
const (
	NotificationChannelPrefix = "notify:user:"
	CommentChannelPrefix      = "comment:video:"
	MessageChannelPrefix      = "message:conversation:"
)
