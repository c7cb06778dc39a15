package consts

const (
	UserProfileKey  = "user:profile:"
	VideoDetailKey  = "video:detail:"
	UnreadCountKey  = "notify:unread:"
)

const (
	RecountLock        = "lock:recount:"
	EngagementRateLock = "lock:engagement:rate:"
)
