package constants

import "time"

const (
	MAX_VIDEO_SIZE        = 10 * 1024 * 1024 // 内联视频最大字节数 (10MB)
	DEFAULT_REEL_DURATION = 15               // Reel 默认时长（秒）
	DEFAULT_FEED_PAGE     = 1                // 默认页码
	DEFAULT_FEED_LIMIT    = 10               // 默认每页条数
	SEARCH_RESULT_CAP     = 20               // 搜索结果上限
	MESSAGE_LIST_CAP      = 50               // 消息列表上限
	POST_FEED_CAP         = 20               // 帖子列表上限

	VERIFICATION_CODE     = "1234"            // 固定验证码（无短信网关）
	VERIFICATION_CODE_TTL = 10 * time.Minute  // 验证码缓存有效期

	DEMO_REEL_PREFIX = "demo-" // 降级模式下内置 Reel 的 id 前缀

	// EMPTY_CALLER_ID 匿名访客的占位 id，保证 is_liked 子查询恒为 false
	EMPTY_CALLER_ID = "00000000-0000-0000-0000-000000000000"

	// 上传者信息缺失时的占位字段
	PLACEHOLDER_USER_NAME = "Пользователь"
	PLACEHOLDER_AVATAR    = "👤"

	// 社区成员角色
	ROLE_ADMIN     = "admin"
	ROLE_MODERATOR = "moderator"
	ROLE_MEMBER    = "member"

	// 好友请求初始状态
	FRIEND_STATUS_PENDING = "pending"
)
