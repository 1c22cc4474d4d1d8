package reels

import (
	"time"

	"coolpep_server/internal/dto/respond"
)

// demoEntry 内置演示 Reel：对外形态 + 视频远程地址
// 存储不可用时 feed 用它保证可用性，id 带 demo- 前缀以便识别
type demoEntry struct {
	reel     respond.ReelRespond
	videoUrl string
}

// 内容与数据库演示数据同一组素材，但 id 空间不同，
// 保证与真实行永远不会混淆
func demoEntries() []demoEntry {
	now := time.Now()
	return []demoEntry{
		{
			reel: respond.ReelRespond{
				Id:            "demo-1",
				UserId:        "11111111-1111-1111-1111-111111111111",
				VideoFilename: "big-buck-bunny.mp4",
				MimeType:      "video/mp4",
				Caption:       "Удивительные горные пейзажи Норвегии #путешествия #норвегия",
				Music:         "Эпичная музыка - Adventure",
				Duration:      15,
				LikesCount:    12500,
				ViewsCount:    89000,
				CreatedAt:     now.AddDate(0, 0, -3),
				UserName:      "Иван",
				UserAvatar:    "👤",
			},
			videoUrl: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
		},
		{
			reel: respond.ReelRespond{
				Id:            "demo-2",
				UserId:        "22222222-2222-2222-2222-222222222222",
				VideoFilename: "elephants-dream.mp4",
				MimeType:      "video/mp4",
				Caption:       "Приготовление идеального кофе дома ☕ #кофе #рецепт",
				Music:         "тренд • morning vibe",
				Duration:      15,
				LikesCount:    8700,
				ViewsCount:    45000,
				CreatedAt:     now.AddDate(0, 0, -9),
				UserName:      "Анна",
				UserAvatar:    "👤",
			},
			videoUrl: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
		},
		{
			reel: respond.ReelRespond{
				Id:            "demo-3",
				UserId:        "33333333-3333-3333-3333-333333333333",
				VideoFilename: "workout-video.mp4",
				MimeType:      "video/mp4",
				Caption:       "Тренировка на свежем воздухе 💪 #спорт #здоровье",
				Music:         "тренд • workout motivation",
				Duration:      15,
				LikesCount:    15600,
				ViewsCount:    120000,
				CreatedAt:     now.AddDate(0, 0, -17),
				UserName:      "Дмитрий",
				UserAvatar:    "👤",
			},
			videoUrl: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
		},
		{
			reel: respond.ReelRespond{
				Id:            "demo-4",
				UserId:        "44444444-4444-4444-4444-444444444444",
				VideoFilename: "digital-art.mp4",
				MimeType:      "video/mp4",
				Caption:       "Процесс создания цифрового арта ✨ #дизайн #арт",
				Music:         "оригинальный звук",
				Duration:      15,
				LikesCount:    23100,
				ViewsCount:    210000,
				CreatedAt:     now.AddDate(0, 0, -25),
				UserName:      "Мария",
				UserAvatar:    "👤",
			},
			videoUrl: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
		},
	}
}

// demoFeed 从演示集切一页，分页语义与真实 feed 一致
func demoFeed(page, limit int) *respond.FeedRespond {
	entries := demoEntries()
	total := int64(len(entries))

	start := (page - 1) * limit
	if start > len(entries) {
		start = len(entries)
	}
	end := start + limit
	if end > len(entries) {
		end = len(entries)
	}

	reels := make([]respond.ReelRespond, 0, end-start)
	for _, e := range entries[start:end] {
		reels = append(reels, e.reel)
	}
	return &respond.FeedRespond{
		Reels:      reels,
		Pagination: respond.Pagination{Page: page, Limit: limit, Total: total},
	}
}

// findDemo 按 id 查演示 Reel
func findDemo(id string) (demoEntry, bool) {
	for _, e := range demoEntries() {
		if e.reel.Id == id {
			return e, true
		}
	}
	return demoEntry{}, false
}
