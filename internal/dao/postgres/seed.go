package postgres

import (
	"time"

	"coolpep_server/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// seedDemoData 表为空时写入演示用户和演示 Reels
// 与线上库的初始化脚本保持同一组固定数据，手机号冲突时静默跳过
func seedDemoData(db *gorm.DB) error {
	var userCnt int64
	if err := db.Model(&model.User{}).Count(&userCnt).Error; err != nil {
		return err
	}
	if userCnt == 0 {
		users := []model.User{
			{Id: "11111111-1111-1111-1111-111111111111", Phone: "+79991234567", Name: "Иван", Surname: "Иванов", Bio: "Люблю путешествия и спорт", Gender: "male"},
			{Id: "22222222-2222-2222-2222-222222222222", Phone: "+79997654321", Name: "Анна", Surname: "Петрова", Bio: "Кофеман и дизайнер", Gender: "female"},
			{Id: "33333333-3333-3333-3333-333333333333", Phone: "+79995556677", Name: "Дмитрий", Surname: "Сидоров", Bio: "Фитнес тренер", Gender: "male"},
			{Id: "44444444-4444-4444-4444-444444444444", Phone: "+79998889900", Name: "Мария", Surname: "Козлова", Bio: "Художник и иллюстратор", Gender: "female"},
		}
		for _, u := range users {
			if err := db.Create(&u).Error; err != nil {
				zap.L().Warn("seed user skipped", zap.String("phone", u.Phone), zap.Error(err))
			}
		}
		zap.L().Info("demo users seeded")
	}

	var reelCnt int64
	if err := db.Model(&model.Reel{}).Count(&reelCnt).Error; err != nil {
		return err
	}
	if reelCnt == 0 {
		now := time.Now()
		reels := []model.Reel{
			{
				Id:            "aaaaaaaa-0000-0000-0000-000000000001",
				UserId:        "11111111-1111-1111-1111-111111111111",
				VideoData:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
				VideoFilename: "big-buck-bunny.mp4",
				MimeType:      "video/mp4",
				Caption:       "Удивительные горные пейзажи Норвегии #путешествия #норвегия",
				Music:         "Эпичная музыка - Adventure",
				LikesCount:    12500,
				ViewsCount:    89000,
				CreatedAt:     now.AddDate(0, 0, -3),
			},
			{
				Id:            "aaaaaaaa-0000-0000-0000-000000000002",
				UserId:        "22222222-2222-2222-2222-222222222222",
				VideoData:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
				VideoFilename: "elephants-dream.mp4",
				MimeType:      "video/mp4",
				Caption:       "Приготовление идеального кофе дома ☕ #кофе #рецепт",
				Music:         "тренд • morning vibe",
				LikesCount:    8700,
				ViewsCount:    45000,
				CreatedAt:     now.AddDate(0, 0, -9),
			},
			{
				Id:            "aaaaaaaa-0000-0000-0000-000000000003",
				UserId:        "33333333-3333-3333-3333-333333333333",
				VideoData:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
				VideoFilename: "workout-video.mp4",
				MimeType:      "video/mp4",
				Caption:       "Тренировка на свежем воздухе 💪 #спорт #здоровье",
				Music:         "тренд • workout motivation",
				LikesCount:    15600,
				ViewsCount:    120000,
				CreatedAt:     now.AddDate(0, 0, -17),
			},
			{
				Id:            "aaaaaaaa-0000-0000-0000-000000000004",
				UserId:        "44444444-4444-4444-4444-444444444444",
				VideoData:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
				VideoFilename: "digital-art.mp4",
				MimeType:      "video/mp4",
				Caption:       "Процесс создания цифрового арта ✨ #дизайн #арт",
				Music:         "оригинальный звук",
				LikesCount:    23100,
				ViewsCount:    210000,
				CreatedAt:     now.AddDate(0, 0, -25),
			},
		}
		for _, r := range reels {
			if err := db.Create(&r).Error; err != nil {
				zap.L().Warn("seed reel skipped", zap.String("id", r.Id), zap.Error(err))
			}
		}
		zap.L().Info("demo reels seeded")
	}

	return nil
}
