// Package postgres 提供数据访问层的初始化
// 负责建立 PostgreSQL 连接、自动迁移表结构、初始化 Repository 层
package postgres

import (
	"fmt"

	"coolpep_server/internal/config"
	"coolpep_server/internal/dao/postgres/repository"
	"coolpep_server/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init 初始化数据库连接和 Repository 层
// 执行步骤：
//  1. 从配置读取 PostgreSQL 连接信息
//  2. 使用 GORM 建立数据库连接并设置有界连接池
//  3. 执行 AutoMigrate 自动迁移表结构（幂等、只增不删）
//  4. 表为空且开启 seedDemoData 时写入演示数据
//
// 数据库不可达时不终止进程：返回错误，由调用方降级运行
// （feed/health 等读接口改用内置演示数据应答）
func Init() (*repository.Repositories, error) {
	conf := config.GetConfig()

	// 构建 PostgreSQL DSN 连接字符串
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		conf.PostgresConfig.Host,
		conf.PostgresConfig.User,
		conf.PostgresConfig.Password,
		conf.PostgresConfig.DatabaseName,
		conf.PostgresConfig.Port,
		sslMode(conf.PostgresConfig.SslMode),
	)

	// TranslateError: 将驱动错误翻译为 gorm.ErrDuplicatedKey 等统一错误
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	// 有界连接池：池耗尽时请求排队等待，而不是立刻失败
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	if conf.PostgresConfig.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.PostgresConfig.MaxOpenConns)
	}
	if conf.PostgresConfig.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.PostgresConfig.MaxIdleConns)
	}
	if conf.PostgresConfig.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(conf.PostgresConfig.ConnMaxLifetime)
	}

	// AutoMigrate 自动迁移表结构
	// 表不存在则创建，列缺失则补列，已有列和数据不会被删除
	// 对旧版 reels 表（缺 likes_count/views_count 等计数列）等价于 "add column if not exists"
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	repos := repository.NewRepositories(db)

	// 可选：表为空时写入演示数据
	if conf.ReelsConfig.SeedDemoData {
		if err := seedDemoData(db); err != nil {
			// 演示数据失败不致命，记录后继续
			zap.L().Warn("seed demo data failed", zap.Error(err))
		}
	}

	return repos, nil
}

// Migrate 对全部实体执行幂等迁移
// 每条语句独立幂等，可与线上流量并发执行，也可每次启动重复执行
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Friend{},
		&model.Community{},
		&model.CommunityMember{},
		&model.CommunityMessage{},
		&model.PrivateMessage{},
		&model.Reel{},
		&model.ReelLike{},
		&model.Post{},
		&model.LoveChat{},
		&model.LoveMessage{},
	)
}

func sslMode(mode string) string {
	if mode == "" {
		return "disable"
	}
	return mode
}
