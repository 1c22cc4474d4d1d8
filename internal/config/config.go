// Package config 提供应用程序的配置加载和管理功能
// 使用 TOML 格式的配置文件，支持多路径查找
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// MainConfig 主配置，包含应用基本信息
type MainConfig struct {
	AppName string `toml:"appName"` // 应用名称，用于日志标识等
	Host    string `toml:"host"`    // 服务器监听地址，如 "0.0.0.0"
	Port    int    `toml:"port"`    // 服务器监听端口，如 3000
}

// PostgresConfig PostgreSQL 数据库连接配置
type PostgresConfig struct {
	Host         string `toml:"host"`         // PostgreSQL 服务器地址
	Port         int    `toml:"port"`         // 端口，默认 5432
	User         string `toml:"user"`         // 数据库用户名
	Password     string `toml:"password"`     // 数据库密码
	DatabaseName string `toml:"databaseName"` // 数据库名称
	SslMode      string `toml:"sslMode"`      // sslmode，Neon 部署用 require

	// 连接池配置：所有并发请求共享一个有界连接池
	// 池耗尽时新请求排队等待连接，而不是直接失败
	MaxOpenConns    int           `toml:"maxOpenConns"`    // 最大打开连接数
	MaxIdleConns    int           `toml:"maxIdleConns"`    // 最大空闲连接数
	ConnMaxLifetime time.Duration `toml:"connMaxLifetime"` // 连接最大存活时间
}

// RedisConfig Redis 连接配置（验证码缓存）
type RedisConfig struct {
	Host     string `toml:"host"`     // Redis 服务器地址
	Port     int    `toml:"port"`     // Redis 端口，默认 6379
	Password string `toml:"password"` // Redis 密码，无密码留空
	Db       int    `toml:"db"`       // Redis 数据库编号，默认 0
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 日志文件存储目录
	FileName   string `toml:"fileName"`   // 日志文件名
	MaxSize    int    `toml:"maxSize"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"` // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`     // 保留旧日志文件的最大天数
	Level      string `toml:"level"`      // 日志级别：debug, info, warn, error
}

// ReelsConfig Reels 子系统配置
type ReelsConfig struct {
	MaxVideoSize    int64 `toml:"maxVideoSize"`    // 内联视频字节数上限，0 取默认 10MB
	DefaultDuration int   `toml:"defaultDuration"` // 未指定时长时的默认值（秒）
	DefaultLimit    int   `toml:"defaultLimit"`    // feed 默认每页条数
	SeedDemoData    bool  `toml:"seedDemoData"`    // 表为空时是否写入演示数据
}

// TlsConfig TLS 重定向配置
type TlsConfig struct {
	ForceHttps bool `toml:"forceHttps"` // 是否将 HTTP 请求重定向到 HTTPS
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig     `toml:"mainConfig"`
	PostgresConfig `toml:"postgresConfig"`
	RedisConfig    `toml:"redisConfig"`
	LogConfig      `toml:"logConfig"`
	ReelsConfig    `toml:"reelsConfig"`
	TlsConfig      `toml:"tlsConfig"`
}

// config 全局配置单例，延迟加载
var config *Config

// LoadConfig 从多个候选路径加载配置文件
// 按顺序尝试加载，找到第一个可用的配置文件即停止
func LoadConfig() error {
	paths := []string{
		"configs/config_local.toml",       // 本地开发配置（优先）
		"configs/config.toml",             // 默认配置
		"../../configs/config_local.toml", // 从子目录运行时的路径
		"../../configs/config.toml",
	}

	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			return nil
		}
	}

	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig 获取全局配置实例（单例模式）
// 首次调用时会自动加载配置文件
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig() // 忽略加载错误，使用默认值
	}
	return config
}
