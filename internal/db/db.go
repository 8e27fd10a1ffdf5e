package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultDatabasePath 是未配置 DATABASE_URL 时使用的本地 SQLite 文件。
const DefaultDatabasePath = "data/sitedeck.db"

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

// Init 打开数据库连接并执行自动迁移。
// dsn 以 postgres:// 或 mysql:// 开头时使用对应驱动，其余情况视为 SQLite 文件路径。
func Init(dsn string, logLevel logger.LogLevel) error {
	gdb, err := Open(dsn, logLevel)
	if err != nil {
		return err
	}

	if err := Migrate(gdb); err != nil {
		return err
	}

	DB = gdb
	return nil
}

// Open 根据 DSN 选择方言并建立连接，不做迁移。
func Open(dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	dialector, err := dialectorFor(dsn)
	if err != nil {
		return nil, err
	}
	return gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logLevel)})
}

// Migrate 为文档与管理员账号建表
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&Document{}, &User{})
}

func dialectorFor(dsn string) (gorm.Dialector, error) {
	value := strings.TrimSpace(dsn)
	lower := strings.ToLower(value)

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return postgres.Open(value), nil
	case strings.HasPrefix(lower, "mysql://"):
		return mysql.Open(value[len("mysql://"):]), nil
	}

	if value == "" {
		value = DefaultDatabasePath
	}
	if !strings.HasPrefix(lower, "file:") {
		if err := ensureParentDir(value); err != nil {
			return nil, err
		}
	}
	return sqlite.Open(value), nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
