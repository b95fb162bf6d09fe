package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"plughub/internal/db"
	"plughub/internal/model"
	"plughub/pkg/snowflake"

	_ "modernc.org/sqlite"
)

// snowflakeOnce 确保 snowflake 在所有并行测试中只初始化一次
var snowflakeOnce sync.Once

// NewTestDB 创建内存 SQLite 数据库并执行所有迁移
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// 线程安全地只初始化一次 snowflake
	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			// sync.Once 内无法使用 t.Fatalf，改用 panic
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// 使用共享缓存模式以支持内存数据库的并发访问
	// 每个测试使用唯一的数据库名称以避免冲突
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// ptrVal 将指针转换为 interface{}，nil 指针返回 nil
func ptrVal[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

// SeedPlugin 插入测试插件数据并返回其 ID
func SeedPlugin(t *testing.T, db *sql.DB, plugin model.Plugin) int64 {
	t.Helper()

	if plugin.ID == 0 {
		plugin.ID = snowflake.NextID()
	}
	if plugin.Name == "" {
		plugin.Name = fmt.Sprintf("plugin-%d", plugin.ID)
	}
	if plugin.Version == "" {
		plugin.Version = "1.0.0"
	}
	if plugin.FilePath == "" {
		plugin.FilePath = fmt.Sprintf("artifacts/%d.zip", plugin.ID)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO plugins (id, name, version, description, file_path, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		plugin.ID, plugin.Name, plugin.Version, ptrVal(plugin.Description), plugin.FilePath, now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed plugin: %v", err)
	}

	return plugin.ID
}

// SeedDownloadEvent 插入测试下载事件数据并返回其 ID
func SeedDownloadEvent(t *testing.T, db *sql.DB, event model.DownloadEvent) int64 {
	t.Helper()

	if event.ID == 0 {
		event.ID = snowflake.NextID()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO download_events (id, plugin_id, user_id, address_key, occurred_at) VALUES (?, ?, ?, ?, ?)`,
		event.ID, event.PluginID, ptrVal(event.UserID), ptrVal(event.AddressKey), event.OccurredAt.UTC().Unix(),
	)
	if err != nil {
		t.Fatalf("failed to seed download event: %v", err)
	}

	return event.ID
}
