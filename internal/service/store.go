package service

import (
	"errors"
	"fmt"

	"github.com/studytrack/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateStore 抽象进度状态的键值存取，屏蔽具体存储介质。
// 引擎只依赖该接口，便于在测试或迁移场景替换实现。
type StateStore interface {
	// Get 返回键对应的值，第二个返回值标识键是否存在。
	Get(key string) (string, bool, error)
	// Set 写入键值，键已存在时覆盖旧值。
	Set(key, value string) error
}

// GormStateStore 基于 tracker_states 表实现 StateStore。
type GormStateStore struct {
	db *gorm.DB
}

// NewGormStateStore 构造 GormStateStore。
func NewGormStateStore(gdb *gorm.DB) *GormStateStore {
	return &GormStateStore{db: gdb}
}

// Get 读取指定键的状态值。
func (s *GormStateStore) Get(key string) (string, bool, error) {
	var record db.TrackerState
	if err := s.db.Where("key = ?", key).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("load state %s: %w", key, err)
	}
	return record.Value, true, nil
}

// Set 写入状态值，键冲突时原地更新。
func (s *GormStateStore) Set(key, value string) error {
	record := db.TrackerState{Key: key, Value: value}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&record).Error; err != nil {
		return fmt.Errorf("save state %s: %w", key, err)
	}
	return nil
}
