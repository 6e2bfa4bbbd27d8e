package db

import "gorm.io/gorm"

// TrackerState 以键值对形式存储进度面板的全部领域状态。
// 台账、每日打卡记录与自定义习惯目录各占一个独立的键，
// 值统一为 JSON 文本，结构由 service 层负责编解码。
type TrackerState struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName 自定义表名以保持命名一致。
func (TrackerState) TableName() string {
	return "tracker_states"
}
