package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/studytrack/internal/plan"
)

const (
	customHabitsStateKey = "custom_habits"
	habitDayKeyPrefix    = "habits_day_"
)

// 习惯分类，默认目录覆盖前三类，用户自建的固定为 custom。
const (
	HabitCategoryCore      = "core"
	HabitCategoryImmersion = "immersion"
	HabitCategoryPractice  = "practice"
	HabitCategoryCustom    = "custom"
)

var (
	// ErrHabitLabelRequired 在自定义习惯名称为空时返回
	ErrHabitLabelRequired = errors.New("habit label is required")
	// ErrHabitIDRequired 在打卡缺少习惯 id 时返回
	ErrHabitIDRequired = errors.New("habit id is required")
)

// Habit 是习惯目录中的一项。默认习惯不可变更，自定义习惯可增删。
type Habit struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

// HabitSummary 汇总某天打卡完成情况。
type HabitSummary struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

var defaultHabits = []Habit{
	{ID: "flashcards", Label: "Vocabulary flashcards (new + review)", Icon: "📇", Category: HabitCategoryCore},
	{ID: "grammar", Label: "Grammar exercise or lesson", Icon: "📝", Category: HabitCategoryCore},
	{ID: "pronunciation", Label: "Pronunciation / shadowing practice", Icon: "🎙️", Category: HabitCategoryCore},
	{ID: "listening", Label: "Listening comprehension (podcast/video)", Icon: "🎧", Category: HabitCategoryImmersion},
	{ID: "speaking", Label: "Speaking practice (record or partner)", Icon: "🗣️", Category: HabitCategoryImmersion},
	{ID: "reading", Label: "Read something in Spanish", Icon: "📖", Category: HabitCategoryImmersion},
	{ID: "writing", Label: "Write in Spanish (journal, email, etc.)", Icon: "✍️", Category: HabitCategoryPractice},
	{ID: "review", Label: "Review yesterday's material", Icon: "🔄", Category: HabitCategoryPractice},
}

// DefaultHabits 返回固定习惯目录的副本。
func DefaultHabits() []Habit {
	return append([]Habit(nil), defaultHabits...)
}

// HabitService 维护两份独立状态：按天存储的打卡记录，
// 以及用户自定义的习惯目录。打卡记录天与天之间互不关联，独立读写。
type HabitService struct {
	store     StateStore
	totalDays int
}

// NewHabitService 构造 HabitService。
func NewHabitService(store StateStore) *HabitService {
	return &HabitService{store: store, totalDays: plan.TotalDays}
}

// Record 返回某天的打卡记录，尚未打卡时返回全空记录。
func (s *HabitService) Record(day int) (map[string]bool, error) {
	if day < 1 {
		return nil, ErrInvalidDay
	}
	return s.loadRecord(day)
}

// Toggle 翻转某天某个习惯的勾选状态并持久化该天的记录。
// 只写入当天的键，不触发其它天或台账的任何重算。
func (s *HabitService) Toggle(day int, habitID string) (map[string]bool, error) {
	if day < 1 {
		return nil, ErrInvalidDay
	}

	id := strings.TrimSpace(habitID)
	if id == "" {
		return nil, ErrHabitIDRequired
	}

	record, err := s.loadRecord(day)
	if err != nil {
		return nil, err
	}

	record[id] = !record[id]

	if err := s.saveRecord(day, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Catalog 返回完整习惯目录：默认习惯在前，自定义习惯在后。
func (s *HabitService) Catalog() ([]Habit, error) {
	customs, err := s.CustomHabits()
	if err != nil {
		return nil, err
	}
	return append(DefaultHabits(), customs...), nil
}

// CustomHabits 返回用户自定义的习惯目录。
func (s *HabitService) CustomHabits() ([]Habit, error) {
	raw, ok, err := s.store.Get(customHabitsStateKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []Habit{}, nil
	}

	var habits []Habit
	if err := json.Unmarshal([]byte(raw), &habits); err != nil {
		return []Habit{}, nil
	}
	return habits, nil
}

// AddCustomHabit 创建一条自定义习惯并追加到目录。
// 名称去除空白后为空时拒绝创建。
func (s *HabitService) AddCustomHabit(label string) (*Habit, error) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return nil, ErrHabitLabelRequired
	}

	habits, err := s.CustomHabits()
	if err != nil {
		return nil, err
	}

	habit := Habit{
		ID:       fmt.Sprintf("custom_%s", uuid.New().String()),
		Label:    trimmed,
		Icon:     "⭐",
		Category: HabitCategoryCustom,
	}
	habits = append(habits, habit)

	if err := s.saveCustomHabits(habits); err != nil {
		return nil, err
	}
	return &habit, nil
}

// RemoveCustomHabit 从目录中移除自定义习惯，并清理所有天记录中对该 id 的引用。
// id 不在目录中时是幂等空操作。
func (s *HabitService) RemoveCustomHabit(id string) ([]Habit, error) {
	habits, err := s.CustomHabits()
	if err != nil {
		return nil, err
	}

	filtered := habits[:0:0]
	for _, habit := range habits {
		if habit.ID != id {
			filtered = append(filtered, habit)
		}
	}

	if len(filtered) == len(habits) {
		return habits, nil
	}

	if err := s.saveCustomHabits(filtered); err != nil {
		return nil, err
	}

	if err := s.pruneHabitRecords(id); err != nil {
		return nil, err
	}
	return filtered, nil
}

// Summary 统计某天的完成数、总数与百分比。
// completed 只计入当前目录内仍存在的习惯，total 为 0 时百分比取 0。
func (s *HabitService) Summary(day int) (HabitSummary, error) {
	record, err := s.Record(day)
	if err != nil {
		return HabitSummary{}, err
	}

	catalog, err := s.Catalog()
	if err != nil {
		return HabitSummary{}, err
	}

	known := make(map[string]bool, len(catalog))
	for _, habit := range catalog {
		known[habit.ID] = true
	}

	summary := HabitSummary{Total: len(catalog)}
	for id, done := range record {
		if done && known[id] {
			summary.Completed++
		}
	}

	if summary.Total > 0 {
		summary.Percent = int(math.Round(float64(summary.Completed) / float64(summary.Total) * 100))
	}
	return summary, nil
}

// pruneHabitRecords 遍历计划内的每一天，将被删习惯的勾选项从已有记录中剔除。
// 天数上限固定，逐天检查的成本可接受；未引用该 id 的天跳过写入。
func (s *HabitService) pruneHabitRecords(id string) error {
	for day := 1; day <= s.totalDays; day++ {
		record, err := s.loadRecord(day)
		if err != nil {
			return err
		}

		if _, exists := record[id]; !exists {
			continue
		}

		delete(record, id)
		if err := s.saveRecord(day, record); err != nil {
			return err
		}
	}
	return nil
}

// loadRecord 读取某天的打卡记录，缺失或内容损坏时回退为全空记录。
func (s *HabitService) loadRecord(day int) (map[string]bool, error) {
	raw, ok, err := s.store.Get(habitDayKey(day))
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return map[string]bool{}, nil
	}

	var record map[string]bool
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return map[string]bool{}, nil
	}
	if record == nil {
		record = map[string]bool{}
	}
	return record, nil
}

func (s *HabitService) saveRecord(day int, record map[string]bool) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode habit record: %w", err)
	}
	return s.store.Set(habitDayKey(day), string(raw))
}

func (s *HabitService) saveCustomHabits(habits []Habit) error {
	raw, err := json.Marshal(habits)
	if err != nil {
		return fmt.Errorf("encode custom habits: %w", err)
	}
	return s.store.Set(customHabitsStateKey, string(raw))
}

func habitDayKey(day int) string {
	return fmt.Sprintf("%s%d", habitDayKeyPrefix, day)
}
