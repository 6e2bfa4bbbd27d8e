package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/studytrack/internal/plan"
)

// ledgerStateKey 是台账在状态存储中的键，与浏览器端旧版保持一致以便数据迁移。
const ledgerStateKey = "spanishTrackerData"

const (
	// DefaultCompletionThreshold 为判定一天完成所需的最少学习分钟数。
	DefaultCompletionThreshold = 10
	// MaxDailyMinutes 为单日可记录的最大学习分钟数。
	MaxDailyMinutes = 90
	// MaxDailyVocab 为单日可记录的最大新词数。
	MaxDailyVocab = 30
)

// 默认评估器使用的分数区间：练习过的技能取高区间，未练习取低区间。
const (
	practicedScoreMin = 55
	practicedScoreMax = 80
	idleScoreMin      = 10
	idleScoreMax      = 25
)

var (
	// ErrInvalidDay 在天数小于 1 时返回
	ErrInvalidDay = errors.New("day must be at least 1")
	// ErrMinutesOutOfRange 在学习分钟数超出 [0, 90] 时返回
	ErrMinutesOutOfRange = errors.New("minutes studied out of range")
	// ErrVocabOutOfRange 在新词数超出 [0, 30] 时返回
	ErrVocabOutOfRange = errors.New("vocab learned out of range")
	// ErrEntryNotFound 在按天查找不到记录时返回
	ErrEntryNotFound = errors.New("log entry not found")
)

// LogEntry 是台账中一天的学习记录。
// Completed 与 Streak 均为推导字段，只能由引擎在变更边界重算，
// 对外的输入入口是不含这两个字段的 LogEntryDraft。
type LogEntry struct {
	Day            int            `json:"day"`
	Date           string         `json:"date"`
	Phase          int            `json:"phase"`
	Completed      bool           `json:"completed"`
	MinutesStudied int            `json:"minutesStudied"`
	VocabLearned   int            `json:"vocabLearned"`
	Skills         map[string]int `json:"skills"`
	Notes          string         `json:"notes"`
	Streak         int            `json:"streak"`
}

// LogEntryDraft 定义记录一天进度时可提交的字段。
// Practiced 标记当天练习过的技能，未出现的技能按未练习处理。
type LogEntryDraft struct {
	Day            int             `json:"day"`
	MinutesStudied int             `json:"minutesStudied"`
	VocabLearned   int             `json:"vocabLearned"`
	Practiced      map[string]bool `json:"practiced"`
	Notes          string          `json:"notes"`
}

// SkillAssessor 将「当天是否练习过」映射为一个 0-100 的熟练度分数。
// 默认实现带随机性，只保证练习过的分数高于未练习的区间；
// 测试或真实评估信号可通过 WithAssessor 替换。
type SkillAssessor func(practiced bool) int

// LedgerService 维护每日学习台账：插入、替换、删除，
// 并在每次变更后对全量台账重排、重算连续记录。
type LedgerService struct {
	store     StateStore
	startDate time.Time
	threshold int
	assess    SkillAssessor
}

// NewLedgerService 构造 LedgerService，startDate 为计划第 1 天对应的日期。
func NewLedgerService(store StateStore, startDate time.Time) *LedgerService {
	return &LedgerService{
		store:     store,
		startDate: startDate,
		threshold: DefaultCompletionThreshold,
		assess:    defaultAssessor,
	}
}

// WithCompletionThreshold 覆盖完成判定阈值，主要面向测试边界值场景。
func (s *LedgerService) WithCompletionThreshold(minutes int) *LedgerService {
	if minutes < 0 {
		return s
	}
	s.threshold = minutes
	return s
}

// WithAssessor 替换技能评分函数，传入 nil 时恢复默认实现。
func (s *LedgerService) WithAssessor(assess SkillAssessor) *LedgerService {
	if assess == nil {
		s.assess = defaultAssessor
		return s
	}
	s.assess = assess
	return s
}

// All 返回当前台账，按天数升序。
func (s *LedgerService) All() ([]LogEntry, error) {
	return s.loadLedger()
}

// Entry 返回指定天的记录，不存在时返回 ErrEntryNotFound。
func (s *LedgerService) Entry(day int) (*LogEntry, error) {
	entries, err := s.loadLedger()
	if err != nil {
		return nil, err
	}

	for i := range entries {
		if entries[i].Day == day {
			return &entries[i], nil
		}
	}
	return nil, ErrEntryNotFound
}

// Upsert 以草稿整体替换或追加一天的记录，随后重排并重算全量连续记录。
// 连续记录按台账中的位置顺延，因此改动早期某天会向后波及所有条目。
func (s *LedgerService) Upsert(draft LogEntryDraft) ([]LogEntry, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	entries, err := s.loadLedger()
	if err != nil {
		return nil, err
	}

	entry := s.buildEntry(draft)

	replaced := false
	for i := range entries {
		if entries[i].Day == entry.Day {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}

	sortLedger(entries)
	recomputeStreaks(entries)

	if err := s.saveLedger(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Remove 删除指定天的记录。天数不存在时是幂等空操作，台账保持不变。
func (s *LedgerService) Remove(day int) ([]LogEntry, error) {
	entries, err := s.loadLedger()
	if err != nil {
		return nil, err
	}

	filtered := entries[:0:0]
	for _, entry := range entries {
		if entry.Day != day {
			filtered = append(filtered, entry)
		}
	}

	if len(filtered) == len(entries) {
		return entries, nil
	}

	sortLedger(filtered)
	recomputeStreaks(filtered)

	if err := s.saveLedger(filtered); err != nil {
		return nil, err
	}
	return filtered, nil
}

// buildEntry 将草稿补全为完整条目：日期与阶段由天数推导，
// completed 由阈值判定，技能分数按所属阶段的技能清单逐一评估。
func (s *LedgerService) buildEntry(draft LogEntryDraft) LogEntry {
	phase := plan.PhaseForDay(draft.Day)

	skills := make(map[string]int, len(phase.Skills))
	for _, skill := range phase.Skills {
		skills[skill] = s.assess(draft.Practiced[skill])
	}

	return LogEntry{
		Day:            draft.Day,
		Date:           plan.DateForDay(s.startDate, draft.Day).Format("2006-01-02"),
		Phase:          phase.ID,
		Completed:      draft.MinutesStudied >= s.threshold,
		MinutesStudied: draft.MinutesStudied,
		VocabLearned:   draft.VocabLearned,
		Skills:         skills,
		Notes:          draft.Notes,
	}
}

func validateDraft(draft LogEntryDraft) error {
	if draft.Day < 1 {
		return ErrInvalidDay
	}
	if draft.MinutesStudied < 0 || draft.MinutesStudied > MaxDailyMinutes {
		return ErrMinutesOutOfRange
	}
	if draft.VocabLearned < 0 || draft.VocabLearned > MaxDailyVocab {
		return ErrVocabOutOfRange
	}
	return nil
}

func sortLedger(entries []LogEntry) {
	slices.SortFunc(entries, func(a, b LogEntry) int {
		return a.Day - b.Day
	})
}

// recomputeStreaks 按台账顺序重算连续完成计数：
// 完成的条目在前一条基础上加一，未完成的条目清零。
// 连续性以台账位置为准，缺失的中间天数不会打断链条。
func recomputeStreaks(entries []LogEntry) {
	streak := 0
	for i := range entries {
		if entries[i].Completed {
			streak++
		} else {
			streak = 0
		}
		entries[i].Streak = streak
	}
}

// loadLedger 读取并反序列化台账。
// 存储内容损坏时回退为空台账，而不是向上抛解析错误。
func (s *LedgerService) loadLedger() ([]LogEntry, error) {
	raw, ok, err := s.store.Get(ledgerStateKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []LogEntry{}, nil
	}

	var entries []LogEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []LogEntry{}, nil
	}
	return entries, nil
}

func (s *LedgerService) saveLedger(entries []LogEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	return s.store.Set(ledgerStateKey, string(raw))
}

func defaultAssessor(practiced bool) int {
	if practiced {
		return practicedScoreMin + rand.Intn(practicedScoreMax-practicedScoreMin)
	}
	return idleScoreMin + rand.Intn(idleScoreMax-idleScoreMin)
}
