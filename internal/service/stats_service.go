package service

import (
	"math"

	"github.com/studytrack/internal/plan"
)

// minutesStudied 的热度分桶阈值，对应日历热力图的 level-1..level-4。
const (
	calendarBucketLow  = 15
	calendarBucketMid  = 30
	calendarBucketHigh = 45
)

// AggregateStats 汇总整个台账的聚合统计。
type AggregateStats struct {
	CompletedDays int `json:"completedDays"`
	TotalMinutes  int `json:"totalMinutes"`
	TotalVocab    int `json:"totalVocab"`
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
}

// PhaseProgress 描述某阶段的完成进度。
type PhaseProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

// SkillScore 是技能雷达图的一个数据点。
type SkillScore struct {
	Skill string `json:"skill"`
	Value int    `json:"value"`
}

// CalendarCell 是 90 格日历投影中的一格。
// Level 取值：empty（无记录）、level-0（有记录未完成）、
// level-1..level-4（完成，按学习分钟数分桶）。
type CalendarCell struct {
	Day   int    `json:"day"`
	Level string `json:"level"`
}

// Aggregate 将台账折叠为聚合统计。
// 当前连续数取最后一条的 streak，最长连续数取全量最大值，空台账均为 0。
func Aggregate(entries []LogEntry) AggregateStats {
	stats := AggregateStats{}

	for _, entry := range entries {
		if entry.Completed {
			stats.CompletedDays++
		}
		stats.TotalMinutes += entry.MinutesStudied
		stats.TotalVocab += entry.VocabLearned
		if entry.Streak > stats.LongestStreak {
			stats.LongestStreak = entry.Streak
		}
	}

	if len(entries) > 0 {
		stats.CurrentStreak = entries[len(entries)-1].Streak
	}
	return stats
}

// ProgressForPhase 统计属于该阶段且完成的天数占阶段总天数的比例。
func ProgressForPhase(entries []LogEntry, phase plan.Phase) PhaseProgress {
	progress := PhaseProgress{
		Total: phase.DayRange[1] - phase.DayRange[0] + 1,
	}

	for _, entry := range entries {
		if entry.Phase == phase.ID && entry.Completed {
			progress.Completed++
		}
	}

	if progress.Total > 0 {
		progress.Percent = int(math.Round(float64(progress.Completed) / float64(progress.Total) * 100))
	}
	return progress
}

// SkillProficiency 为阶段技能清单中的每个技能计算平均熟练度。
// 只统计属于该阶段且该技能有正分记录的条目，没有合格条目时取 0。
func SkillProficiency(entries []LogEntry, phase plan.Phase) []SkillScore {
	scores := make([]SkillScore, 0, len(phase.Skills))

	for _, skill := range phase.Skills {
		sum, count := 0, 0
		for _, entry := range entries {
			if entry.Phase != phase.ID {
				continue
			}
			if value, ok := entry.Skills[skill]; ok && value > 0 {
				sum += value
				count++
			}
		}

		value := 0
		if count > 0 {
			value = int(math.Round(float64(sum) / float64(count)))
		}
		scores = append(scores, SkillScore{Skill: skill, Value: value})
	}
	return scores
}

// CalendarProjection 将台账投影到 totalDays 格日历上。
// 没有记录的天标记为 empty，有记录的按完成情况与分钟数分级。
func CalendarProjection(entries []LogEntry, totalDays int) []CalendarCell {
	byDay := make(map[int]LogEntry, len(entries))
	for _, entry := range entries {
		byDay[entry.Day] = entry
	}

	cells := make([]CalendarCell, 0, totalDays)
	for day := 1; day <= totalDays; day++ {
		cells = append(cells, CalendarCell{Day: day, Level: calendarLevel(byDay, day)})
	}
	return cells
}

func calendarLevel(byDay map[int]LogEntry, day int) string {
	entry, ok := byDay[day]
	if !ok {
		return "empty"
	}

	switch {
	case !entry.Completed:
		return "level-0"
	case entry.MinutesStudied < calendarBucketLow:
		return "level-1"
	case entry.MinutesStudied < calendarBucketMid:
		return "level-2"
	case entry.MinutesStudied < calendarBucketHigh:
		return "level-3"
	default:
		return "level-4"
	}
}
