package service

import (
	"testing"

	"github.com/studytrack/internal/plan"
)

// makeLedger 按完成与否构造台账并重算连续记录。
func makeLedger(completed ...bool) []LogEntry {
	entries := make([]LogEntry, 0, len(completed))
	for i, done := range completed {
		minutes := 5
		if done {
			minutes = 30
		}
		entries = append(entries, LogEntry{
			Day:            i + 1,
			Phase:          1,
			Completed:      done,
			MinutesStudied: minutes,
		})
	}
	recomputeStreaks(entries)
	return entries
}

func TestAggregateEmptyLedger(t *testing.T) {
	stats := Aggregate(nil)
	if stats.CompletedDays != 0 || stats.TotalMinutes != 0 || stats.TotalVocab != 0 {
		t.Fatalf("expected zero totals, got %+v", stats)
	}
	if stats.CurrentStreak != 0 || stats.LongestStreak != 0 {
		t.Fatalf("expected zero streaks, got %+v", stats)
	}
}

func TestAggregateStreaks(t *testing.T) {
	// 完成、完成、未完成：当前连续 0，最长连续 2
	entries := makeLedger(true, true, false)

	stats := Aggregate(entries)
	if stats.CurrentStreak != 0 {
		t.Fatalf("expected current streak 0, got %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 2 {
		t.Fatalf("expected longest streak 2, got %d", stats.LongestStreak)
	}
	if stats.CompletedDays != 2 {
		t.Fatalf("expected 2 completed days, got %d", stats.CompletedDays)
	}
}

func TestAggregateTotals(t *testing.T) {
	entries := []LogEntry{
		{Day: 1, Completed: true, MinutesStudied: 30, VocabLearned: 8, Streak: 1},
		{Day: 2, Completed: true, MinutesStudied: 45, VocabLearned: 12, Streak: 2},
	}

	stats := Aggregate(entries)
	if stats.TotalMinutes != 75 {
		t.Fatalf("expected 75 total minutes, got %d", stats.TotalMinutes)
	}
	if stats.TotalVocab != 20 {
		t.Fatalf("expected 20 total vocab, got %d", stats.TotalVocab)
	}
	if stats.CurrentStreak != 2 || stats.LongestStreak != 2 {
		t.Fatalf("unexpected streaks: %+v", stats)
	}
}

func TestStreakResetLaw(t *testing.T) {
	entries := makeLedger(true, true, false, true, true, true, false, true)

	for i, entry := range entries {
		var want int
		if entry.Completed {
			if i == 0 {
				want = 1
			} else {
				want = entries[i-1].Streak + 1
			}
		}
		if entry.Streak != want {
			t.Fatalf("entry %d: expected streak %d, got %d", i, want, entry.Streak)
		}
	}
}

func TestProgressForPhase(t *testing.T) {
	phase, ok := plan.PhaseByID(1)
	if !ok {
		t.Fatal("phase 1 missing")
	}

	entries := []LogEntry{
		{Day: 1, Phase: 1, Completed: true},
		{Day: 2, Phase: 1, Completed: false},
		{Day: 3, Phase: 1, Completed: true},
		{Day: 31, Phase: 2, Completed: true},
	}

	progress := ProgressForPhase(entries, phase)
	if progress.Completed != 2 {
		t.Fatalf("expected 2 completed, got %d", progress.Completed)
	}
	if progress.Total != 30 {
		t.Fatalf("expected total 30, got %d", progress.Total)
	}
	if progress.Percent != 7 {
		t.Fatalf("expected 7 percent, got %d", progress.Percent)
	}
}

func TestSkillProficiencyAverages(t *testing.T) {
	phase, ok := plan.PhaseByID(1)
	if !ok {
		t.Fatal("phase 1 missing")
	}

	entries := []LogEntry{
		{Day: 1, Phase: 1, Skills: map[string]int{"Grammar": 60, "Vocabulary": 70}},
		{Day: 2, Phase: 1, Skills: map[string]int{"Grammar": 80}},
		// 零分与缺失键都不计入平均
		{Day: 3, Phase: 1, Skills: map[string]int{"Grammar": 0}},
		// 其它阶段的记录不参与
		{Day: 31, Phase: 2, Skills: map[string]int{"Grammar": 10}},
	}

	scores := SkillProficiency(entries, phase)
	if len(scores) != len(phase.Skills) {
		t.Fatalf("expected %d scores, got %d", len(phase.Skills), len(scores))
	}

	byName := make(map[string]int, len(scores))
	for _, score := range scores {
		byName[score.Skill] = score.Value
	}

	if byName["Grammar"] != 70 {
		t.Fatalf("expected Grammar average 70, got %d", byName["Grammar"])
	}
	if byName["Vocabulary"] != 70 {
		t.Fatalf("expected Vocabulary average 70, got %d", byName["Vocabulary"])
	}
	if byName["Pronunciation"] != 0 {
		t.Fatalf("expected Pronunciation 0 without qualifying entries, got %d", byName["Pronunciation"])
	}
}

func TestCalendarProjectionLevels(t *testing.T) {
	entries := []LogEntry{
		{Day: 1, Completed: false, MinutesStudied: 5},
		{Day: 2, Completed: true, MinutesStudied: 14},
		{Day: 3, Completed: true, MinutesStudied: 15},
		{Day: 4, Completed: true, MinutesStudied: 29},
		{Day: 5, Completed: true, MinutesStudied: 30},
		{Day: 6, Completed: true, MinutesStudied: 44},
		{Day: 7, Completed: true, MinutesStudied: 45},
		{Day: 8, Completed: true, MinutesStudied: 90},
	}

	cells := CalendarProjection(entries, plan.TotalDays)
	if len(cells) != plan.TotalDays {
		t.Fatalf("expected %d cells, got %d", plan.TotalDays, len(cells))
	}

	wantLevels := []string{"level-0", "level-1", "level-2", "level-2", "level-3", "level-3", "level-4", "level-4"}
	for i, want := range wantLevels {
		if cells[i].Level != want {
			t.Fatalf("day %d: expected %s, got %s", i+1, want, cells[i].Level)
		}
	}

	for _, cell := range cells[len(entries):] {
		if cell.Level != "empty" {
			t.Fatalf("day %d: expected empty, got %s", cell.Day, cell.Level)
		}
	}
}

func TestCalendarProjectionCountsGaps(t *testing.T) {
	// 18 条记录散布在 90 天内，其余 72 格应为 empty
	entries := make([]LogEntry, 0, 18)
	for i := 0; i < 18; i++ {
		entries = append(entries, LogEntry{
			Day:            i*5 + 1,
			Completed:      i%3 != 0,
			MinutesStudied: 20 + i,
		})
	}

	cells := CalendarProjection(entries, plan.TotalDays)

	empty := 0
	for _, cell := range cells {
		if cell.Level == "empty" {
			empty++
		}
	}

	if got := len(cells) - empty; got != 18 {
		t.Fatalf("expected 18 filled cells, got %d", got)
	}
	if empty != 72 {
		t.Fatalf("expected 72 empty cells, got %d", empty)
	}
}
