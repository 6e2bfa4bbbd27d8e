package service

import (
	"reflect"
	"strings"
	"testing"

	"github.com/studytrack/internal/db"
)

func newTestHabitService(t *testing.T) *HabitService {
	t.Helper()
	return NewHabitService(NewGormStateStore(db.DB))
}

func TestHabitRecordDefaultsToEmpty(t *testing.T) {
	cleanup := setupStateTestDB(t)
	defer cleanup()

	svc := newTestHabitService(t)

	record, err := svc.Record(1)
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if len(record) != 0 {
		t.Fatalf("expected empty record, got %v", record)
	}

	if _, err := svc.Record(0); err != ErrInvalidDay {
		t.Fatalf("expected ErrInvalidDay, got %v", err)
	}
}

func TestHabitToggleFlipsAndPersists(t *testing.T) {
	cleanup := setupStateTestDB(t)
	defer cleanup()

	svc := newTestHabitService(t)

	record, err := svc.Toggle(3, "grammar")
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if !record["grammar"] {
		t.Fatal("expected grammar to be checked")
	}

	record, err = svc.Toggle(3, "grammar")
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if record["grammar"] {
		t.Fatal("expected grammar to be unchecked after second toggle")
	}

	// 天与天的记录互相独立
	other, err := svc.Record(4)
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected day 4 untouched, got %v", other)
	}

	if _, err := svc.Toggle(3, "  "); err != ErrHabitIDRequired {
		t.Fatalf("expected ErrHabitIDRequired, got %v", err)
	}
}

func TestHabitAddCustom(t *testing.T) {
	cleanup := setupStateTestDB(t)
	defer cleanup()

	svc := newTestHabitService(t)

	if _, err := svc.AddCustomHabit("   "); err != ErrHabitLabelRequired {
		t.Fatalf("expected ErrHabitLabelRequired, got %v", err)
	}

	habit, err := svc.AddCustomHabit("  Practicar con Duolingo  ")
	if err != nil {
		t.Fatalf("AddCustomHabit returned error: %v", err)
	}
	if habit.Label != "Practicar con Duolingo" {
		t.Fatalf("expected trimmed label, got %q", habit.Label)
	}
	if habit.Category != HabitCategoryCustom {
		t.Fatalf("expected category custom, got %s", habit.Category)
	}
	if !strings.HasPrefix(habit.ID, "custom_") {
		t.Fatalf("expected custom_ id prefix, got %s", habit.ID)
	}

	catalog, err := svc.Catalog()
	if err != nil {
		t.Fatalf("Catalog returned error: %v", err)
	}
	if len(catalog) != len(defaultHabits)+1 {
		t.Fatalf("expected %d habits, got %d", len(defaultHabits)+1, len(catalog))
	}
	if catalog[len(catalog)-1].ID != habit.ID {
		t.Fatal("expected custom habit appended after defaults")
	}
}

func TestHabitRemoveCustomPrunesAllDays(t *testing.T) {
	cleanup := setupStateTestDB(t)
	defer cleanup()

	svc := newTestHabitService(t)

	habit, err := svc.AddCustomHabit("Ver una serie en español")
	if err != nil {
		t.Fatalf("AddCustomHabit returned error: %v", err)
	}

	// 在多个天打卡后删除，引用应被全部清理
	for _, day := range []int{3, 7, 42} {
		if _, err := svc.Toggle(day, habit.ID); err != nil {
			t.Fatalf("Toggle day %d returned error: %v", day, err)
		}
		if _, err := svc.Toggle(day, "grammar"); err != nil {
			t.Fatalf("Toggle day %d returned error: %v", day, err)
		}
	}

	remaining, err := svc.RemoveCustomHabit(habit.ID)
	if err != nil {
		t.Fatalf("RemoveCustomHabit returned error: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected empty custom catalog, got %v", remaining)
	}

	for _, day := range []int{3, 7, 42} {
		record, err := svc.Record(day)
		if err != nil {
			t.Fatalf("Record day %d returned error: %v", day, err)
		}
		if _, exists := record[habit.ID]; exists {
			t.Fatalf("day %d still references removed habit", day)
		}
		if !record["grammar"] {
			t.Fatalf("day %d lost unrelated habit state", day)
		}
	}
}

func TestHabitRemoveUnknownIDIsNoop(t *testing.T) {
	cleanup := setupStateTestDB(t)
	defer cleanup()

	svc := newTestHabitService(t)

	if _, err := svc.AddCustomHabit("Escribir un diario"); err != nil {
		t.Fatalf("AddCustomHabit returned error: %v", err)
	}
	before, err := svc.CustomHabits()
	if err != nil {
		t.Fatalf("CustomHabits returned error: %v", err)
	}

	after, err := svc.RemoveCustomHabit("custom_no-such-id")
	if err != nil {
		t.Fatalf("RemoveCustomHabit returned error: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("expected catalog unchanged, got %v", after)
	}
}

func TestHabitSummary(t *testing.T) {
	cleanup := setupStateTestDB(t)
	defer cleanup()

	svc := newTestHabitService(t)

	for _, id := range []string{"grammar", "reading", "review"} {
		if _, err := svc.Toggle(5, id); err != nil {
			t.Fatalf("Toggle returned error: %v", err)
		}
	}

	summary, err := svc.Summary(5)
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if summary.Completed != 3 || summary.Total != len(defaultHabits) {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	// round(3/8*100) = 38
	if summary.Percent != 38 {
		t.Fatalf("expected 38 percent, got %d", summary.Percent)
	}

	// 记录中残留的未知 id 不计入完成数
	if _, err := svc.Toggle(5, "custom_orphaned"); err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	summary, err = svc.Summary(5)
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if summary.Completed != 3 {
		t.Fatalf("expected orphaned id to be clipped, got %+v", summary)
	}

	// 未打卡的天给出零摘要
	summary, err = svc.Summary(60)
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if summary.Completed != 0 || summary.Percent != 0 {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}

func TestHabitCorruptStateFallsBack(t *testing.T) {
	cleanup := setupStateTestDB(t)
	defer cleanup()

	store := NewGormStateStore(db.DB)
	if err := store.Set(customHabitsStateKey, "[broken"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := store.Set(habitDayKey(2), "{broken"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	svc := NewHabitService(store)

	habits, err := svc.CustomHabits()
	if err != nil {
		t.Fatalf("CustomHabits returned error: %v", err)
	}
	if len(habits) != 0 {
		t.Fatalf("expected empty catalog fallback, got %v", habits)
	}

	record, err := svc.Record(2)
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if len(record) != 0 {
		t.Fatalf("expected empty record fallback, got %v", record)
	}
}
