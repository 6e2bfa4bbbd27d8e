package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/studytrack/internal/config"
	"github.com/studytrack/internal/db"
	"github.com/studytrack/internal/plan"
	"github.com/studytrack/internal/service"
)

// 模拟数据生成器：为前 N 天写入随机学习记录与习惯打卡，
// 方便在没有真实数据时预览仪表盘效果。
func main() {
	var days int
	flag.IntVar(&days, "days", 18, "生成模拟数据的天数")
	flag.Parse()

	if days < 1 || days > plan.TotalDays {
		log.Fatalf("days 必须在 1 和 %d 之间", plan.TotalDays)
	}

	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}
	if err := db.EnsureUser(cfg.DashboardUserName, cfg.DashboardPassword); err != nil {
		log.Fatal("初始化用户失败:", err)
	}

	store := service.NewGormStateStore(db.DB)
	ledger := service.NewLedgerService(store, cfg.ProgramStartDate)
	habits := service.NewHabitService(store)

	fmt.Printf("开始生成前 %d 天的模拟数据...\n", days)

	completedDays := 0
	for day := 1; day <= days; day++ {
		draft := mockDraft(day)
		if _, err := ledger.Upsert(draft); err != nil {
			log.Fatalf("写入第 %d 天记录失败: %v", day, err)
		}
		if draft.MinutesStudied >= service.DefaultCompletionThreshold {
			completedDays++
		}
		if err := mockHabits(habits, day, draft.Practiced); err != nil {
			log.Fatalf("写入第 %d 天习惯打卡失败: %v", day, err)
		}
	}

	fmt.Println("模拟数据生成完成！")
	fmt.Printf("记录: %d 天（其中完成 %d 天）\n", days, completedDays)
	fmt.Printf("用户: %s (密码: %s)\n", cfg.DashboardUserName, cfg.DashboardPassword)
}

// mockDraft 生成一天的学习草稿：约 88%% 的天数达到完成门槛，
// 分钟数围绕该阶段的计划时长浮动。
func mockDraft(day int) service.LogEntryDraft {
	phase := plan.PhaseForDay(day)

	minutes := 0
	vocab := 0
	practiced := make(map[string]bool)
	if rand.Float64() > 0.12 {
		minutes = phase.DailyMinutes - 10 + rand.Intn(21)
		if minutes < service.DefaultCompletionThreshold {
			minutes = service.DefaultCompletionThreshold
		}
		if minutes > service.MaxDailyMinutes {
			minutes = service.MaxDailyMinutes
		}
		vocab = 5 + rand.Intn(12)
		for _, skill := range phase.Skills {
			practiced[skill] = rand.Float64() > 0.3
		}
	}

	return service.LogEntryDraft{
		Day:            day,
		MinutesStudied: minutes,
		VocabLearned:   vocab,
		Practiced:      practiced,
		Notes:          fmt.Sprintf("第 %d 天模拟记录", day),
	}
}

// mockHabits 按当天练习情况随机勾选习惯清单。
func mockHabits(habits *service.HabitService, day int, practiced map[string]bool) error {
	if len(practiced) == 0 {
		return nil
	}
	catalog, err := habits.Catalog()
	if err != nil {
		return err
	}
	for _, habit := range catalog {
		if rand.Float64() > 0.35 {
			if _, err := habits.Toggle(day, habit.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
