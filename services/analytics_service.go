package services

import (
	"context"
	"errors"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type AnalyticsService struct {
	db *gorm.DB
	ai *GeminiService
}

func NewAnalyticsService(db *gorm.DB, ai *GeminiService) *AnalyticsService {
	return &AnalyticsService{db: db, ai: ai}
}

// ---------- Aggregation core ----------

// sumLogsForDay sums consumedFactor × per-100-unit nutrients over every
// entry logged on the same calendar day. No matches yields the zero vector.
func sumLogsForDay(logs []models.FoodLogEntry, day time.Time) (models.NutrientVector, []models.FoodLogEntry) {
	var sum models.NutrientVector
	matched := []models.FoodLogEntry{}
	for _, entry := range logs {
		if !utils.SameCalendarDay(entry.Date, day) {
			continue
		}
		factor := (entry.Quantity * entry.FoodItem.ServingQuantity) / 100.0
		sum.AddScaled(entry.FoodItem.Nutrients, factor)
		matched = append(matched, entry)
	}
	return sum, matched
}

func (s *AnalyticsService) loadLogs(ctx context.Context, userID uint) ([]models.FoodLogEntry, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	var logs []models.FoodLogEntry
	err := s.db.WithContext(ctx).
		Preload("FoodItem").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&logs).Error
	return logs, err
}

// ---------- Single day ----------

type SingleDayReport struct {
	Date        string                `json:"date"`
	Percentages models.NutrientVector `json:"result_percentage"`
}

// SingleDay returns percentage-of-goal for one calendar day. It requires a
// current goal; aggregation itself never does.
func (s *AnalyticsService) SingleDay(ctx context.Context, userID uint, date time.Time) (*SingleDayReport, error) {
	goal, err := CurrentGoal(userID)
	if err != nil {
		return nil, err
	}

	logs, err := s.loadLogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary, _ := sumLogsForDay(logs, date)
	return &SingleDayReport{
		Date:        date.Format("2006-01-02"),
		Percentages: summary.PercentOf(goal.Targets),
	}, nil
}

// ---------- Monthly ----------

type DailyLog struct {
	Date      string                `json:"date"`
	DayOfWeek string                `json:"dayOfWeek,omitempty"`
	Logs      []models.FoodLogEntry `json:"logs"`
	Summary   models.NutrientVector `json:"summary"`

	Percentages *models.NutrientVector `json:"percentages,omitempty"`
}

type MonthlyReport struct {
	Year      int        `json:"year"`
	Month     int        `json:"month"`
	DailyLogs []DailyLog `json:"dailyLogs"`
}

// Monthly aggregates every calendar day of the month, using the real day
// count for that month and year.
func (s *AnalyticsService) Monthly(ctx context.Context, userID uint, year, month int) (*MonthlyReport, error) {
	logs, err := s.loadLogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	days := utils.DaysInMonth(year, month)
	dailyLogs := make([]DailyLog, 0, days)
	for day := 1; day <= days; day++ {
		current := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
		summary, matched := sumLogsForDay(logs, current)
		dailyLogs = append(dailyLogs, DailyLog{
			Date:    current.Format("2006-01-02"),
			Logs:    matched,
			Summary: summary,
		})
	}

	return &MonthlyReport{Year: year, Month: month, DailyLogs: dailyLogs}, nil
}

// ---------- Weekly ----------

type GoalEcho struct {
	PrimaryGoals []string              `json:"primary_goals"`
	Targets      models.NutrientVector `json:"targets"`
}

type WeeklyReport struct {
	StartDate string     `json:"startDate"`
	EndDate   string     `json:"endDate"`
	DailyLogs []DailyLog `json:"dailyLogs"`

	WeeklyTotals             models.NutrientVector `json:"weeklyTotals"`
	WeeklyAverages           models.NutrientVector `json:"weeklyAverages"`
	WeeklyAveragePercentages models.NutrientVector `json:"weeklyAveragePercentages"`

	Goal          *GoalEcho `json:"goal,omitempty"`
	AISuggestions *string   `json:"aiSuggestions"`
}

// Weekly aggregates 7 consecutive days starting at start. A missing current
// goal zeroes the percentage fields but never blocks the report; the AI
// narrative is best-effort and its failure never aborts the response.
func (s *AnalyticsService) Weekly(ctx context.Context, userID uint, start time.Time) (*WeeklyReport, error) {
	goal, err := CurrentGoal(userID)
	if err != nil {
		if !errors.Is(err, ErrNoCurrentGoal) {
			return nil, err
		}
		goal = nil
	}

	logs, err := s.loadLogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	var totals models.NutrientVector
	dailyLogs := make([]DailyLog, 0, 7)
	for offset := 0; offset < 7; offset++ {
		current := start.AddDate(0, 0, offset)
		summary, matched := sumLogsForDay(logs, current)
		totals.Add(summary)

		day := DailyLog{
			Date:      current.Format("2006-01-02"),
			DayOfWeek: current.Weekday().String(),
			Logs:      matched,
			Summary:   summary,
		}
		if goal != nil {
			pct := summary.PercentOf(goal.Targets)
			day.Percentages = &pct
		}
		dailyLogs = append(dailyLogs, day)
	}

	averages := totals.Scale(1.0 / 7.0)

	report := &WeeklyReport{
		StartDate:      start.Format("2006-01-02"),
		EndDate:        start.AddDate(0, 0, 6).Format("2006-01-02"),
		DailyLogs:      dailyLogs,
		WeeklyTotals:   totals,
		WeeklyAverages: averages,
	}
	if goal != nil {
		report.WeeklyAveragePercentages = averages.PercentOf(goal.Targets)
		report.Goal = &GoalEcho{
			PrimaryGoals: goal.PrimaryGoalList(),
			Targets:      goal.Targets,
		}
	}

	if s.ai != nil {
		if suggestion := s.ai.WeeklyNarrative(ctx, averages, report.WeeklyAveragePercentages, goal); suggestion.Available {
			report.AISuggestions = &suggestion.Text
		}
	}

	return report, nil
}
