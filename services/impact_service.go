package services

import (
	"context"
	"math"
	"strings"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type ImpactService struct {
	db        *gorm.DB
	analytics *AnalyticsService
	inventory *InventoryService
}

func NewImpactService(db *gorm.DB, analytics *AnalyticsService, inventory *InventoryService) *ImpactService {
	return &ImpactService{db: db, analytics: analytics, inventory: inventory}
}

// ---------- Adherence scoring ----------

// symmetricScore scores a percentage-of-goal on a symmetric curve: full
// credit within ±10 of 100, linear decay to zero at a deviation of 60.
// Over- and under-target are penalized equally.
func symmetricScore(pct float64) float64 {
	dev := math.Abs(pct - 100)
	if dev <= 10 {
		return 1
	}
	if dev >= 60 {
		return 0
	}
	return 1 - (dev-10)/50
}

// sodiumScore is asymmetric: anything at or under target is free; above
// target it decays linearly to zero by 160%.
func sodiumScore(pct float64) float64 {
	if pct <= 100 {
		return 1
	}
	return clamp01(1 - (pct-100)/60)
}

// NutritionScore blends the calories/protein/fiber/sodium sub-scores into
// the 0–70 nutrition component. The remaining tracked nutrients do not feed
// the composite.
func NutritionScore(pct models.NutrientVector) float64 {
	composite := 0.4*clamp01(symmetricScore(pct.Calories)) +
		0.3*clamp01(symmetricScore(pct.Protein)) +
		0.2*clamp01(symmetricScore(pct.Fiber)) +
		0.1*clamp01(sodiumScore(pct.Sodium))
	return composite * 70
}

// WasteScore converts waste/warning ratios into the 0–30 component. An
// empty inventory scores the neutral 21 (0.7×30) rather than either
// extreme.
func WasteScore(counts WasteCounts) float64 {
	if counts.Total == 0 {
		return 0.7 * 30
	}
	wasteRatio := float64(counts.Wasted) / float64(counts.Total)
	warningRatio := float64(counts.Warning) / float64(counts.Total)
	return clamp01(1-(0.7*wasteRatio+0.3*warningRatio)) * 30
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ---------- Findings ----------

// impactRule is one threshold finding. Strength and improvement conditions
// are evaluated independently; every triggered rule contributes its
// message.
type impactRule struct {
	code     string
	strength bool
	applies  func(pct models.NutrientVector, counts WasteCounts) bool
	message  string
}

var impactRules = []impactRule{
	{
		code: "calories_on_target", strength: true,
		applies: func(p models.NutrientVector, _ WasteCounts) bool { return p.Calories >= 90 && p.Calories <= 110 },
		message: "Calorie intake is well aligned with your daily goal.",
	},
	{
		code: "protein_on_track", strength: true,
		applies: func(p models.NutrientVector, _ WasteCounts) bool { return p.Protein >= 90 },
		message: "Protein intake is on track.",
	},
	{
		code: "fiber_on_track", strength: true,
		applies: func(p models.NutrientVector, _ WasteCounts) bool { return p.Fiber >= 90 },
		message: "Fiber intake is on track.",
	},
	{
		code: "sodium_within_limit", strength: true,
		applies: func(p models.NutrientVector, _ WasteCounts) bool { return p.Sodium <= 100 },
		message: "Sodium stays within the recommended limit.",
	},
	{
		code: "zero_waste", strength: true,
		applies: func(_ models.NutrientVector, c WasteCounts) bool { return c.Total > 0 && c.Wasted == 0 },
		message: "No food in your inventory has gone to waste.",
	},
	{
		code: "calories_over",
		applies: func(p models.NutrientVector, _ WasteCounts) bool { return p.Calories > 110 },
		message: "Reduce portion sizes or pick lower-calorie options to move closer to your calorie goal.",
	},
	{
		code: "calories_under",
		applies: func(p models.NutrientVector, _ WasteCounts) bool { return p.Calories < 90 },
		message: "Increase your daily intake to reach your calorie goal.",
	},
	{
		code: "protein_low",
		applies: func(p models.NutrientVector, _ WasteCounts) bool { return p.Protein < 90 },
		message: "Add more protein-rich foods such as lentils, eggs or fish to your meals.",
	},
	{
		code: "fiber_low",
		applies: func(p models.NutrientVector, _ WasteCounts) bool { return p.Fiber < 90 },
		message: "Add more fiber from vegetables, fruits and whole grains.",
	},
	{
		code: "sodium_high",
		applies: func(p models.NutrientVector, _ WasteCounts) bool { return p.Sodium > 100 },
		message: "Cut back on salty and processed foods to lower your sodium intake.",
	},
	{
		code: "items_wasted",
		applies: func(_ models.NutrientVector, c WasteCounts) bool { return c.Wasted > 0 },
		message: "Use up or preserve inventory items before they expire to cut food waste.",
	},
	{
		code: "items_expiring",
		applies: func(_ models.NutrientVector, c WasteCounts) bool { return c.Warning > 0 },
		message: "Cook the items that are close to expiring first.",
	},
}

const fallbackImprovement = "Keep up your current habits to maintain your score."

// ComposeFindings evaluates every rule and splits the triggered messages
// into strengths and improvements, with the fallback message when nothing
// needs improving.
func ComposeFindings(pct models.NutrientVector, counts WasteCounts) (strengths, improvements []string) {
	strengths = []string{}
	improvements = []string{}
	for _, rule := range impactRules {
		if !rule.applies(pct, counts) {
			continue
		}
		if rule.strength {
			strengths = append(strengths, rule.message)
		} else {
			improvements = append(improvements, rule.message)
		}
	}
	if len(improvements) == 0 {
		improvements = append(improvements, fallbackImprovement)
	}
	return strengths, improvements
}

// ActionPlan concatenates the first three improvements into one paragraph.
func ActionPlan(improvements []string) string {
	if len(improvements) > 3 {
		improvements = improvements[:3]
	}
	return strings.Join(improvements, " ")
}

// ---------- Report ----------

type ImpactComponents struct {
	NutritionScore float64 `json:"nutritionScore"`
	WasteScore     float64 `json:"wasteScore"`
}

type ImpactReport struct {
	Score      int              `json:"score"`
	Components ImpactComponents `json:"components"`

	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	WeeklyNutrition struct {
		Averages    models.NutrientVector `json:"averages"`
		Percentages models.NutrientVector `json:"percentages"`
	} `json:"weeklyNutrition"`

	Inventory WasteCounts `json:"inventory"`

	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	ActionPlan   string   `json:"actionPlan"`
}

// FinalScore combines the two components into the 1–100 integer score.
func FinalScore(nutrition, waste float64) int {
	raw := nutrition + waste
	if raw < 1 {
		raw = 1
	}
	if raw > 100 {
		raw = 100
	}
	return int(math.Round(raw))
}

// Report builds the SDG impact report for the week starting at start. It
// requires a current goal; the inventory side tolerates having none.
func (s *ImpactService) Report(ctx context.Context, userID uint, start time.Time) (*ImpactReport, error) {
	goal, err := CurrentGoal(userID)
	if err != nil {
		return nil, err
	}

	logs, err := s.analytics.loadLogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	var totals models.NutrientVector
	for offset := 0; offset < 7; offset++ {
		summary, _ := sumLogsForDay(logs, start.AddDate(0, 0, offset))
		totals.Add(summary)
	}
	averages := totals.Scale(1.0 / 7.0)
	percentages := averages.PercentOf(goal.Targets)

	counts, err := s.inventory.LatestWasteCounts(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}

	nutrition := NutritionScore(percentages)
	waste := WasteScore(counts)
	strengths, improvements := ComposeFindings(percentages, counts)

	report := &ImpactReport{
		Score: FinalScore(nutrition, waste),
		Components: ImpactComponents{
			NutritionScore: round2(nutrition),
			WasteScore:     round2(waste),
		},
		StartDate:    start.Format("2006-01-02"),
		EndDate:      start.AddDate(0, 0, 6).Format("2006-01-02"),
		Inventory:    counts,
		Strengths:    strengths,
		Improvements: improvements,
		ActionPlan:   ActionPlan(improvements),
	}
	report.WeeklyNutrition.Averages = averages.Round(1)
	report.WeeklyNutrition.Percentages = percentages.Round(1)

	return report, nil
}
