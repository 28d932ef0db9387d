package models

import "math"

// NutrientVector is the fixed 14-field nutrient record shared by food items
// (per 100 units of metric serving), goals (daily targets) and every
// aggregation result. The zero value is the canonical all-zero vector, so
// arithmetic and percentage division are always well-defined.
type NutrientVector struct {
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbohydrate float64 `json:"carbohydrate"`
	FatTotal     float64 `json:"fat_total" gorm:"column:fat_total"`

	Fiber       float64 `json:"fiber"`
	Sodium      float64 `json:"sodium"`
	Cholesterol float64 `json:"cholesterol"`
	Potassium   float64 `json:"potassium"`

	VitaminA  float64 `json:"vitamin_a" gorm:"column:vitamin_a"`
	VitaminC  float64 `json:"vitamin_c" gorm:"column:vitamin_c"`
	VitaminD  float64 `json:"vitamin_d" gorm:"column:vitamin_d"`
	Calcium   float64 `json:"calcium"`
	Iron      float64 `json:"iron"`
	Magnesium float64 `json:"magnesium"`
}

// AddScaled adds factor×v field by field. Used by the aggregator with the
// consumed factor (quantity × serving_quantity / 100).
func (n *NutrientVector) AddScaled(v NutrientVector, factor float64) {
	n.Calories += factor * v.Calories
	n.Protein += factor * v.Protein
	n.Carbohydrate += factor * v.Carbohydrate
	n.FatTotal += factor * v.FatTotal
	n.Fiber += factor * v.Fiber
	n.Sodium += factor * v.Sodium
	n.Cholesterol += factor * v.Cholesterol
	n.Potassium += factor * v.Potassium
	n.VitaminA += factor * v.VitaminA
	n.VitaminC += factor * v.VitaminC
	n.VitaminD += factor * v.VitaminD
	n.Calcium += factor * v.Calcium
	n.Iron += factor * v.Iron
	n.Magnesium += factor * v.Magnesium
}

// Add adds v field by field.
func (n *NutrientVector) Add(v NutrientVector) { n.AddScaled(v, 1) }

// Scale returns a copy with every field multiplied by factor.
func (n NutrientVector) Scale(factor float64) NutrientVector {
	out := NutrientVector{}
	out.AddScaled(n, factor)
	return out
}

// PercentOf returns per-field percentage of target. A zero target field
// yields 0 for that field, never a division error.
func (n NutrientVector) PercentOf(target NutrientVector) NutrientVector {
	ratio := func(actual, goal float64) float64 {
		if goal == 0 {
			return 0
		}
		return (actual / goal) * 100.0
	}
	return NutrientVector{
		Calories:     ratio(n.Calories, target.Calories),
		Protein:      ratio(n.Protein, target.Protein),
		Carbohydrate: ratio(n.Carbohydrate, target.Carbohydrate),
		FatTotal:     ratio(n.FatTotal, target.FatTotal),
		Fiber:        ratio(n.Fiber, target.Fiber),
		Sodium:       ratio(n.Sodium, target.Sodium),
		Cholesterol:  ratio(n.Cholesterol, target.Cholesterol),
		Potassium:    ratio(n.Potassium, target.Potassium),
		VitaminA:     ratio(n.VitaminA, target.VitaminA),
		VitaminC:     ratio(n.VitaminC, target.VitaminC),
		VitaminD:     ratio(n.VitaminD, target.VitaminD),
		Calcium:      ratio(n.Calcium, target.Calcium),
		Iron:         ratio(n.Iron, target.Iron),
		Magnesium:    ratio(n.Magnesium, target.Magnesium),
	}
}

// Round returns a copy with every field rounded to the given number of
// decimal places (report serialization).
func (n NutrientVector) Round(places int) NutrientVector {
	f := math.Pow(10, float64(places))
	r := func(v float64) float64 { return math.Round(v*f) / f }
	return NutrientVector{
		Calories:     r(n.Calories),
		Protein:      r(n.Protein),
		Carbohydrate: r(n.Carbohydrate),
		FatTotal:     r(n.FatTotal),
		Fiber:        r(n.Fiber),
		Sodium:       r(n.Sodium),
		Cholesterol:  r(n.Cholesterol),
		Potassium:    r(n.Potassium),
		VitaminA:     r(n.VitaminA),
		VitaminC:     r(n.VitaminC),
		VitaminD:     r(n.VitaminD),
		Calcium:      r(n.Calcium),
		Iron:         r(n.Iron),
		Magnesium:    r(n.Magnesium),
	}
}
