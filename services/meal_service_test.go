package services

import (
	"testing"
	"time"

	"github.com/BugHunter-Coder/fasting-friend/models"
)

func meal(name string, calories *float64, eatenAt time.Time) models.MealLog {
	return models.MealLog{UserID: 1, MealName: name, Calories: calories, EatenAt: eatenAt}
}

func calories(v float64) *float64 { return &v }

func TestGroupMealsByDayCalorieTotal(t *testing.T) {
	day := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	meals := []models.MealLog{
		meal("Breakfast", calories(500), day.Add(8*time.Hour)),
		meal("Snack", nil, day.Add(11*time.Hour)),
		meal("Dinner", calories(700), day.Add(19*time.Hour)),
	}

	days := GroupMealsByDay(meals, DefaultDailyCalorieGoal)
	if len(days) != 1 {
		t.Fatalf("day groups: got %d, want 1", len(days))
	}
	g := days[0]
	if g.TotalCalories != 1200 {
		t.Fatalf("total calories: got %v, want 1200", g.TotalCalories)
	}
	if !g.HasCalories {
		t.Fatal("day with numeric calories must set HasCalories")
	}
	if len(g.Meals) != 3 {
		t.Fatalf("meals in day: got %d, want 3", len(g.Meals))
	}
}

func TestGroupMealsByDayAllNullCalories(t *testing.T) {
	day := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	meals := []models.MealLog{
		meal("Lunch", nil, day.Add(12*time.Hour)),
		meal("Dinner", nil, day.Add(19*time.Hour)),
	}

	days := GroupMealsByDay(meals, DefaultDailyCalorieGoal)
	if len(days) != 1 {
		t.Fatalf("day groups: got %d, want 1", len(days))
	}
	if days[0].HasCalories {
		t.Fatal("all-null day must not report HasCalories")
	}
	if days[0].GoalMet {
		t.Fatal("all-null day can never meet the calorie goal")
	}
}

func TestGroupMealsByDaySortsDescending(t *testing.T) {
	d1 := time.Date(2026, 8, 13, 12, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC)
	d3 := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	meals := []models.MealLog{
		meal("a", calories(100), d1),
		meal("b", calories(100), d3),
		meal("c", calories(100), d2),
	}

	days := GroupMealsByDay(meals, DefaultDailyCalorieGoal)
	if len(days) != 3 {
		t.Fatalf("day groups: got %d, want 3", len(days))
	}
	for i := 1; i < len(days); i++ {
		if days[i].Date.After(days[i-1].Date) {
			t.Fatalf("days out of order: %v before %v", days[i-1].Date, days[i].Date)
		}
	}
}

func TestGroupMealsByDayGoalFlag(t *testing.T) {
	day := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	meals := []models.MealLog{
		meal("Feast", calories(2100), day.Add(13*time.Hour)),
	}

	days := GroupMealsByDay(meals, DefaultDailyCalorieGoal)
	if !days[0].GoalMet {
		t.Fatalf("2100 kcal should meet a %v goal", DefaultDailyCalorieGoal)
	}

	days = GroupMealsByDay(meals, 2500)
	if days[0].GoalMet {
		t.Fatal("2100 kcal should not meet a 2500 goal")
	}
}
