package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/BugHunter-Coder/fasting-friend/models"

	"gorm.io/gorm"
)

// DefaultDailyCalorieGoal gates the GoalMet flag on grouped meal days.
const DefaultDailyCalorieGoal = 2000.0

type MealService struct{ db *gorm.DB }

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

func (s *MealService) LogMeal(ctx context.Context, userID uint, name string, calories *float64, notes string, eatenAt time.Time) (*models.MealLog, error) {
	if name == "" {
		return nil, errors.New("meal name is required")
	}
	if calories != nil && *calories < 0 {
		return nil, errors.New("calories cannot be negative")
	}
	if eatenAt.IsZero() {
		eatenAt = time.Now()
	}

	meal := &models.MealLog{
		UserID:   userID,
		MealName: name,
		Calories: calories,
		Notes:    notes,
		EatenAt:  eatenAt,
	}
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) ListMeals(ctx context.Context, userID uint, limit int) ([]models.MealLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var meals []models.MealLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("eaten_at DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.MealLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *MealService) ListMealDays(ctx context.Context, userID uint) ([]MealDay, error) {
	meals, err := s.ListMeals(ctx, userID, 200)
	if err != nil {
		return nil, err
	}
	return GroupMealsByDay(meals, DefaultDailyCalorieGoal), nil
}

// MealDay is one calendar day of meals with its calorie rollup.
type MealDay struct {
	Date          time.Time        `json:"date"`
	Meals         []models.MealLog `json:"meals"`
	TotalCalories float64          `json:"total_calories"`
	HasCalories   bool             `json:"has_calories"`
	GoalMet       bool             `json:"goal_met"`
}

// GroupMealsByDay buckets meals by the local calendar day of eaten_at,
// newest day first. Nil-calorie meals count 0 toward the total; a day
// only reports HasCalories when at least one meal carries a number, so
// an all-null day never shows a zero-calorie badge.
func GroupMealsByDay(meals []models.MealLog, dailyGoal float64) []MealDay {
	byDay := make(map[time.Time]*MealDay)
	for i := range meals {
		m := meals[i]
		day := startOfDay(m.EatenAt)
		g, ok := byDay[day]
		if !ok {
			g = &MealDay{Date: day}
			byDay[day] = g
		}
		g.Meals = append(g.Meals, m)
		if m.Calories != nil {
			g.TotalCalories += *m.Calories
			g.HasCalories = true
		}
	}

	days := make([]MealDay, 0, len(byDay))
	for _, g := range byDay {
		g.GoalMet = g.HasCalories && g.TotalCalories >= dailyGoal
		days = append(days, *g)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.After(days[j].Date) })
	return days
}
