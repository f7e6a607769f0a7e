package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"becas-crm/config"
	"becas-crm/internal/rules"
	"becas-crm/models"

	"github.com/redis/go-redis/v9"
)

// rulesCacheKey - ключ, под которым в Redis лежит скомпилированный набор
// правил конвокатории.
func rulesCacheKey(callID uint) string {
	return fmt.Sprintf("rules:call:%d", callID)
}

// loadRuleSet собирает набор правил конвокатории: справочники уровней и
// отраслей из БД плюс компоненты и параметры отличия самой конвокатории.
// Результат кэшируется в Redis и сбрасывается при изменении правил.
func loadRuleSet(call *models.GrantCall) (*rules.RuleSet, error) {
	cacheKey := rulesCacheKey(call.ID)
	if config.RDB != nil {
		cached, err := config.RDB.Get(config.Ctx, cacheKey).Result()
		if err == nil {
			var rs rules.RuleSet
			if json.Unmarshal([]byte(cached), &rs) == nil {
				return &rs, nil
			}
			slog.Warn("Failed to unmarshal cached rule set", "call_id", call.ID)
		} else if err != redis.Nil {
			slog.Error("Redis GET command failed", "error", err, "key", cacheKey)
		}
	}

	var levels []models.AcademicLevel
	if err := config.DB.Find(&levels).Error; err != nil {
		return nil, fmt.Errorf("fetch academic levels: %w", err)
	}
	var branches []models.FieldBranch
	if err := config.DB.Find(&branches).Error; err != nil {
		return nil, fmt.Errorf("fetch field branches: %w", err)
	}

	rs := &rules.RuleSet{
		Levels:   make(map[string]rules.LevelRule, len(levels)),
		Branches: make(map[string]float64, len(branches)),
		Excellence: rules.ExcellenceRule{
			MinGrade:  call.ExcellenceMinGrade,
			GradeCap:  call.ExcellenceGradeCap,
			MinAmount: call.ExcellenceMinAmount,
			MaxAmount: call.ExcellenceMaxAmount,
		},
	}
	for _, l := range levels {
		rs.Levels[l.Name] = rules.LevelRule{MinEnrollment: l.MinEnrollment, Unit: l.EnrollmentUnit}
	}
	for _, b := range branches {
		rs.Branches[b.Name] = b.TuitionPercent
	}
	for _, comp := range call.Components {
		rs.Components = append(rs.Components, rules.Component{
			Name:             comp.Name,
			Amount:           comp.Amount,
			Condition:        comp.Condition,
			IncompatibleWith: comp.IncompatibleWith,
		})
	}

	if config.RDB != nil {
		jsonData, err := json.Marshal(rs)
		if err != nil {
			slog.Error("Failed to marshal rule set for caching", "error", err, "call_id", call.ID)
		} else if err := config.RDB.Set(config.Ctx, cacheKey, jsonData, 30*time.Minute).Err(); err != nil {
			slog.Error("Failed to SET rule set to cache", "error", err, "key", cacheKey)
		}
	}

	return rs, nil
}

// invalidateRuleCache сбрасывает кэш правил конкретной конвокатории.
func invalidateRuleCache(callID uint) {
	if config.RDB == nil {
		return
	}
	if err := config.RDB.Del(config.Ctx, rulesCacheKey(callID)).Err(); err != nil {
		slog.Error("Failed to invalidate rule cache", "error", err, "call_id", callID)
	}
}

// invalidateAllRuleCaches сбрасывает кэш правил всех конвокаторий.
// Вызывается при изменении справочников уровней/отраслей, которые
// входят в каждый набор правил.
func invalidateAllRuleCaches() {
	if config.RDB == nil {
		return
	}
	var ids []uint
	if err := config.DB.Model(&models.GrantCall{}).Pluck("id", &ids).Error; err != nil {
		slog.Error("Failed to list calls for cache invalidation", "error", err)
		return
	}
	for _, id := range ids {
		invalidateRuleCache(id)
	}
}
