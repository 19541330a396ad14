package scheduling

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Overlaps проверяет кандидата [cs, ce) против существующего [s, e) тремя условиями:
//  1. кандидат начинается внутри существующего: s <= cs < e
//  2. кандидат заканчивается внутри существующего: s < ce <= e
//  3. кандидат целиком покрывает существующий: cs <= s && e <= ce
//
// Интервалы, касающиеся только границей (09:00-10:00 и 10:00-11:00), не пересекаются.
func Overlaps(cs, ce, s, e types.TimeString) bool {
	candStart, candEnd := cs.Minutes(), ce.Minutes()
	start, end := s.Minutes(), e.Minutes()

	startsInside := start <= candStart && candStart < end
	endsInside := start < candEnd && candEnd <= end
	encompasses := candStart <= start && end <= candEnd

	return startsInside || endsInside || encompasses
}

// DetectConflicts возвращает активные правила того же дня и совместимого вида,
// пересекающиеся с кандидатом вида kind. Blackout внутри окна доступности конфликтом не считается.
// Правило с идентификатором exclude не учитывается (обновление самого себя).
func DetectConflicts(candidate Interval, kind domain.RuleKind, rules []*domain.AvailabilityRule, exclude *uuid.UUID) []*domain.AvailabilityRule {
	conflicts := make([]*domain.AvailabilityRule, 0)

	for _, rule := range rules {
		if !rule.IsActive || rule.DayOfWeek != candidate.DayOfWeek {
			continue
		}
		if exclude != nil && rule.ID == *exclude {
			continue
		}
		if !kind.Overlaps(rule.Kind) {
			continue
		}
		if Overlaps(candidate.Start, candidate.End, rule.StartTime, rule.EndTime) {
			conflicts = append(conflicts, rule)
		}
	}

	return conflicts
}
