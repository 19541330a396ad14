package scheduling

import (
	"sort"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// noBoundsTime значение границ, когда активных правил нет
const noBoundsTime = "00:00"

// ComputeStats сводка по набору правил преподавателя
func ComputeStats(rules []*domain.AvailabilityRule) domain.AvailabilityStats {
	stats := domain.AvailabilityStats{
		TotalRules:        len(rules),
		ActiveDays:        []int{},
		ActiveDayNames:    []string{},
		EarliestStartTime: noBoundsTime,
		LatestEndTime:     noBoundsTime,
	}

	var (
		earliest types.TimeString
		latest   types.TimeString
		total    float64
	)
	days := make(map[int]struct{})

	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}
		stats.ActiveRules++
		days[rule.DayOfWeek] = struct{}{}
		total += rule.Hours()

		if earliest.IsZero() || rule.StartTime.IsBefore(earliest) {
			earliest = rule.StartTime
		}
		if latest.IsZero() || rule.EndTime.IsAfter(latest) {
			latest = rule.EndTime
		}
	}

	if stats.ActiveRules == 0 {
		return stats
	}

	for day := range days {
		stats.ActiveDays = append(stats.ActiveDays, day)
	}
	sort.Ints(stats.ActiveDays)
	for _, day := range stats.ActiveDays {
		stats.ActiveDayNames = append(stats.ActiveDayNames, DayName(day))
	}

	stats.TotalHoursPerWeek = RoundHours(total)
	stats.EarliestStartTime = earliest.String()
	stats.LatestEndTime = latest.String()
	stats.AvgHoursPerDay = RoundHours(total / float64(len(stats.ActiveDays)))

	return stats
}
