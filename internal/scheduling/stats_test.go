package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestComputeStats_NoRules(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, 0, stats.TotalRules)
	assert.Equal(t, 0, stats.ActiveRules)
	assert.Empty(t, stats.ActiveDays)
	assert.Empty(t, stats.ActiveDayNames)
	assert.Equal(t, 0.0, stats.TotalHoursPerWeek)
	assert.Equal(t, 0.0, stats.AvgHoursPerDay)
	assert.Equal(t, "00:00", stats.EarliestStartTime)
	assert.Equal(t, "00:00", stats.LatestEndTime)
}

func TestComputeStats_OnlyInactiveRules(t *testing.T) {
	inactive := rule(5, "06:00", "23:00")
	inactive.IsActive = false

	stats := ComputeStats([]*domain.AvailabilityRule{inactive})

	assert.Equal(t, 1, stats.TotalRules)
	assert.Equal(t, 0, stats.ActiveRules)
	assert.Equal(t, "00:00", stats.EarliestStartTime)
	assert.Equal(t, 0.0, stats.AvgHoursPerDay)
}

func TestComputeStats(t *testing.T) {
	inactive := rule(5, "06:00", "23:00")
	inactive.IsActive = false
	rules := []*domain.AvailabilityRule{
		rule(3, "10:00", "10:20"),
		rule(1, "14:00", "16:00"),
		rule(1, "09:00", "12:00"),
		inactive,
	}

	stats := ComputeStats(rules)

	assert.Equal(t, 4, stats.TotalRules)
	assert.Equal(t, 3, stats.ActiveRules)
	assert.Equal(t, []int{1, 3}, stats.ActiveDays)
	assert.Equal(t, []string{"Monday", "Wednesday"}, stats.ActiveDayNames)
	assert.Equal(t, 5.33, stats.TotalHoursPerWeek)
	assert.Equal(t, 2.67, stats.AvgHoursPerDay)
	assert.Equal(t, "09:00", stats.EarliestStartTime)
	assert.Equal(t, "16:00", stats.LatestEndTime)
}
