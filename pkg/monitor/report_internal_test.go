package monitor

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"liyu1981.xyz/temperature-report-service/pkg/models"
)

func TestComputeDailyStats_OrderIndependent(t *testing.T) {
	readings := make([]models.Reading, 0, 100)
	for i := range 100 {
		readings = append(readings, models.Reading{
			Timestamp:          int64(1000 + i),
			OfflineTemperature: float64(i%17) - 3.5,
			OnlineTemperature:  float64(i % 29),
			IsOpen:             i%3 == 0,
			ConditionCode:      1000 + (i%4)*3,
		})
	}

	want := computeDailyStats("2031-05-05", readings)

	shuffled := make([]models.Reading, len(readings))
	copy(shuffled, readings)
	rand.New(rand.NewSource(42)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	got := computeDailyStats("2031-05-05", shuffled)
	assert.Equal(t, want, got)
}

func TestMostCommonCondition_TieBreak(t *testing.T) {
	// ties resolve to the smallest code regardless of map iteration order
	assert.Equal(t, 1000, mostCommonCondition(map[int]int{1000: 3, 1003: 3}))
	assert.Equal(t, 1003, mostCommonCondition(map[int]int{1282: 2, 1003: 2, 1009: 2}))
	assert.Equal(t, 1006, mostCommonCondition(map[int]int{1000: 1, 1006: 5, 1009: 2}))
}

func TestConditionStatsEnumeration(t *testing.T) {
	stats := computeDailyStats("2031-08-08", []models.Reading{
		{ConditionCode: 1009}, {ConditionCode: 1000}, {ConditionCode: 1009}, {ConditionCode: 1003},
	})

	codes := make([]int, 0, len(stats.ConditionStats))
	for code := range stats.ConditionStats {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	assert.Equal(t, []int{1000, 1003, 1009}, codes)
	assert.Equal(t, 2, stats.ConditionStats[1009])
}
