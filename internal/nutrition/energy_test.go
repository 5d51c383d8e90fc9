package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRER(t *testing.T) {
	t.Run("one kilogram is exactly 70 kcal", func(t *testing.T) {
		rer, err := RER(1)
		require.NoError(t, err)
		assert.Equal(t, 70.0, rer)
	})

	t.Run("ten kilograms", func(t *testing.T) {
		rer, err := RER(10)
		require.NoError(t, err)
		assert.InDelta(t, 393.64, rer, 0.01)
	})

	t.Run("strictly increasing in weight", func(t *testing.T) {
		prev := 0.0
		for _, w := range []float64{0.5, 1, 2.3, 5, 10, 25, 40, 80} {
			rer, err := RER(w)
			require.NoError(t, err)
			assert.Greater(t, rer, prev, "weight %v", w)
			prev = rer
		}
	})

	invalid := []struct {
		name   string
		weight float64
	}{
		{"zero", 0},
		{"negative", -3},
		{"NaN", math.NaN()},
		{"infinite", math.Inf(1)},
	}
	for _, tt := range invalid {
		t.Run("rejects "+tt.name+" weight", func(t *testing.T) {
			_, err := RER(tt.weight)
			assert.ErrorIs(t, err, ErrInvalidWeight)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestMERFactor(t *testing.T) {
	tests := []struct {
		name      string
		objective Objective
		condition BodyCondition
		activity  ActivityLevel
		want      float64
	}{
		{"lose weight", ObjectiveLoseWeight, BodyConditionIdeal, ActivityHigh, 1.0},
		{"overweight maintain", ObjectiveMaintain, BodyConditionOverweight, ActivityLow, 1.0},
		{"overweight beats gain objective", ObjectiveGainWeight, BodyConditionOverweight, ActivityHigh, 1.0},
		{"lose objective beats thin condition", ObjectiveLoseWeight, BodyConditionThin, ActivityModerate, 1.0},
		{"gain weight", ObjectiveGainWeight, BodyConditionIdeal, ActivityLow, 1.7},
		{"thin maintain", ObjectiveMaintain, BodyConditionThin, ActivityHigh, 1.7},
		{"thin healthy eating", ObjectiveHealthyEating, BodyConditionThin, ActivityLow, 1.7},
		{"maintain low", ObjectiveMaintain, BodyConditionIdeal, ActivityLow, 1.4},
		{"maintain moderate", ObjectiveMaintain, BodyConditionIdeal, ActivityModerate, 1.6},
		{"maintain high", ObjectiveMaintain, BodyConditionIdeal, ActivityHigh, 1.8},
		{"healthy eating low", ObjectiveHealthyEating, BodyConditionIdeal, ActivityLow, 1.4},
		{"healthy eating high", ObjectiveHealthyEating, BodyConditionIdeal, ActivityHigh, 1.8},
		{"maintain unrecognized activity", ObjectiveMaintain, BodyConditionIdeal, ActivityLevel(""), 1.6},
		{"unset objective falls back", Objective(""), BodyConditionIdeal, ActivityHigh, 1.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MERFactor(tt.objective, tt.condition, tt.activity))
		})
	}
}

func TestMER(t *testing.T) {
	t.Run("ten kilogram moderate maintenance dog", func(t *testing.T) {
		rer, err := RER(10)
		require.NoError(t, err)

		kcal, err := MER(rer, ObjectiveMaintain, BodyConditionIdeal, ActivityModerate)
		require.NoError(t, err)
		assert.Equal(t, 630, kcal)
	})

	t.Run("factor applied before rounding", func(t *testing.T) {
		kcal, err := MER(100, ObjectiveGainWeight, BodyConditionIdeal, ActivityLow)
		require.NoError(t, err)
		assert.Equal(t, 170, kcal)
	})

	t.Run("rejects non-positive rer", func(t *testing.T) {
		_, err := MER(0, ObjectiveMaintain, BodyConditionIdeal, ActivityLow)
		assert.ErrorIs(t, err, ErrInvalidRER)

		_, err = MER(math.NaN(), ObjectiveMaintain, BodyConditionIdeal, ActivityLow)
		assert.ErrorIs(t, err, ErrInvalidRER)
	})
}

func TestGramsPerDay(t *testing.T) {
	tests := []struct {
		name      string
		weight    float64
		objective Objective
		want      int
	}{
		{"lose weight uses 2%", 10, ObjectiveLoseWeight, 200},
		{"gain weight uses 3%", 10, ObjectiveGainWeight, 300},
		{"maintain uses 2.5%", 10, ObjectiveMaintain, 250},
		{"healthy eating uses 2.5%", 10, ObjectiveHealthyEating, 250},
		{"rounds to nearest gram", 3.33, ObjectiveMaintain, 83},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GramsPerDay(tt.weight, tt.objective)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects zero weight", func(t *testing.T) {
		_, err := GramsPerDay(0, ObjectiveMaintain)
		assert.ErrorIs(t, err, ErrInvalidWeight)
	})
}

func TestCalculationsAreRepeatable(t *testing.T) {
	for i := 0; i < 3; i++ {
		a, errA := RER(7.3)
		b, errB := RER(7.3)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, a, b)

		m1, _ := MER(a, ObjectiveHealthyEating, BodyConditionIdeal, ActivityHigh)
		m2, _ := MER(b, ObjectiveHealthyEating, BodyConditionIdeal, ActivityHigh)
		assert.Equal(t, m1, m2)

		p1, _ := PuppyMER(3, 2, 12)
		p2, _ := PuppyMER(3, 2, 12)
		assert.Equal(t, p1, p2)
	}
}
