package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/feeding-service/internal/domain/dto"
	"github.com/guttosm/feeding-service/internal/domain/model"
	"github.com/guttosm/feeding-service/internal/mocks"
	"github.com/guttosm/feeding-service/internal/nutrition"
	"github.com/guttosm/feeding-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestCalculator() *service.FeedingCalculatorService {
	return service.NewFeedingCalculatorService(service.WithClock(func() time.Time { return testNow }))
}

func setupRouter(calculator service.FeedingCalculator, targets service.FeedingTargetsService) *gin.Engine {
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.Calculator = calculator
	cfg.FeedingTargetsService = targets
	return NewRouter(NewHealthHandler(), cfg)
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success envelope into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) dto.SuccessResponse {
	t.Helper()
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
	return resp
}

func TestCalculateAdult(t *testing.T) {
	router := setupRouter(newTestCalculator(), nil)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		detailField    string
		check          func(*testing.T, model.FeedingResult)
	}{
		{
			name:           "maintain ideal moderate",
			body:           `{"weight_kg": 10, "objective": "maintain", "body_condition": "ideal", "activity_level": "moderate"}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, res model.FeedingResult) {
				assert.Equal(t, "adult", res.Stage)
				assert.Equal(t, 393.64, res.RER)
				assert.Equal(t, 1.6, res.Factor)
				assert.Equal(t, 630, res.KcalPerDay)
				assert.Equal(t, 250, res.GramsPerDay)
			},
		},
		{
			name:           "portuguese aliases",
			body:           `{"weight_kg": 10, "objective": "manter_peso", "body_condition": "ideal", "activity_level": "moderate"}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, res model.FeedingResult) {
				assert.Equal(t, 630, res.KcalPerDay)
			},
		},
		{
			name:           "age selects meal label",
			body:           `{"weight_kg": 10, "objective": "maintain", "body_condition": "ideal", "activity_level": "moderate", "age_months": 36}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, res model.FeedingResult) {
				assert.Equal(t, nutrition.MealsAdult, res.MealsPerDay)
			},
		},
		{
			name:           "missing weight",
			body:           `{"objective": "maintain", "body_condition": "ideal", "activity_level": "moderate"}`,
			expectedStatus: http.StatusBadRequest,
			detailField:    "weight_kg",
		},
		{
			name:           "negative weight",
			body:           `{"weight_kg": -3, "objective": "maintain", "body_condition": "ideal", "activity_level": "moderate"}`,
			expectedStatus: http.StatusBadRequest,
			detailField:    "weight_kg",
		},
		{
			name:           "unknown objective",
			body:           `{"weight_kg": 10, "objective": "fly", "body_condition": "ideal", "activity_level": "moderate"}`,
			expectedStatus: http.StatusBadRequest,
			detailField:    "objective",
		},
		{
			name:           "unknown activity",
			body:           `{"weight_kg": 10, "objective": "maintain", "body_condition": "ideal", "activity_level": "frantic"}`,
			expectedStatus: http.StatusBadRequest,
			detailField:    "activity_level",
		},
		{
			name:           "malformed json",
			body:           `{"weight_kg": `,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/feeding/adult", tt.body)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.check != nil {
				var res model.FeedingResult
				resp := decodeData(t, w, &res)
				assert.NotEmpty(t, resp.RequestID)
				tt.check(t, res)
			}
			if tt.detailField != "" {
				errResp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeInvalidRequest, errResp.Error)
				assert.Contains(t, errResp.Details, tt.detailField)
			}
		})
	}
}

func TestCalculatePuppy(t *testing.T) {
	router := setupRouter(newTestCalculator(), nil)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		detailField    string
		check          func(*testing.T, model.FeedingResult)
	}{
		{
			name:           "adult weight defaults to twice the current weight",
			body:           `{"weight_kg": 5, "age_months": 3}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, res model.FeedingResult) {
				assert.Equal(t, "puppy", res.Stage)
				assert.True(t, res.AdultWeightDefaulted)
				require.NotNil(t, res.EstimatedAdultWeightKg)
				assert.Equal(t, 10.0, *res.EstimatedAdultWeightKg)
				assert.Equal(t, 2.2, res.Factor)
				assert.Equal(t, 515, res.KcalPerDay)
				assert.Equal(t, 250, res.GramsPerDay)
				assert.Equal(t, nutrition.MealsEarlyGrowth, res.MealsPerDay)
			},
		},
		{
			name:           "explicit adult weight",
			body:           `{"weight_kg": 5, "age_months": 3, "estimated_adult_weight_kg": 20}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, res model.FeedingResult) {
				assert.False(t, res.AdultWeightDefaulted)
				require.NotNil(t, res.EstimatedAdultWeightKg)
				assert.Equal(t, 20.0, *res.EstimatedAdultWeightKg)
			},
		},
		{
			name:           "missing age",
			body:           `{"weight_kg": 5}`,
			expectedStatus: http.StatusBadRequest,
			detailField:    "age_months",
		},
		{
			name:           "negative age",
			body:           `{"weight_kg": 5, "age_months": -1}`,
			expectedStatus: http.StatusBadRequest,
			detailField:    "age_months",
		},
		{
			name:           "zero adult weight",
			body:           `{"weight_kg": 5, "age_months": 3, "estimated_adult_weight_kg": 0}`,
			expectedStatus: http.StatusBadRequest,
			detailField:    "estimated_adult_weight_kg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/feeding/puppy", tt.body)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.check != nil {
				var res model.FeedingResult
				decodeData(t, w, &res)
				tt.check(t, res)
			}
			if tt.detailField != "" {
				assert.Contains(t, decodeError(t, w).Details, tt.detailField)
			}
		})
	}
}

func TestCalculatePlan(t *testing.T) {
	router := setupRouter(newTestCalculator(), nil)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedStage  string
		expectedAge    *int
	}{
		{
			name:           "birth date three months ago is a puppy",
			body:           `{"weight_kg": 5, "objective": "maintain", "body_condition": "ideal", "activity_level": "moderate", "birth_date": "2025-03-15"}`,
			expectedStatus: http.StatusOK,
			expectedStage:  "puppy",
			expectedAge:    intPtr(3),
		},
		{
			name:           "birth date two years ago is an adult",
			body:           `{"weight_kg": 10, "objective": "maintain", "body_condition": "ideal", "activity_level": "moderate", "birth_date": "2023-06-01"}`,
			expectedStatus: http.StatusOK,
			expectedStage:  "adult",
			expectedAge:    intPtr(24),
		},
		{
			name:           "no birth date is planned as adult",
			body:           `{"weight_kg": 10, "objective": "maintain", "body_condition": "ideal", "activity_level": "moderate"}`,
			expectedStatus: http.StatusOK,
			expectedStage:  "adult",
		},
		{
			name:           "malformed birth date",
			body:           `{"weight_kg": 10, "objective": "maintain", "body_condition": "ideal", "activity_level": "moderate", "birth_date": "15/03/2025"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/feeding/plan", tt.body)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				assert.Contains(t, decodeError(t, w).Details, "birth_date")
				return
			}

			var res model.FeedingResult
			decodeData(t, w, &res)
			assert.Equal(t, tt.expectedStage, res.Stage)
			assert.Equal(t, tt.expectedAge, res.AgeMonths)
		})
	}
}

func TestCalculatePlan_CalculatorErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "input error from the calculator",
			err:            nutrition.ErrInvalidWeight,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unexpected error",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := mocks.NewMockFeedingCalculator(t)
			calc.On("Now").Return(testNow)
			calc.On("Plan", mock.AnythingOfType("nutrition.Profile"), testNow).Return(nutrition.Plan{}, tt.err)

			router := setupRouter(calc, nil)
			w := doRequest(router, http.MethodPost, "/api/feeding/plan",
				`{"weight_kg": 10, "objective": "maintain", "body_condition": "ideal", "activity_level": "moderate"}`)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCalculateAdult_AuditsCalculation(t *testing.T) {
	calc := mocks.NewMockFeedingCalculator(t)
	calc.On("Adult", mock.AnythingOfType("nutrition.AdultInput")).
		Return(nutrition.Plan{Stage: nutrition.StageAdult, WeightKg: 10, KcalPerDay: 630, GramsPerDay: 250}, nil)

	logging := mocks.NewMockLoggingService(t)
	done := make(chan *model.LogEntry, 1)
	logging.On("CreateLog", mock.Anything, mock.MatchedBy(func(e *model.LogEntry) bool {
		return e.ActionType == model.ActionCalculate
	})).Run(func(args mock.Arguments) {
		done <- args.Get(1).(*model.LogEntry)
	}).Return(nil)

	cfg := &RouterConfig{Calculator: calc, LoggingService: logging}
	router := gin.New()
	NewFeedingRoutes(cfg).RegisterRoutes(router.Group("/api"), cfg)

	w := doRequest(router, http.MethodPost, "/api/feeding/adult",
		`{"weight_kg": 10, "objective": "maintain", "body_condition": "ideal", "activity_level": "moderate"}`)
	require.Equal(t, http.StatusOK, w.Code)

	select {
	case entry := <-done:
		assert.Equal(t, "info", entry.Level)
		assert.Equal(t, 630, entry.Fields["kcal_per_day"])
	case <-time.After(2 * time.Second):
		t.Fatal("calculation was not audited")
	}
}

func TestGetRER(t *testing.T) {
	router := setupRouter(newTestCalculator(), nil)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedRER    float64
	}{
		{name: "ten kilograms", query: "weight_kg=10", expectedStatus: http.StatusOK, expectedRER: 393.64},
		{name: "missing weight", query: "", expectedStatus: http.StatusBadRequest},
		{name: "not a number", query: "weight_kg=abc", expectedStatus: http.StatusBadRequest},
		{name: "zero weight", query: "weight_kg=0", expectedStatus: http.StatusBadRequest},
		{name: "negative weight", query: "weight_kg=-2", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, "/api/feeding/rer?"+tt.query, "")
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var res model.RERResult
				decodeData(t, w, &res)
				assert.Equal(t, tt.expectedRER, res.RER)
				return
			}
			assert.Contains(t, decodeError(t, w).Details, "weight_kg")
		})
	}
}

func TestGetAge(t *testing.T) {
	router := setupRouter(newTestCalculator(), nil)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expected       model.AgeResult
	}{
		{
			name:           "three months",
			query:          "birth_date=2025-03-15",
			expectedStatus: http.StatusOK,
			expected:       model.AgeResult{AgeMonths: intPtr(3), Known: true},
		},
		{
			name:           "day of month is ignored",
			query:          "birth_date=2025-03-31",
			expectedStatus: http.StatusOK,
			expected:       model.AgeResult{AgeMonths: intPtr(3), Known: true},
		},
		{
			name:           "unknown without birth date",
			query:          "",
			expectedStatus: http.StatusOK,
			expected:       model.AgeResult{Known: false},
		},
		{
			name:           "malformed date",
			query:          "birth_date=2025-13-40",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, "/api/feeding/age?"+tt.query, "")
			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var res model.AgeResult
			decodeData(t, w, &res)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestGetMeals(t *testing.T) {
	router := setupRouter(newTestCalculator(), nil)

	tests := []struct {
		query          string
		expectedStatus int
		expectedMeals  string
	}{
		{query: "age_months=0", expectedStatus: http.StatusOK, expectedMeals: nutrition.MealsEarlyGrowth},
		{query: "age_months=3", expectedStatus: http.StatusOK, expectedMeals: nutrition.MealsEarlyGrowth},
		{query: "age_months=4", expectedStatus: http.StatusOK, expectedMeals: nutrition.MealsLateGrowth},
		{query: "age_months=7", expectedStatus: http.StatusOK, expectedMeals: nutrition.MealsLateGrowth},
		{query: "age_months=8", expectedStatus: http.StatusOK, expectedMeals: nutrition.MealsAdult},
		{query: "age_months=24", expectedStatus: http.StatusOK, expectedMeals: nutrition.MealsAdult},
		{query: "age_months=-1", expectedStatus: http.StatusBadRequest},
		{query: "age_months=three", expectedStatus: http.StatusBadRequest},
		{query: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, "/api/feeding/meals?"+tt.query, "")
			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.Contains(t, decodeError(t, w).Details, "age_months")
				return
			}

			var res model.MealsResult
			decodeData(t, w, &res)
			assert.Equal(t, tt.expectedMeals, res.MealsPerDay)
		})
	}
}
