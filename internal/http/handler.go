package http

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/feeding-service/internal/domain/dto"
	"github.com/guttosm/feeding-service/internal/domain/model"
	"github.com/guttosm/feeding-service/internal/i18n"
	"github.com/guttosm/feeding-service/internal/middleware"
	"github.com/guttosm/feeding-service/internal/nutrition"
	"github.com/guttosm/feeding-service/internal/service"
)

// Handler serves the stateless feeding calculation routes.
type Handler struct {
	calculator     service.FeedingCalculator
	loggingService service.LoggingService
}

// NewHandler creates a new Handler. loggingService may be nil.
func NewHandler(calculator service.FeedingCalculator, loggingService service.LoggingService) *Handler {
	return &Handler{
		calculator:     calculator,
		loggingService: loggingService,
	}
}

// CalculateAdult handles POST /api/feeding/adult.
//
// @Summary      Adult feeding plan
// @Description  Computes RER, the daily kcal target (MER) and the daily food portion in grams for an adult dog.
// @Tags         Feeding
// @Accept       json
// @Produce      json
// @Param        request body dto.AdultFeedingRequest true "Adult dog attributes"
// @Param        Accept-Language header string false "Message language (en, pt, nl)"
// @Success      200 {object} dto.SuccessResponse{data=model.FeedingResult} "Feeding plan"
// @Failure      400 {object} dto.ErrorResponse "Invalid weight or unknown objective, body condition or activity level"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/feeding/adult [post]
func (h *Handler) CalculateAdult(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindJSON[dto.AdultFeedingRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		builder.ServiceError(err)
		return
	}

	plan, err := h.calculator.Adult(in)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	h.audit(c, "Adult feeding plan calculated", plan)
	builder.SuccessOK(model.NewFeedingResult(plan))
}

// CalculatePuppy handles POST /api/feeding/puppy.
//
// @Summary      Puppy feeding plan
// @Description  Computes the growth-adjusted daily kcal target and food portion for a puppy. When estimated_adult_weight_kg is omitted it defaults to twice the current weight and adult_weight_defaulted is set.
// @Tags         Feeding
// @Accept       json
// @Produce      json
// @Param        request body dto.PuppyFeedingRequest true "Puppy attributes"
// @Param        Accept-Language header string false "Message language (en, pt, nl)"
// @Success      200 {object} dto.SuccessResponse{data=model.FeedingResult} "Feeding plan"
// @Failure      400 {object} dto.ErrorResponse "Invalid weight, age or adult weight"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/feeding/puppy [post]
func (h *Handler) CalculatePuppy(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindJSON[dto.PuppyFeedingRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		builder.ServiceError(err)
		return
	}

	plan, err := h.calculator.Puppy(in)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	h.audit(c, "Puppy feeding plan calculated", plan)
	builder.SuccessOK(model.NewFeedingResult(plan))
}

// CalculatePlan handles POST /api/feeding/plan.
//
// @Summary      Feeding plan for a dog profile
// @Description  Derives the age from birth_date on the server's date and picks the puppy formula below the puppy age limit, the adult formula otherwise. Without a birth date the dog is treated as adult.
// @Tags         Feeding
// @Accept       json
// @Produce      json
// @Param        request body dto.FeedingPlanRequest true "Dog profile"
// @Param        Accept-Language header string false "Message language (en, pt, nl)"
// @Success      200 {object} dto.SuccessResponse{data=model.FeedingResult} "Feeding plan"
// @Failure      400 {object} dto.ErrorResponse "Invalid profile"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/feeding/plan [post]
func (h *Handler) CalculatePlan(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindJSON[dto.FeedingPlanRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	profile, err := req.ToProfile()
	if err != nil {
		builder.ServiceError(err)
		return
	}

	plan, err := h.calculator.Plan(profile, h.calculator.Now())
	if err != nil {
		builder.ServiceError(err)
		return
	}

	h.audit(c, "Feeding plan calculated", plan)
	builder.SuccessOK(model.NewFeedingResult(plan))
}

// GetRER handles GET /api/feeding/rer.
//
// @Summary      Resting energy requirement
// @Description  Returns 70 × weight^0.75 for the given body weight, rounded to two decimals.
// @Tags         Feeding
// @Produce      json
// @Param        weight_kg query number true "Body weight in kilograms"
// @Success      200 {object} dto.SuccessResponse{data=model.RERResult} "RER"
// @Failure      400 {object} dto.ErrorResponse "Missing or non-positive weight"
// @Security     BearerAuth
// @Router       /api/feeding/rer [get]
func (h *Handler) GetRER(c *gin.Context) {
	builder := NewResponseBuilder(c)

	weight, verr := weightQuery(c)
	if verr != nil {
		builder.ValidationError(verr)
		return
	}

	rer, err := nutrition.RER(weight)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	builder.SuccessOK(model.RERResult{WeightKg: weight, RER: math.Round(rer*100) / 100})
}

// GetAge handles GET /api/feeding/age.
//
// @Summary      Age in months
// @Description  Returns the whole months between birth_date and the server's date. Without a birth date the age is unknown.
// @Tags         Feeding
// @Produce      json
// @Param        birth_date query string false "Birth date, YYYY-MM-DD"
// @Success      200 {object} dto.SuccessResponse{data=model.AgeResult} "Age"
// @Failure      400 {object} dto.ErrorResponse "Malformed birth date"
// @Security     BearerAuth
// @Router       /api/feeding/age [get]
func (h *Handler) GetAge(c *gin.Context) {
	builder := NewResponseBuilder(c)

	birth, err := dto.ParseBirthDate(c.Query("birth_date"))
	if err != nil {
		builder.ServiceError(err)
		return
	}

	months, known := nutrition.AgeInMonths(birth, h.calculator.Now())
	result := model.AgeResult{Known: known}
	if known {
		result.AgeMonths = &months
	}
	builder.SuccessOK(result)
}

// GetMeals handles GET /api/feeding/meals.
//
// @Summary      Suggested meals per day
// @Description  Returns the meal frequency label for a dog of the given age.
// @Tags         Feeding
// @Produce      json
// @Param        age_months query int true "Age in whole months"
// @Success      200 {object} dto.SuccessResponse{data=model.MealsResult} "Meal frequency"
// @Failure      400 {object} dto.ErrorResponse "Missing or negative age"
// @Security     BearerAuth
// @Router       /api/feeding/meals [get]
func (h *Handler) GetMeals(c *gin.Context) {
	builder := NewResponseBuilder(c)

	age, err := strconv.Atoi(strings.TrimSpace(c.Query("age_months")))
	if err != nil {
		builder.ValidationError(dto.ErrInvalidAgeMonths)
		return
	}

	meals, err := nutrition.SuggestedMealsPerDay(age)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	builder.SuccessOK(model.MealsResult{AgeMonths: age, MealsPerDay: meals})
}

func (h *Handler) audit(c *gin.Context, message string, plan nutrition.Plan) {
	middleware.AuditLog(h.loggingService, c, model.ActionCalculate, message, map[string]interface{}{
		"stage":         string(plan.Stage),
		"weight_kg":     plan.WeightKg,
		"kcal_per_day":  plan.KcalPerDay,
		"grams_per_day": plan.GramsPerDay,
	})
}

func weightQuery(c *gin.Context) (float64, *dto.ValidationError) {
	raw := strings.TrimSpace(c.Query("weight_kg"))
	if raw == "" {
		return 0, dto.ErrWeightRequired
	}
	weight, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, dto.ErrInvalidWeight
	}
	return weight, nil
}
