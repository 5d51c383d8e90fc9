// Package i18n translates the user-facing messages of the feeding service.
// The mobile app is used in English, Portuguese and Dutch.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		if _, ok := GetTranslator().messages[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":          "Invalid request",
			"error.invalid_request_body":     "Invalid request body",
			"error.internal_error":           "An unexpected error occurred",
			"error.unauthorized":             "Unauthorized",
			"error.api_key_required":         "API key is required",
			"error.invalid_api_key":          "Invalid API key",
			"error.not_found":                "Not found",
			"error.rate_limit_exceeded":      "Too many requests, please try again later",
			"error.invalid_token":            "Invalid or expired token",
			"error.token_required":           "Authentication token is required",
			"error.timeout":                  "The request took too long to complete",
			"error.persistence_unavailable":  "Feeding targets cannot be stored right now",
			"error.feeding_target_not_found": "This dog has no feeding target yet",

			"error.validation.weight_required":           "weight_kg: the dog's weight is required",
			"error.validation.weight_kg":                 "weight_kg: must be a number greater than zero",
			"error.validation.objective":                 "objective: must be one of maintain, lose_weight, gain_weight, healthy_eating",
			"error.validation.body_condition":            "body_condition: must be one of thin, ideal, overweight",
			"error.validation.activity_level":            "activity_level: must be one of low, moderate, high",
			"error.validation.age_months":                "age_months: must be zero or a positive integer",
			"error.validation.birth_date":                "birth_date: must be a date in the format YYYY-MM-DD",
			"error.validation.estimated_adult_weight_kg": "estimated_adult_weight_kg: must be a number greater than zero",
			"error.validation.dog_id":                    "dog_id: is required",
			"error.validation.limit":                     "limit: must be a positive integer",
		},
		"pt": {
			"error.invalid_request":          "Requisição inválida",
			"error.invalid_request_body":     "Corpo da requisição inválido",
			"error.internal_error":           "Ocorreu um erro inesperado",
			"error.unauthorized":             "Não autorizado",
			"error.api_key_required":         "Chave de API é obrigatória",
			"error.invalid_api_key":          "Chave de API inválida",
			"error.not_found":                "Não encontrado",
			"error.rate_limit_exceeded":      "Muitas requisições, tente novamente mais tarde",
			"error.invalid_token":            "Token inválido ou expirado",
			"error.token_required":           "Token de autenticação é obrigatório",
			"error.timeout":                  "A requisição demorou demais para ser concluída",
			"error.persistence_unavailable":  "Não é possível salvar metas de alimentação agora",
			"error.feeding_target_not_found": "Este cachorro ainda não tem meta de alimentação",

			"error.validation.weight_required":           "weight_kg: o peso do cachorro é obrigatório",
			"error.validation.weight_kg":                 "weight_kg: deve ser um número maior que zero",
			"error.validation.objective":                 "objective: deve ser manter_peso, perder_peso, ganhar_peso ou alimentacao_saudavel",
			"error.validation.body_condition":            "body_condition: deve ser magro, ideal ou sobrepeso",
			"error.validation.activity_level":            "activity_level: deve ser baixa, moderada ou alta",
			"error.validation.age_months":                "age_months: deve ser zero ou um inteiro positivo",
			"error.validation.birth_date":                "birth_date: deve ser uma data no formato AAAA-MM-DD",
			"error.validation.estimated_adult_weight_kg": "estimated_adult_weight_kg: deve ser um número maior que zero",
			"error.validation.dog_id":                    "dog_id: é obrigatório",
			"error.validation.limit":                     "limit: deve ser um inteiro positivo",
		},
		"nl": {
			"error.invalid_request":          "Ongeldig verzoek",
			"error.invalid_request_body":     "Ongeldige aanvraag body",
			"error.internal_error":           "Er is een onverwachte fout opgetreden",
			"error.unauthorized":             "Niet geautoriseerd",
			"error.api_key_required":         "API-sleutel is vereist",
			"error.invalid_api_key":          "Ongeldige API-sleutel",
			"error.not_found":                "Niet gevonden",
			"error.rate_limit_exceeded":      "Te veel verzoeken, probeer het later opnieuw",
			"error.invalid_token":            "Ongeldig of verlopen token",
			"error.token_required":           "Authenticatietoken is vereist",
			"error.timeout":                  "Het verzoek duurde te lang",
			"error.persistence_unavailable":  "Voedingsdoelen kunnen nu niet worden opgeslagen",
			"error.feeding_target_not_found": "Deze hond heeft nog geen voedingsdoel",

			"error.validation.weight_required":           "weight_kg: het gewicht van de hond is vereist",
			"error.validation.weight_kg":                 "weight_kg: moet een getal groter dan nul zijn",
			"error.validation.objective":                 "objective: moet maintain, lose_weight, gain_weight of healthy_eating zijn",
			"error.validation.body_condition":            "body_condition: moet thin, ideal of overweight zijn",
			"error.validation.activity_level":            "activity_level: moet low, moderate of high zijn",
			"error.validation.age_months":                "age_months: moet nul of een positief geheel getal zijn",
			"error.validation.birth_date":                "birth_date: moet een datum zijn in het formaat JJJJ-MM-DD",
			"error.validation.estimated_adult_weight_kg": "estimated_adult_weight_kg: moet een getal groter dan nul zijn",
			"error.validation.dog_id":                    "dog_id: is vereist",
			"error.validation.limit":                     "limit: moet een positief geheel getal zijn",
		},
	}
}
