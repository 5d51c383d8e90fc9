package app

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/guttosm/feeding-service/config"
)

func baseConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: 5 * time.Second,
		},
		Cache: config.CacheConfig{
			Size:        100,
			TTL:         time.Minute,
			TargetsSize: 16,
			TargetsTTL:  time.Second,
		},
		Feeding: config.FeedingConfig{PuppyMaxAgeMonths: 12},
		Log:     config.LogConfig{Level: "error"},
	}
}

func serve(application *App, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	application.Router.ServeHTTP(w, req)
	return w
}
