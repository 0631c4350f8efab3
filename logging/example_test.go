package logging_test

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jonwraymond/opskit/logging"
)

func Example() {
	log := logging.New(logging.Config{
		Level:       logging.LevelInfo,
		Format:      logging.FormatJSON,
		ServiceName: "checkout",
		Environment: "production",
	})
	defer log.Sync()

	log.Info("server listening", zap.String("addr", ":8080"))
}

func ExampleLogger_Middleware() {
	log := logging.New(logging.ConfigFromEnv())

	mux := http.NewServeMux()
	mux.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		// Request-scoped logger with trace correlation.
		reqLog := log.WithContext(r.Context())
		reqLog.Info("listing orders")
	})

	handler := log.Middleware(mux)
	_ = handler
}
