package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"golang.org/x/exp/slog"
)

var MANAGER *RoutingManager
var METRICS *MetricsCollector

func main() {
	logger := slog.New(NewLogHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	config := ReadConfig("./config.yaml")
	METRICS = NewMetricsCollector()
	MANAGER = NewRoutingManager("./graphs/transit", config)

	app := mux.NewRouter()
	MapPost(app, "/v1/journeys", HandleJourneyRequest)
	app.Handle("/metrics", METRICS.Handler()).Methods(http.MethodGet)
	app.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	slog.Info("starting server on " + config.Services.Address)
	http.ListenAndServe(config.Services.Address, app)
}
