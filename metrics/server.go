package metrics

import (
	"expvar"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Expvar counters
	DiscordMessageReceived = expvar.NewInt("discord_message_received")
	DiscordMessageSent     = expvar.NewInt("discord_message_sent")
	RelayMessages          = expvar.NewInt("relay_messages")
	RejectedInput          = expvar.NewInt("rejected_input_count")
	EmptyLLMResponse       = expvar.NewInt("empty_llm_response_count")
	SuccessfulLLMGen       = expvar.NewInt("successful_llm_gen_count")
	FailedLLMGen           = expvar.NewInt("failed_llm_gen_count")

	// Prometheus metrics with labels
	CommandTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discord_command_total",
			Help: "Total number of Discord commands invoked by command type",
		},
		[]string{"command"},
	)

	CommandErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discord_command_errors",
			Help: "Total number of Discord command errors by command type",
		},
		[]string{"command"},
	)

	CommandDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discord_command_duration_seconds",
			Help:    "Duration of Discord command execution in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)
)

type Server struct {
	*http.Server
}

// SetupServer wires the expvar and prometheus collectors into one
// registry and returns the metrics http server. pprof is mounted by
// importing net/http/pprof.
func SetupServer(addr string) *Server {
	server := &http.Server{
		Addr:         addr,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	DiscordMessageReceived.Set(0)
	DiscordMessageSent.Set(0)
	RelayMessages.Set(0)
	RejectedInput.Set(0)
	EmptyLLMResponse.Set(0)
	SuccessfulLLMGen.Set(0)
	FailedLLMGen.Set(0)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewExpvarCollector(
			map[string]*prometheus.Desc{
				"discord_message_received": prometheus.NewDesc("discord_message_received", "number of messages received from discord", nil, nil),
				"discord_message_sent":     prometheus.NewDesc("discord_message_sent", "number of messages sent to discord", nil, nil),
				"relay_messages":           prometheus.NewDesc("relay_messages", "number of messages picked up by the chat relay", nil, nil),
				"rejected_input_count":     prometheus.NewDesc("rejected_input_count", "number of messages rejected for exceeding the input limit", nil, nil),
				"empty_llm_response_count": prometheus.NewDesc("empty_llm_response_count", "number of times the model returned an empty string", nil, nil),
				"successful_llm_gen_count": prometheus.NewDesc("successful_llm_gen_count", "number of successful generations", nil, nil),
				"failed_llm_gen_count":     prometheus.NewDesc("failed_llm_gen_count", "number of generation errors", nil, nil),
			},
		),
		CommandTotal,
		CommandErrors,
		CommandDuration,
	)

	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	http.HandleFunc("/healthz", healthzHandler)
	return &Server{server}
}

// healthzHandler returns a simple health check response
func healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) Run() {
	_ = s.ListenAndServe()
}
