package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Métricas de negócio
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "acessa_commands_total",
		Help: "Total de comandos interpretados",
	}, []string{"intent", "context"})

	CommandLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "acessa_command_latency_seconds",
		Help:    "Latência de interpretação de comandos",
		Buckets: prometheus.DefBuckets,
	})

	AIFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "acessa_ai_fallbacks_total",
		Help: "Total de consultas ao provedor de IA para comandos não reconhecidos",
	}, []string{"status"})

	BrailleEncodingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "acessa_braille_encodings_total",
		Help: "Total de transcrições braille geradas",
	}, []string{"grade"})

	ActiveStreamSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "acessa_active_stream_sessions",
		Help: "Número de sessões de comando via websocket ativas",
	})

	// Métricas de infraestrutura
	DatabaseLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "acessa_database_latency_seconds",
		Help:    "Latência de queries no banco",
		Buckets: prometheus.DefBuckets,
	})

	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "acessa_cache_hits_total",
		Help: "Acertos e falhas de cache por chave lógica",
	}, []string{"result"})
)
