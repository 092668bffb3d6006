package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssembliesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "promptdeck_assemblies_total",
		Help: "Prompts assembled via the API or CLI.",
	})

	PromptsSavedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "promptdeck_prompts_saved_total",
		Help: "Assembled prompts saved to history.",
	})

	ElementsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "promptdeck_elements_total",
		Help: "Number of elements in the library, updated on each list.",
	})

	StoreErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promptdeck_store_errors_total",
		Help: "Storage read/write failures.",
	}, []string{"store"})

	BackupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promptdeck_backups_total",
		Help: "Scheduled CSV backup runs.",
	}, []string{"status"})
)
