package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tasksCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "task_tracker_tasks_created_total",
		Help: "Tasks appended to the store, by priority",
	}, []string{"priority"})

	validationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "task_tracker_validation_failures_total",
		Help: "Rejected task inputs, by field",
	}, []string{"field"})

	invalidRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "task_tracker_invalid_records",
		Help: "Stored records that could not be parsed as of the last listing",
	})

	tasksByUrgency = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "task_tracker_tasks_by_urgency",
		Help: "Tasks per urgency band as of the last listing",
	}, []string{"urgency"})
)
