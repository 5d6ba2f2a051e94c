package domain

import "time"

// HealthStatus is the three-level classification of store health.
type HealthStatus string

const (
	HealthHealthy  HealthStatus = "healthy"
	HealthWarning  HealthStatus = "warning"
	HealthCritical HealthStatus = "critical"
)

// HealthSnapshot is a point-in-time sample of store health. Efficiency is the
// hit ratio, MemoryUsage the fraction of configured capacity in use. A fresh
// snapshot is generated on every read; the monitor retains a bounded history.
type HealthSnapshot struct {
	Efficiency      float64       `json:"efficiency"`
	MemoryUsage     float64       `json:"memoryUsageRatio"`
	KeyCount        int           `json:"keyCount"`
	Uptime          time.Duration `json:"uptime"`
	Status          HealthStatus  `json:"status"`
	Recommendations []string      `json:"recommendations"`
	SampledAt       time.Time     `json:"sampledAt"`
}
