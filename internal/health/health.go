package health

import (
	"context"
	"time"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/store"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

type HealthChecker struct {
	store store.Store
}

type HealthStatus struct {
	Status  string        `json:"status"`
	Storage StorageHealth `json:"storage"`
}

type StorageHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

func NewHealthChecker(s store.Store) *HealthChecker {
	return &HealthChecker{store: s}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	storage := h.checkStorage()

	status := "healthy"
	if storage.Status != "healthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status:  status,
		Storage: storage,
	}
}

func (h *HealthChecker) checkStorage() StorageHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.store.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return StorageHealth{
			Status:       "unhealthy",
			ResponseTime: responseTime,
		}
	}

	return StorageHealth{
		Status:       "healthy",
		ResponseTime: responseTime,
	}
}

// SystemStatus reports host resource usage for the monitoring page.
type SystemStatus struct {
	CPUPercent  float64 `json:"cpu_percent"`
	MemPercent  float64 `json:"mem_percent"`
	MemUsedMB   uint64  `json:"mem_used_mb"`
	MemTotalMB  uint64  `json:"mem_total_mb"`
	DiskPercent float64 `json:"disk_percent"`
}

func (h *HealthChecker) CheckSystem() SystemStatus {
	var status SystemStatus

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		status.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		status.MemPercent = vm.UsedPercent
		status.MemUsedMB = vm.Used / 1024 / 1024
		status.MemTotalMB = vm.Total / 1024 / 1024
	}
	if usage, err := disk.Usage("/"); err == nil {
		status.DiskPercent = usage.UsedPercent
	}

	return status
}
