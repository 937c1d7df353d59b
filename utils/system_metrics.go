package utils

import (
	"log"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// RuntimeSnapshot is embedded in the /test diagnostic payload.
type RuntimeSnapshot struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsedMB  uint64  `json:"memory_used_mb"`
}

// GetRuntimeSnapshot returns current host CPU and memory usage.
func GetRuntimeSnapshot() RuntimeSnapshot {
	var snap RuntimeSnapshot

	if percentages, err := cpu.Percent(0, false); err != nil {
		log.Printf("Error getting CPU usage: %v", err)
	} else if len(percentages) > 0 {
		snap.CPUPercent = percentages[0]
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		log.Printf("Error getting memory usage: %v", err)
	} else {
		snap.MemoryPercent = vm.UsedPercent
		snap.MemoryUsedMB = vm.Used / (1024 * 1024)
	}

	return snap
}
