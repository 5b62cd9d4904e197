package panel

import (
	"math"
	"time"

	"github.com/pterobot/pterobot/internal/domain/entity"
)

var resourcesPaths = []fieldPath{
	{"attributes", "resources"},
	{"data", "attributes", "resources"},
	{"resources"},
}

// ParseResources reads a client resources document. Absent usages stay nil.
func ParseResources(raw entity.Document) entity.Resources {
	ret := entity.Resources{
		State: Normalize(raw).Status,
	}

	usage, ok := firstObject(raw, resourcesPaths)
	if !ok {
		return ret
	}

	ret.MemoryBytes = bytesField(usage, "memory_bytes")
	ret.DiskBytes = bytesField(usage, "disk_bytes")
	ret.NetworkRxBytes = bytesField(usage, "network_rx_bytes")
	ret.NetworkTxBytes = bytesField(usage, "network_tx_bytes")

	if cpu, ok := asNumber(usage["cpu_absolute"]); ok {
		ret.CPUPercent = &cpu
	}

	// uptime is in milliseconds
	if uptime, ok := asNumber(usage["uptime"]); ok && uptime >= 0 {
		d := time.Duration(uptime) * time.Millisecond
		ret.Uptime = &d
	}

	return ret
}

func bytesField(usage map[string]interface{}, key string) *uint64 {
	value, ok := asNumber(usage[key])
	if !ok || value < 0 || math.IsNaN(value) {
		return nil
	}

	ret := uint64(value)

	return &ret
}
