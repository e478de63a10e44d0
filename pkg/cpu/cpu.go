package cpu

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/tklauser/go-sysconf"
	"github.com/vietanhduong/symguess/pkg/logging"
	"github.com/vietanhduong/symguess/pkg/logging/logfields"
)

var log = logging.DefaultLogger.WithField(logfields.LogComponent, "cpu")

const cpuOnline = "/sys/devices/system/cpu/online"

// OnlineCPUs returns a slice with the online CPUs, for example `[0, 2, 3]`
func OnlineCPUs() ([]uint, error) {
	buf, err := os.ReadFile(cpuOnline)
	if err != nil {
		return nil, fmt.Errorf("os read file %s: %w", cpuOnline, err)
	}
	return readCpuRange(string(buf))
}

// NumOnline returns the number of online CPUs. It asks sysconf first, then
// the sysfs online mask, and finally falls back to runtime.NumCPU.
func NumOnline() int {
	n, err := sysconf.Sysconf(sysconf.SC_NPROCESSORS_ONLN)
	if err == nil && n > 0 {
		return int(n)
	}
	log.WithError(err).Debug("sysconf SC_NPROCESSORS_ONLN unavailable")

	cpus, err := OnlineCPUs()
	if err == nil && len(cpus) > 0 {
		return len(cpus)
	}
	log.WithError(err).Debug("Failed to read online CPUs")
	return runtime.NumCPU()
}

// loosely based on https://github.com/iovisor/bcc/blob/v0.3.0/src/python/bcc/utils.py#L15
func readCpuRange(str string) ([]uint, error) {
	var cpus []uint
	for _, s := range strings.Split(strings.TrimSpace(str), ",") {
		idx := strings.Index(s, "-")
		if idx == -1 {
			n, err := strconv.ParseUint(s, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("strconv parse uint (%s): %w", s, err)
			}
			cpus = append(cpus, uint(n))
			continue
		}
		first, err := strconv.ParseUint(s[:idx], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("strconv parse uint (%s): %w", s[:idx], err)
		}
		last, err := strconv.ParseUint(s[idx+1:], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("strconv parse uint (%s): %w", s[idx+1:], err)
		}
		for n := first; n <= last; n++ {
			cpus = append(cpus, uint(n))
		}
	}
	return cpus, nil
}
