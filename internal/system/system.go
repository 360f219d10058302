package system

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// workerMemoryBudget is the assumed peak memory per concurrent project build
const workerMemoryBudget = 256 << 20

func InitResourceLimits() {
	var rLimit syscall.Rlimit
	err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Could not read file limit: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	err = syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Could not raise file limit: %v", err)
	}
}

// FindLatestScript finds the most recent composition script in dir
func FindLatestScript(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	extensions := []string{".yaml", ".yml"}
	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		isScript := false
		for _, ext := range extensions {
			if strings.HasSuffix(strings.ToLower(f.Name()), ext) {
				isScript = true
				break
			}
		}
		if isScript {
			info, err := f.Info()
			if err != nil {
				continue
			}
			if info.ModTime().After(latestTime) {
				latestTime = info.ModTime()
				latestFile = filepath.Join(dir, f.Name())
			}
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no script files found in %s", dir)
	}

	return latestFile, nil
}

// WorkerCount sizes the parallel project pool: bounded by the request,
// the number of jobs, logical CPUs and available memory
func WorkerCount(requested, jobs int) int {
	workers := requested
	if workers <= 0 {
		if n, err := cpu.Counts(true); err == nil && n > 0 {
			workers = n
		} else {
			workers = 1
		}
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		if byMem := int(vm.Available / workerMemoryBudget); byMem > 0 && byMem < workers {
			workers = byMem
		}
	}

	if workers > jobs {
		workers = jobs
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
