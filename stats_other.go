//go:build !linux && !darwin && !freebsd && !windows

package fs2

import "os"

func totalSpace(f *os.File) (uint64, error) {
	return 0, notSupported("total_space")
}

func freeSpace(f *os.File) (uint64, error) {
	return 0, notSupported("free_space")
}

func availableSpace(f *os.File) (uint64, error) {
	return 0, notSupported("available_space")
}

func allocationGranularity(f *os.File) (uint64, error) {
	return 0, notSupported("allocation_granularity")
}
