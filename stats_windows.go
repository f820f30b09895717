//go:build windows

package fs2

import (
	"os"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/windows"
)

// GetDiskFreeSpaceW reports cluster geometry that x/sys/windows does not
// wrap, so it is resolved directly from kernel32.
var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procGetDiskFreeSpaceW = kernel32.NewProc("GetDiskFreeSpaceW")
)

func totalSpace(f *os.File) (uint64, error) {
	_, total, _, err := diskFreeSpace(f, "total_space")
	return total, err
}

func freeSpace(f *os.File) (uint64, error) {
	_, _, free, err := diskFreeSpace(f, "free_space")
	return free, err
}

func availableSpace(f *os.File) (uint64, error) {
	avail, _, _, err := diskFreeSpace(f, "available_space")
	return avail, err
}

// allocationGranularity returns the volume cluster size in bytes.
func allocationGranularity(f *os.File) (uint64, error) {
	root, err := volumeRoot(f, "allocation_granularity")
	if err != nil {
		return 0, err
	}
	var sectorsPerCluster, bytesPerSector, freeClusters, totalClusters uint32
	ret, _, errno := procGetDiskFreeSpaceW.Call(
		uintptr(unsafe.Pointer(root)),
		uintptr(unsafe.Pointer(&sectorsPerCluster)),
		uintptr(unsafe.Pointer(&bytesPerSector)),
		uintptr(unsafe.Pointer(&freeClusters)),
		uintptr(unsafe.Pointer(&totalClusters)),
	)
	if ret == 0 {
		return 0, wrapError("allocation_granularity", errno)
	}
	return uint64(sectorsPerCluster) * uint64(bytesPerSector), nil
}

func diskFreeSpace(f *os.File, op string) (avail, total, free uint64, err error) {
	root, err := volumeRoot(f, op)
	if err != nil {
		return 0, 0, 0, err
	}
	if err := windows.GetDiskFreeSpaceEx(root, &avail, &total, &free); err != nil {
		return 0, 0, 0, wrapError(op, err)
	}
	return avail, total, free, nil
}

// volumeRoot resolves the handle's path to the root of its volume, e.g.
// `C:\`, which the disk-space calls require.
func volumeRoot(f *os.File, op string) (*uint16, error) {
	abs, err := filepath.Abs(f.Name())
	if err != nil {
		return nil, wrapError(op, err)
	}
	p, err := windows.UTF16PtrFromString(abs)
	if err != nil {
		return nil, wrapError(op, err)
	}
	root := make([]uint16, windows.MAX_PATH+1)
	if err := windows.GetVolumePathName(p, &root[0], uint32(len(root))); err != nil {
		return nil, wrapError(op, err)
	}
	return &root[0], nil
}
