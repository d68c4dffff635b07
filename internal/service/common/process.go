//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-ps"
)

// commLength is the length Linux truncates process names to.
const commLength = 15

// OtherInstances returns the PIDs of processes running the executable name,
// excluding the current process.
func OtherInstances(name string) ([]int, error) {
	processList, err := ps.Processes()
	if err != nil {
		return nil, err
	}

	var (
		self   = os.Getpid()
		parent = os.Getppid()
		pids   []int
	)

	for _, process := range processList {
		pid := process.Pid()
		if pid == self || pid == parent {
			continue
		}

		if !SameExecutable(process.Executable(), name) {
			continue
		}

		pids = append(pids, pid)
	}

	return pids, nil
}

// SameExecutable reports whether a process table entry names the executable name.
// Windows entries carry the .exe suffix; Linux truncates names to 15 bytes.
func SameExecutable(entry, name string) bool {
	if entry == "" || name == "" {
		return false
	}

	if runtime.GOOS == "windows" {
		entry = strings.TrimSuffix(strings.ToLower(entry), ".exe")
		name = strings.TrimSuffix(strings.ToLower(name), ".exe")
	}

	if entry == name {
		return true
	}

	return len(entry) == commLength && strings.HasPrefix(name, entry)
}

// ExecutableName returns the base name of the running binary.
func ExecutableName() string {
	path, err := os.Executable()
	if err != nil {
		path = os.Args[0]
	}

	return filepath.Base(path)
}
