package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/habitflow/internal/constants"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	path := ctx.Store.GetConfigPath()
	fmt.Printf("Storage path: %s\n", path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("  [FAIL] storage file does not exist, run 'habitflow init'")
		return nil
	}
	fmt.Println("  [ok] storage file exists")

	if err := ctx.Load(); err != nil {
		fmt.Printf("  [FAIL] storage did not load cleanly: %v\n", err)
		return nil
	}
	fmt.Println("  [ok] storage loads")

	habits := ctx.Tracker.Habits()
	logs := ctx.Tracker.Logs()
	fmt.Printf("  [ok] %d habits, %d logged days\n", len(habits), len(logs))

	// Log entries for removed habits are expected (history is kept), but
	// worth surfacing.
	orphans := map[string]bool{}
	for _, day := range logs {
		for id := range day.Habits {
			if _, ok := habits[id]; !ok {
				orphans[id] = true
			}
		}
	}
	if len(orphans) > 0 {
		fmt.Printf("  [info] history references %d removed habit(s); exports fall back to raw ids\n", len(orphans))
	}

	// The storage file must not be shared by two live processes
	if pid, live := lockfileHolder(path); live {
		fmt.Printf("  [WARN] another habitflow process (pid %d) appears to hold this storage\n", pid)
	} else {
		fmt.Println("  [ok] no other habitflow process holds this storage")
	}

	return nil
}

func lockfilePath(storePath string) string {
	return filepath.Join(filepath.Dir(storePath), constants.LockfileName)
}

// lockfileHolder reports the pid in the lockfile and whether that process
// is still a live habitflow process. Stale lockfiles (dead pid, or pid
// reused by something else) do not count.
func lockfileHolder(storePath string) (int, bool) {
	data, err := os.ReadFile(lockfilePath(storePath))
	if err != nil {
		return 0, false
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid == os.Getpid() {
		return 0, false
	}

	proc, err := ps.FindProcess(pid)
	if err != nil || proc == nil {
		return 0, false
	}
	if !strings.Contains(proc.Executable(), constants.AppName) {
		return 0, false
	}
	return pid, true
}

// acquireLockfile writes the current pid next to the storage file. Used
// by long-lived sessions; short commands don't bother.
func acquireLockfile(storePath string) error {
	if pid, live := lockfileHolder(storePath); live {
		return fmt.Errorf("another habitflow process (pid %d) is already running against this storage", pid)
	}
	return os.WriteFile(lockfilePath(storePath), []byte(strconv.Itoa(os.Getpid())), 0600)
}

func releaseLockfile(storePath string) {
	os.Remove(lockfilePath(storePath))
}
