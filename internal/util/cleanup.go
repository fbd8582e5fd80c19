package util

import (
	"os"
	"os/signal"
	"syscall"
)

// CleanupOnInterrupt watches for SIGINT and SIGTERM. On a signal it removes
// whichever of dirs are still empty and exits with status 1. The returned
// func stops watching.
func CleanupOnInterrupt(log interface{ Infof(string, ...any) }, dirs ...string) func() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	stop := make(chan struct{})

	go func() {
		select {
		case <-sig:
			log.Infof("Interrupt received, cleaning up\n")
			for _, d := range RemoveEmptyDirs(dirs...) {
				log.Infof("Removed empty output folder: %s\n", d)
			}
			os.Exit(1)
		case <-stop:
		}
	}()

	return func() {
		signal.Stop(sig)
		close(stop)
	}
}

// RemoveEmptyDirs removes every dir that exists and is empty, walking the
// list backwards so a nested folder listed after its parent goes first.
// It returns the removed paths.
func RemoveEmptyDirs(dirs ...string) []string {
	var removed []string
	for i := len(dirs) - 1; i >= 0; i-- {
		entries, err := os.ReadDir(dirs[i])
		if err != nil || len(entries) > 0 {
			continue
		}
		if os.Remove(dirs[i]) == nil {
			removed = append(removed, dirs[i])
		}
	}
	return removed
}
