package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"
)

type Schedule string

const (
	None   Schedule = "none"
	Hourly Schedule = "hourly"
	Daily  Schedule = "daily"
	Weekly Schedule = "weekly"
)

// Daily runs fire at 09:00 local time, weekly runs on Monday 09:00.
const runHour = 9

func Parse(s string) (Schedule, error) {
	switch Schedule(s) {
	case None, Hourly, Daily, Weekly:
		return Schedule(s), nil
	}
	return "", fmt.Errorf("invalid schedule %q (want none, hourly, daily or weekly)", s)
}

type Task func(ctx context.Context) error

// Run executes the task immediately, then keeps re-running it on the given
// schedule until ctx is cancelled. With Schedule None it returns after the
// first run. Task errors are logged, never fatal; at most one run is active
// at a time.
func Run(ctx context.Context, sched Schedule, name string, task Task) {
	runTask := func() {
		if err := task(ctx); err != nil {
			log.Printf("[%s] error: %v", name, err)
		}
	}

	runTask()
	if sched == None {
		return
	}
	log.Printf("[%s] scheduled to run %s", name, sched)

	for {
		t := time.NewTimer(time.Until(nextRun(sched, time.Now())))
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
			runTask()
		}
	}
}

func nextRun(sched Schedule, now time.Time) time.Time {
	switch sched {
	case Hourly:
		return now.Add(time.Hour)

	case Daily:
		next := time.Date(now.Year(), now.Month(), now.Day(), runHour, 0, 0, 0, now.Location())
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
		return next

	case Weekly:
		next := time.Date(now.Year(), now.Month(), now.Day(), runHour, 0, 0, 0, now.Location())
		for next.Weekday() != time.Monday || !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
		return next

	default:
		return now
	}
}
