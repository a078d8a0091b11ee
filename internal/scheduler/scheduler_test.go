package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	for _, s := range []string{"none", "hourly", "daily", "weekly"} {
		if _, err := Parse(s); err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := Parse("fortnightly"); err == nil {
		t.Error("Parse should reject unknown schedules")
	}
}

func TestNextRun(t *testing.T) {
	// Wednesday 2025-03-05
	wedMorning := time.Date(2025, 3, 5, 7, 15, 0, 0, time.UTC)
	wedEvening := time.Date(2025, 3, 5, 21, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		sched Schedule
		now   time.Time
		want  time.Time
	}{
		{
			name:  "hourly is a fixed interval",
			sched: Hourly,
			now:   wedMorning,
			want:  wedMorning.Add(time.Hour),
		},
		{
			name:  "daily before 09:00 fires same day",
			sched: Daily,
			now:   wedMorning,
			want:  time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "daily after 09:00 fires next day",
			sched: Daily,
			now:   wedEvening,
			want:  time.Date(2025, 3, 6, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "weekly fires next Monday 09:00",
			sched: Weekly,
			now:   wedMorning,
			want:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "weekly on a Monday before 09:00 fires that day",
			sched: Weekly,
			now:   time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
			want:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "weekly on a Monday after 09:00 waits a week",
			sched: Weekly,
			now:   time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
			want:  time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextRun(tt.sched, tt.now); !got.Equal(tt.want) {
				t.Errorf("nextRun(%s, %s) = %s, want %s", tt.sched, tt.now, got, tt.want)
			}
		})
	}
}

func TestRunNoneRunsExactlyOnce(t *testing.T) {
	calls := 0
	Run(context.Background(), None, "test", func(ctx context.Context) error {
		calls++
		return errors.New("boom") // errors must not stop anything
	})
	if calls != 1 {
		t.Fatalf("task ran %d times, want 1", calls)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		Run(ctx, Hourly, "test", func(ctx context.Context) error { return nil })
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancel")
	}
}
