package model_test

import (
	"errors"
	"testing"
	"time"

	"task-tracker/internal/model"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    model.Priority
		wantErr bool
	}{
		{name: "Upper", raw: "HIGH", want: model.PriorityHigh},
		{name: "Title", raw: "High", want: model.PriorityHigh},
		{name: "Lower", raw: "high", want: model.PriorityHigh},
		{name: "Padded", raw: "  medium ", want: model.PriorityMedium},
		{name: "Low", raw: "LoW", want: model.PriorityLow},
		{name: "Unknown", raw: "urgent", wantErr: true},
		{name: "Empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParsePriority(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePriority(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, model.ErrUnknownPriority) {
				t.Errorf("expected ErrUnknownPriority, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		raw     string
		want    time.Time
		wantErr bool
	}{
		{raw: "2024-01-01", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{raw: "2024-02-29", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{raw: "2024/01/01", wantErr: true},
		{raw: "2023-02-29", wantErr: true},
		{raw: "2024-1-1", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := model.ParseDeadline(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDeadline(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDeadline(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDeadlineString(t *testing.T) {
	task := model.Task{Deadline: time.Date(2099, 12, 31, 0, 0, 0, 0, time.UTC)}
	if got := task.DeadlineString(); got != "2099-12-31" {
		t.Errorf("DeadlineString() = %q", got)
	}
}
