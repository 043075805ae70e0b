package task_test

import (
	"errors"
	"testing"

	"task-tracker/internal/model"
	"task-tracker/internal/task"
)

func TestCreateInputValidate(t *testing.T) {
	tests := []struct {
		name      string
		input     task.CreateInput
		wantErr   error
		wantField string
		want      model.Task
	}{
		{
			name:  "Valid",
			input: task.CreateInput{Description: "Write report", Priority: "HIGH", Deadline: "2024-01-01"},
			want:  model.Task{Description: "Write report", Priority: model.PriorityHigh, Deadline: date(2024, 1, 1)},
		},
		{
			name:      "Empty description",
			input:     task.CreateInput{Description: "", Priority: "high", Deadline: "2024-01-01"},
			wantErr:   task.ErrEmptyDescription,
			wantField: task.FieldDescription,
		},
		{
			name:      "Blank description",
			input:     task.CreateInput{Description: "   ", Priority: "high", Deadline: "2024-01-01"},
			wantErr:   task.ErrEmptyDescription,
			wantField: task.FieldDescription,
		},
		{
			name:      "Unknown priority",
			input:     task.CreateInput{Description: "x", Priority: "urgent", Deadline: "2024-01-01"},
			wantErr:   task.ErrInvalidPriority,
			wantField: task.FieldPriority,
		},
		{
			name:      "Wrong separator",
			input:     task.CreateInput{Description: "x", Priority: "low", Deadline: "2024/01/01"},
			wantErr:   task.ErrInvalidDeadline,
			wantField: task.FieldDeadline,
		},
		{
			name:      "Impossible date",
			input:     task.CreateInput{Description: "x", Priority: "low", Deadline: "2024-13-01"},
			wantErr:   task.ErrInvalidDeadline,
			wantField: task.FieldDeadline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("Validate() = %+v, want %+v", got, tt.want)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			var ve *task.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ve.Field, tt.wantField)
			}
			if !task.IsValidation(err) {
				t.Errorf("IsValidation should be true")
			}
		})
	}
}

func TestRecordErrorMessage(t *testing.T) {
	bad := &task.RecordError{Line: 3, Description: "Pay rent", Deadline: "soon", Err: errors.New("parse")}
	if got := bad.Error(); got != "Invalid deadline format for task: Pay rent" {
		t.Errorf("Error() = %q", got)
	}

	malformed := &task.RecordError{Line: 4, Err: task.ErrMalformedRecord}
	if got := malformed.Error(); got != "Malformed task record on line 4." {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(malformed, task.ErrMalformedRecord) {
		t.Errorf("expected errors.Is to unwrap to ErrMalformedRecord")
	}
}
