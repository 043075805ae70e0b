package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"task-tracker/internal/model"
	"task-tracker/internal/task"
	repo "task-tracker/internal/task/repository"
)

// Append writes opt.Task as a new row. An absent or empty file gets the header row first.
func (r *implRepository) Append(ctx context.Context, opt repo.AppendOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			r.l.Errorf(ctx, "%s mkdir: %v", r.dsn("Append"), err)
			return fmt.Errorf("%w: %w", repo.ErrFailedToAppend, err)
		}
	}

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		r.l.Errorf(ctx, "%s open: %v", r.dsn("Append"), err)
		return fmt.Errorf("%w: %w", repo.ErrFailedToAppend, err)
	}

	if err := r.writeRecord(f, opt.Task); err != nil {
		_ = f.Close()
		r.l.Errorf(ctx, "%s write: %v", r.dsn("Append"), err)
		return fmt.Errorf("%w: %w", repo.ErrFailedToAppend, err)
	}
	if err := f.Close(); err != nil {
		r.l.Errorf(ctx, "%s close: %v", r.dsn("Append"), err)
		return fmt.Errorf("%w: %w", repo.ErrFailedToAppend, err)
	}

	r.l.Debugf(ctx, "%s: appended %q due %s", r.dsn("Append"), opt.Task.Description, opt.Task.DeadlineString())
	return nil
}

func (r *implRepository) writeRecord(f *os.File, t model.Task) error {
	info, err := f.Stat()
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	w.UseCRLF = true
	if info.Size() == 0 {
		if err := w.Write(Header); err != nil {
			return err
		}
	}
	if err := w.Write([]string{t.Description, t.Priority.String(), t.DeadlineString()}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// LoadAll reads every row in file order. Rows that cannot become a Task land in Invalid.
func (r *implRepository) LoadAll(ctx context.Context) (repo.LoadAllResult, error) {
	if err := ctx.Err(); err != nil {
		return repo.LoadAllResult{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return repo.LoadAllResult{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s open: %v", r.dsn("LoadAll"), err)
		return repo.LoadAllResult{}, fmt.Errorf("%w: %w", repo.ErrFailedToLoad, err)
	}
	defer f.Close()

	result, err := r.readRecords(ctx, f)
	if err != nil {
		r.l.Errorf(ctx, "%s read: %v", r.dsn("LoadAll"), err)
		return repo.LoadAllResult{}, fmt.Errorf("%w: %w", repo.ErrFailedToLoad, err)
	}
	return result, nil
}

func (r *implRepository) readRecords(ctx context.Context, in io.Reader) (repo.LoadAllResult, error) {
	rd := csv.NewReader(in)
	rd.FieldsPerRecord = -1
	rd.LazyQuotes = true

	header, err := rd.Read()
	if errors.Is(err, io.EOF) {
		return repo.LoadAllResult{}, nil
	}
	if err != nil {
		return repo.LoadAllResult{}, err
	}
	cols, err := columnIndex(header)
	if err != nil {
		return repo.LoadAllResult{}, err
	}

	var result repo.LoadAllResult
	for {
		record, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var pe *csv.ParseError
		if errors.As(err, &pe) {
			r.l.Warnf(ctx, "%s: skipping line %d: %v", r.dsn("LoadAll"), pe.StartLine, err)
			result.Invalid = append(result.Invalid, &task.RecordError{Line: pe.StartLine, Err: task.ErrMalformedRecord})
			continue
		}
		if err != nil {
			return repo.LoadAllResult{}, err
		}

		line, _ := rd.FieldPos(0)
		t, recErr := cols.toTask(record, line)
		if recErr != nil {
			r.l.Warnf(ctx, "%s: line %d: %v", r.dsn("LoadAll"), line, recErr.Err)
			result.Invalid = append(result.Invalid, recErr)
			continue
		}
		result.Tasks = append(result.Tasks, t)
	}

	return result, nil
}

// columns maps header names to field positions so column order in the file does not matter.
type columns struct {
	description, priority, deadline int
}

func columnIndex(header []string) (columns, error) {
	idx := map[string]int{}
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		idx[strings.ToLower(name)] = i
	}

	var c columns
	var ok bool
	if c.description, ok = idx[Header[0]]; !ok {
		return columns{}, fmt.Errorf("header %v has no %q column", header, Header[0])
	}
	if c.priority, ok = idx[Header[1]]; !ok {
		return columns{}, fmt.Errorf("header %v has no %q column", header, Header[1])
	}
	if c.deadline, ok = idx[Header[2]]; !ok {
		return columns{}, fmt.Errorf("header %v has no %q column", header, Header[2])
	}
	return c, nil
}

func (c columns) toTask(record []string, line int) (model.Task, *task.RecordError) {
	width := max(c.description, c.priority, c.deadline) + 1
	if len(record) < width {
		desc := ""
		if c.description < len(record) {
			desc = record[c.description]
		}
		return model.Task{}, &task.RecordError{Line: line, Description: desc, Err: task.ErrMalformedRecord}
	}

	desc := record[c.description]
	raw := record[c.deadline]
	deadline, err := model.ParseDeadline(raw)
	if err != nil {
		return model.Task{}, &task.RecordError{Line: line, Description: desc, Deadline: raw, Err: err}
	}

	return model.Task{
		Description: desc,
		Priority:    model.Priority(strings.ToLower(record[c.priority])),
		Deadline:    deadline,
	}, nil
}
