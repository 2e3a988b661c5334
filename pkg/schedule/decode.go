package schedule

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Haston00/DABO/pkg/errors"
)

// Format identifies a schedule file format.
type Format string

// Supported schedule file formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// scheduleFile is the wire shape shared by the JSON and TOML decoders.
type scheduleFile struct {
	Project    string         `json:"project" toml:"project"`
	Activities []activityFile `json:"activities" toml:"activities"`
}

// activityFile is the wire shape of one activity. "name" is preferred;
// "task" is accepted for compatibility with older exports.
type activityFile struct {
	ID           string        `json:"id" toml:"id"`
	Name         string        `json:"name" toml:"name"`
	Task         string        `json:"task,omitempty" toml:"task,omitempty"`
	Start        string        `json:"start" toml:"start"`
	End          string        `json:"end" toml:"end"`
	Duration     int           `json:"duration" toml:"duration"`
	WBS          string        `json:"wbs" toml:"wbs"`
	WBSName      string        `json:"wbs_name,omitempty" toml:"wbs_name,omitempty"`
	Critical     bool          `json:"critical" toml:"critical"`
	Float        int           `json:"float" toml:"float"`
	Milestone    bool          `json:"milestone" toml:"milestone"`
	Predecessors []Predecessor `json:"predecessors,omitempty" toml:"predecessors,omitempty"`
}

// DetectFormat returns the schedule format implied by a file path.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"cannot detect schedule format from %q (want .json or .toml)", filepath.Base(path))
	}
}

// ReadFile reads and decodes a schedule file, detecting the format from the
// file extension.
func ReadFile(path string) (*Schedule, error) {
	if err := errors.ValidateSchedulePath(path); err != nil {
		return nil, err
	}
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "schedule file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()

	s, err := Decode(f, format)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "decode %s", path)
	}
	return s, nil
}

// Decode decodes a schedule from r in the given format.
func Decode(r io.Reader, format Format) (*Schedule, error) {
	var file scheduleFile
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		if err := dec.Decode(&file); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSchedule, err, "invalid JSON schedule")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSchedule, err, "invalid TOML schedule")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported schedule format: %q", format)
	}
	return file.toSchedule()
}

// toSchedule converts the wire shape to the domain model, validating ids,
// dates, and numeric fields. Cross-activity consistency (date ordering,
// empty schedules) is checked by the layout engine itself so the same
// checks also cover programmatically built schedules.
func (f *scheduleFile) toSchedule() (*Schedule, error) {
	s := &Schedule{
		Project:    f.Project,
		Activities: make([]Activity, 0, len(f.Activities)),
	}

	seen := make(map[string]bool, len(f.Activities))
	for i, af := range f.Activities {
		act, err := af.toActivity()
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "activity %d", i)
		}
		if seen[act.ID] {
			return nil, errors.New(errors.ErrCodeInvalidSchedule, "duplicate activity id %q", act.ID)
		}
		seen[act.ID] = true
		s.Activities = append(s.Activities, act)
	}

	return s, nil
}

func (af *activityFile) toActivity() (Activity, error) {
	if err := errors.ValidateActivityID(af.ID); err != nil {
		return Activity{}, err
	}
	if err := errors.ValidateWBSCode(af.WBS); err != nil {
		return Activity{}, err
	}

	start, err := parseDate(af.Start)
	if err != nil {
		return Activity{}, errors.Wrap(errors.ErrCodeInvalidDate, err, "activity %s: start", af.ID)
	}
	end, err := parseDate(af.End)
	if err != nil {
		return Activity{}, errors.Wrap(errors.ErrCodeInvalidDate, err, "activity %s: end", af.ID)
	}

	if af.Duration < 0 {
		return Activity{}, errors.New(errors.ErrCodeInvalidActivity,
			"activity %s: negative duration %d", af.ID, af.Duration)
	}
	if af.Float < 0 {
		return Activity{}, errors.New(errors.ErrCodeInvalidActivity,
			"activity %s: negative float %d", af.ID, af.Float)
	}

	name := af.Name
	if name == "" {
		name = af.Task
	}
	if name == "" {
		name = af.ID
	}

	preds := make([]Predecessor, len(af.Predecessors))
	for i, p := range af.Predecessors {
		if p.Type == "" {
			p.Type = RelationFinishStart
		}
		preds[i] = p
	}

	return Activity{
		ID:           af.ID,
		Name:         name,
		Start:        start,
		End:          end,
		DurationDays: af.Duration,
		WBSCode:      af.WBS,
		WBSName:      af.WBSName,
		Critical:     af.Critical,
		FloatDays:    af.Float,
		Milestone:    af.Milestone,
		Predecessors: preds,
	}, nil
}

// parseDate parses a calendar date, normalized to midnight UTC so that
// day arithmetic downstream never crosses DST boundaries.
func parseDate(raw string) (time.Time, error) {
	if err := errors.ValidateDateString(raw); err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", raw, err)
	}
	return t.UTC(), nil
}
