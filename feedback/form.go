// Package feedback validates the contact/feedback form and turns accepted
// submissions into a rendered summary.
package feedback

import (
	"errors"
	"html/template"
	"strings"
	"sync"
	"time"

	"github.com/alex-pricope/feedback-arcade/logging"
	"github.com/alex-pricope/feedback-arcade/scheduler"
)

var (
	ErrUnknownField = errors.New("unknown form field")
	ErrFormInvalid  = errors.New("form has invalid fields")
)

const DefaultPopupDuration = 2500 * time.Millisecond

type Option func(*Form)

func WithScheduler(s scheduler.Scheduler) Option {
	return func(f *Form) { f.sched = s }
}

func WithPopupDuration(d time.Duration) Option {
	return func(f *Form) { f.popupDuration = d }
}

func WithClock(now func() time.Time) Option {
	return func(f *Form) { f.now = now }
}

// Form holds one visitor's form. All methods are safe for concurrent use.
type Form struct {
	mu            sync.Mutex
	fields        map[FieldName]*Field
	sched         scheduler.Scheduler
	popupDuration time.Duration
	now           func() time.Time

	popup   scheduler.Timer
	last    *Snapshot
	summary template.HTML
}

func NewForm(opts ...Option) *Form {
	f := &Form{
		fields:        make(map[FieldName]*Field, len(Fields)),
		sched:         scheduler.Real(),
		popupDuration: DefaultPopupDuration,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	for _, name := range Fields {
		f.fields[name] = &Field{Name: name}
	}
	return f
}

// Input stores a new value for the field as typed by the user, shows its
// validation result and returns the updated field together with whether
// the whole form can now be submitted.
func (f *Form) Input(name FieldName, value string) (Field, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	field, ok := f.fields[name]
	if !ok {
		return Field{}, false, ErrUnknownField
	}
	if name == FieldPhone {
		value = FormatPhone(value)
	}
	field.Value = value
	f.validate(name, true)
	return *field, f.allValid(), nil
}

// Validate checks a single field. With showErrors the field's error state is
// updated; otherwise the form is left untouched. Unknown fields pass.
func (f *Form) Validate(name FieldName, showErrors bool) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validate(name, showErrors)
}

func (f *Form) validate(name FieldName, showErrors bool) bool {
	field, ok := f.fields[name]
	if !ok {
		return true
	}
	msg := Check(name, field.Value)
	if showErrors {
		field.Valid = msg == ""
		field.Error = msg
	}
	return msg == ""
}

// SubmitEnabled reports whether every field currently passes validation.
func (f *Form) SubmitEnabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.allValid()
}

func (f *Form) allValid() bool {
	valid := true
	for _, name := range Fields {
		if !f.validate(name, false) {
			valid = false
		}
	}
	return valid
}

// Problems returns the current message of every failing field without
// touching the displayed error state.
func (f *Form) Problems() map[FieldName]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[FieldName]string)
	for _, name := range Fields {
		if msg := Check(name, f.fields[name].Value); msg != "" {
			out[name] = msg
		}
	}
	return out
}

// Fields returns a copy of every field in display order.
func (f *Form) Fields() []Field {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.copyFields()
}

func (f *Form) copyFields() []Field {
	out := make([]Field, 0, len(Fields))
	for _, name := range Fields {
		out = append(out, *f.fields[name])
	}
	return out
}

// State is a consistent copy of the whole form.
type State struct {
	Fields        []Field
	SubmitEnabled bool
	PopupVisible  bool
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{
		Fields:        f.copyFields(),
		SubmitEnabled: f.allValid(),
		PopupVisible:  f.popup != nil,
	}
}

// Submit captures the form when every field is valid, renders the summary
// and shows the confirmation popup.
func (f *Form) Submit() (*Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.allValid() {
		return nil, ErrFormInvalid
	}

	values := make(map[FieldName]string, len(Fields))
	for _, name := range Fields {
		values[name] = strings.TrimSpace(f.fields[name].Value)
	}
	snap := newSnapshot(values, f.now())

	summary, err := snap.Summary()
	if err != nil {
		return nil, err
	}
	f.last = snap
	f.summary = summary
	logging.Log.Infof("FORM: accepted submission %s with average %s", snap.ID, snap.Average)

	f.showPopup()
	return snap, nil
}

func (f *Form) showPopup() {
	if f.popup != nil {
		f.popup.Stop()
	}
	var timer scheduler.Timer
	timer = f.sched.AfterFunc(f.popupDuration, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.popup == timer {
			f.popup = nil
		}
	})
	f.popup = timer
}

// PopupVisible reports whether the confirmation popup is still showing.
func (f *Form) PopupVisible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.popup != nil
}

// Last returns the most recent accepted submission and its summary markup.
func (f *Form) Last() (*Snapshot, template.HTML, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.last == nil {
		return nil, "", false
	}
	return f.last, f.summary, true
}

// Close cancels the pending popup timer.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.popup != nil {
		f.popup.Stop()
		f.popup = nil
	}
}
