// Package contact implements the contact form and its simulated submission.
// No message ever leaves the process; a submission is a pair of timed state
// transitions.
package contact

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/leodahal4/portfolio/internal/schedule"
)

// State is the submission state of the form.
type State int

const (
	Idle State = iota
	Submitting
	Submitted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	default:
		return "unknown"
	}
}

const (
	DefaultSubmitDelay       = 1500 * time.Millisecond
	DefaultConfirmationDelay = 5 * time.Second

	Confirmation = "Thanks for reaching out! I'll get back to you soon."
)

// ErrBusy is returned when submitting while a submission is under way.
var ErrBusy = errors.New("submission already in progress")

// Fields are the three inputs of the form.
type Fields struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required,email"`
	Message string `form:"message" validate:"required"`
}

// ValidationError lists the inputs that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid contact form: " + strings.Join(e.Fields, ", ")
}

// Options configures a Form. Zero durations use the defaults.
type Options struct {
	SubmitDelay       time.Duration
	ConfirmationDelay time.Duration
	// Deliver receives each accepted message when it reaches Submitted.
	Deliver func(Fields)
}

// Form is the Idle → Submitting → Submitted → Idle state machine.
type Form struct {
	sched    *schedule.Scheduler
	validate *validator.Validate
	opts     Options

	mu      sync.Mutex
	state   State
	fields  Fields
	invalid []string
}

// New returns an idle Form.
func New(clock schedule.Clock, opts Options) *Form {
	if opts.SubmitDelay <= 0 {
		opts.SubmitDelay = DefaultSubmitDelay
	}
	if opts.ConfirmationDelay <= 0 {
		opts.ConfirmationDelay = DefaultConfirmationDelay
	}
	return &Form{
		sched:    schedule.New(clock),
		validate: newValidator(),
		opts:     opts,
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("form")
	})
	return v
}

// Submit starts a simulated submission. Invalid input keeps the form Idle
// and returns a *ValidationError; a form that is not Idle returns ErrBusy.
func (f *Form) Submit(in Fields) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != Idle {
		return ErrBusy
	}

	f.fields = in
	if err := f.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return errors.Wrap(err, "validate contact form")
		}
		invalid := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			invalid = append(invalid, fe.Field())
		}
		f.invalid = invalid
		return &ValidationError{Fields: invalid}
	}

	if _, err := f.sched.After(f.opts.SubmitDelay, f.complete); err != nil {
		return errors.Wrap(err, "schedule submission")
	}
	f.invalid = nil
	f.state = Submitting
	return nil
}

func (f *Form) complete() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != Submitting {
		return
	}
	if f.opts.Deliver != nil {
		f.opts.Deliver(f.fields)
	}
	f.state = Submitted
	f.fields = Fields{}

	if _, err := f.sched.After(f.opts.ConfirmationDelay, f.reset); err != nil {
		f.state = Idle
	}
}

func (f *Form) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == Submitted {
		f.state = Idle
	}
}

// State returns the current state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Fields returns the current input values.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Close cancels any pending transition.
func (f *Form) Close() {
	f.sched.Close()
}

// View is a snapshot of the form for rendering.
type View struct {
	State        State
	Fields       Fields
	Invalid      map[string]bool
	Button       string
	Disabled     bool
	Confirmation string
}

// View returns the current state for rendering.
func (f *Form) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := View{
		State:    f.state,
		Fields:   f.fields,
		Invalid:  make(map[string]bool, len(f.invalid)),
		Disabled: f.state != Idle,
	}
	for _, name := range f.invalid {
		v.Invalid[name] = true
	}
	switch f.state {
	case Submitting:
		v.Button = "Sending..."
	case Submitted:
		v.Button = "Message Sent!"
		v.Confirmation = Confirmation
	default:
		v.Button = "Send Message"
	}
	return v
}
