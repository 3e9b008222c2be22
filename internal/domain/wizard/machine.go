package wizard

import (
	"errors"
	"fmt"
)

var (
	ErrWizardClosed = errors.New("wizard already submitted or failed")
	ErrAtFirstStep  = errors.New("cannot retreat from the first step")
	ErrAtLastStep   = errors.New("last step must be submitted, not advanced")
	ErrNotLastStep  = errors.New("submit is only allowed from the last step")
)

// IncompleteStepError reports a submit attempted before every step passed
// validation.
type IncompleteStepError struct {
	Step Step
}

func (e IncompleteStepError) Error() string {
	return fmt.Sprintf("step %s is not complete", e.Step)
}

type machineState int

const (
	stateActive machineState = iota
	stateSubmitted
	stateFailed
)

// Machine is the wizard navigation state machine: monotonic forward
// progress gated by per-step validation, free backward navigation that
// never discards entered data, and a submit guard that keeps incomplete
// wizards away from the registration orchestrator.
//
// A Machine is not safe for concurrent use; each submission owns one.
type Machine struct {
	current   Step
	state     machineState
	failure   error
	completed [stepCount]bool
	payloads  [stepCount]StepPayload
}

func NewMachine() *Machine {
	return &Machine{}
}

// Current returns the step the wizard is positioned at.
func (m *Machine) Current() Step { return m.current }

// Submitted reports whether the wizard reached its success terminal state.
func (m *Machine) Submitted() bool { return m.state == stateSubmitted }

// Failure returns the terminal failure reason, nil while the wizard is live.
func (m *Machine) Failure() error { return m.failure }

// Payload returns the data retained for an already-visited step.
func (m *Machine) Payload(s Step) StepPayload {
	if s < 0 || s >= stepCount {
		return nil
	}
	return m.payloads[s]
}

// Advance validates the current step's payload and moves forward. It is
// blocked on the last step, where Submit must be used instead.
func (m *Machine) Advance(payload StepPayload) (StepPayload, error) {
	if m.state != stateActive {
		return nil, ErrWizardClosed
	}
	if m.current == stepCount-1 {
		return nil, ErrAtLastStep
	}

	sanitized, errs := ValidateStep(m.current, payload)
	if errs != nil {
		return nil, errs
	}

	m.payloads[m.current] = sanitized
	m.completed[m.current] = true
	m.current++
	return sanitized, nil
}

// Retreat moves one step back without touching data entered for steps
// already completed.
func (m *Machine) Retreat() error {
	if m.state != stateActive {
		return ErrWizardClosed
	}
	if m.current == 0 {
		return ErrAtFirstStep
	}
	m.current--
	return nil
}

// Submit validates the final step, checks that every prior step completed,
// and returns the aggregate-validated submission. On success the machine
// reaches its terminal Submitted state and accepts no further transitions.
func (m *Machine) Submit(payload StepPayload) (Submission, error) {
	if m.state != stateActive {
		return Submission{}, ErrWizardClosed
	}
	if m.current != stepCount-1 {
		return Submission{}, ErrNotLastStep
	}
	for s := Step(0); s < stepCount-1; s++ {
		if !m.completed[s] {
			return Submission{}, IncompleteStepError{Step: s}
		}
	}

	sanitized, errs := ValidateStep(m.current, payload)
	if errs != nil {
		return Submission{}, errs
	}
	m.payloads[m.current] = sanitized
	m.completed[m.current] = true

	sub, errs := ValidateAggregate(m.assemble())
	if errs != nil {
		return Submission{}, errs
	}

	m.state = stateSubmitted
	return sub, nil
}

// Fail moves the wizard to its terminal failure state, recording the reason
// reported by the orchestrator.
func (m *Machine) Fail(reason error) {
	if m.state != stateActive {
		return
	}
	m.state = stateFailed
	m.failure = reason
}

func (m *Machine) assemble() Submission {
	sub := Submission{}
	if p, ok := m.payloads[StepCliente].(*ClientePayload); ok {
		sub.Cliente = *p
	}
	if p, ok := m.payloads[StepTecnico].(*TecnicoPayload); ok && !p.Empty() {
		sub.Tecnico = p
	}
	if p, ok := m.payloads[StepAcesso].(*AcessoPayload); ok && !p.Empty() {
		sub.Acesso = p
	}
	if p, ok := m.payloads[StepEquipamentos].(*EquipamentosPayload); ok {
		sub.Equipamentos = *p
	}
	return sub
}
