// Package fsm implements the small state-machine runtime shared by the
// tokenizer and interpreter: named states identified by small integers,
// each carrying Entry/Evaluate/Exit action lists, with transitions queued
// rather than taken immediately so an Entry or Exit action can request
// another transition without recursing into the runtime.
package fsm

import "github.com/arloliu/bfsdl/errs"

// Trigger names one of a state's three action lists.
type Trigger int

const (
	// Entry actions run once, when a transition lands on the state.
	Entry Trigger = iota
	// Evaluate actions run each time the owner feeds the machine an input.
	Evaluate
	// Exit actions run once, when a transition leaves the state.
	Exit
	triggerCount
)

// Action is a unit of behavior bound to a state and a trigger.
type Action func()

type state struct {
	actions [triggerCount][]Action
}

func (s *state) addAction(trigger Trigger, action Action) error {
	if trigger < 0 || trigger >= triggerCount {
		return errs.ErrInvalidState
	}
	if action == nil {
		return errs.ErrInvalidState
	}

	s.actions[trigger] = append(s.actions[trigger], action)

	return nil
}

func (s *state) do(trigger Trigger) {
	for _, action := range s.actions[trigger] {
		action()
	}
}

// Machine is a runtime for a fixed set of states, numbered 0..n-1. It has
// no current state until the first Transition+DoTransition pair runs.
type Machine struct {
	states []state

	curState    int
	nextState   int
	nextPending bool
}

// New allocates a Machine with numStates states, none of them current.
func New(numStates int) (*Machine, error) {
	if numStates <= 0 {
		return nil, errs.ErrInvalidCapacity
	}

	return &Machine{
		states:   make([]state, numStates),
		curState: numStates,
	}, nil
}

// AddAction registers action to run on stateID whenever trigger fires.
// Multiple actions on the same trigger run in registration order.
func (m *Machine) AddAction(stateID int, trigger Trigger, action Action) error {
	if stateID < 0 || stateID >= len(m.states) {
		return errs.ErrInvalidState
	}

	return m.states[stateID].addAction(trigger, action)
}

// CurrentState returns the machine's current state, or an error if no
// transition has landed yet.
func (m *Machine) CurrentState() (int, error) {
	if m.curState >= len(m.states) {
		return 0, errs.ErrNoCurrentState
	}

	return m.curState, nil
}

// Transition requests a move to stateID. The move does not happen until
// DoTransition runs (directly, or via Evaluate's trailing call). Calling
// Transition again before DoTransition overwrites the pending target.
func (m *Machine) Transition(stateID int) error {
	if stateID < 0 || stateID >= len(m.states) {
		return errs.ErrInvalidState
	}

	m.nextState = stateID
	m.nextPending = true

	return nil
}

// DoTransition commits any pending transition: it runs the current state's
// Exit actions, then the target's Entry actions. If an Exit or Entry
// action calls Transition again, DoTransition loops until no transition is
// pending. Returns whether a transition actually occurred.
func (m *Machine) DoTransition() bool {
	occurred := m.nextPending

	for m.nextPending {
		m.nextPending = false
		target := m.nextState

		if m.curState < len(m.states) {
			m.states[m.curState].do(Exit)
		}

		m.curState = target
		m.states[m.curState].do(Entry)
	}

	return occurred
}

// RunEvaluate runs the current state's Evaluate actions, then commits any
// transition they queued.
func (m *Machine) RunEvaluate() error {
	if m.curState >= len(m.states) {
		return errs.ErrNoCurrentState
	}

	m.states[m.curState].do(Evaluate)
	m.DoTransition()

	return nil
}
