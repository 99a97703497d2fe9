package fsm_test

import (
	"testing"

	"github.com/arloliu/bfsdl/fsm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	stateA = iota
	stateB
	stateC
)

func TestNewRejectsNonPositiveStateCount(t *testing.T) {
	_, err := fsm.New(0)
	assert.Error(t, err)
}

func TestCurrentStateErrorsBeforeFirstTransition(t *testing.T) {
	m, err := fsm.New(2)
	require.NoError(t, err)

	_, err = m.CurrentState()
	assert.Error(t, err)
}

func TestTransitionRunsExitThenEntry(t *testing.T) {
	m, err := fsm.New(2)
	require.NoError(t, err)

	var log []string
	require.NoError(t, m.AddAction(stateA, fsm.Entry, func() { log = append(log, "A.entry") }))
	require.NoError(t, m.AddAction(stateA, fsm.Exit, func() { log = append(log, "A.exit") }))
	require.NoError(t, m.AddAction(stateB, fsm.Entry, func() { log = append(log, "B.entry") }))

	require.NoError(t, m.Transition(stateA))
	assert.True(t, m.DoTransition())
	assert.Equal(t, []string{"A.entry"}, log)

	cur, err := m.CurrentState()
	require.NoError(t, err)
	assert.Equal(t, stateA, cur)

	require.NoError(t, m.Transition(stateB))
	assert.True(t, m.DoTransition())
	assert.Equal(t, []string{"A.entry", "A.exit", "B.entry"}, log)
}

func TestDoTransitionWithNoPendingTransitionIsNoop(t *testing.T) {
	m, err := fsm.New(1)
	require.NoError(t, err)

	assert.False(t, m.DoTransition())
}

func TestEntryRequestingAnotherTransitionDrainsLoop(t *testing.T) {
	m, err := fsm.New(3)
	require.NoError(t, err)

	var log []string
	require.NoError(t, m.AddAction(stateA, fsm.Entry, func() {
		log = append(log, "A.entry")
		require.NoError(t, m.Transition(stateB))
	}))
	require.NoError(t, m.AddAction(stateB, fsm.Entry, func() {
		log = append(log, "B.entry")
		require.NoError(t, m.Transition(stateC))
	}))
	require.NoError(t, m.AddAction(stateC, fsm.Entry, func() { log = append(log, "C.entry") }))

	require.NoError(t, m.Transition(stateA))
	m.DoTransition()

	assert.Equal(t, []string{"A.entry", "B.entry", "C.entry"}, log)
	cur, err := m.CurrentState()
	require.NoError(t, err)
	assert.Equal(t, stateC, cur)
}

func TestRunEvaluateRunsActionsInOrderThenCommitsTransition(t *testing.T) {
	m, err := fsm.New(2)
	require.NoError(t, err)

	var log []string
	require.NoError(t, m.AddAction(stateA, fsm.Evaluate, func() { log = append(log, "eval1") }))
	require.NoError(t, m.AddAction(stateA, fsm.Evaluate, func() {
		log = append(log, "eval2")
		require.NoError(t, m.Transition(stateB))
	}))
	require.NoError(t, m.AddAction(stateB, fsm.Entry, func() { log = append(log, "B.entry") }))

	require.NoError(t, m.Transition(stateA))
	m.DoTransition()
	log = nil

	require.NoError(t, m.RunEvaluate())
	assert.Equal(t, []string{"eval1", "eval2", "B.entry"}, log)
}

func TestRunEvaluateErrorsWithNoCurrentState(t *testing.T) {
	m, err := fsm.New(1)
	require.NoError(t, err)

	assert.Error(t, m.RunEvaluate())
}

func TestAddActionRejectsOutOfRangeState(t *testing.T) {
	m, err := fsm.New(1)
	require.NoError(t, err)

	assert.Error(t, m.AddAction(5, fsm.Entry, func() {}))
	assert.Error(t, m.AddAction(-1, fsm.Entry, func() {}))
}

func TestTransitionRejectsOutOfRangeState(t *testing.T) {
	m, err := fsm.New(1)
	require.NoError(t, err)

	assert.Error(t, m.Transition(5))
}

func TestMultipleActionsOnSameTriggerRunInOrder(t *testing.T) {
	m, err := fsm.New(1)
	require.NoError(t, err)

	var log []string
	require.NoError(t, m.AddAction(stateA, fsm.Entry, func() { log = append(log, "first") }))
	require.NoError(t, m.AddAction(stateA, fsm.Entry, func() { log = append(log, "second") }))

	require.NoError(t, m.Transition(stateA))
	m.DoTransition()

	assert.Equal(t, []string{"first", "second"}, log)
}
