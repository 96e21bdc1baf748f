package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to TaskStatus
		ok       bool
	}{
		{TaskStatusReceived, TaskStatusProcessing, true},
		{TaskStatusReceived, TaskStatusFailed, true},
		{TaskStatusReceived, TaskStatusCompleted, false},
		{TaskStatusReceived, TaskStatusReconciling, false},
		{TaskStatusProcessing, TaskStatusReconciling, true},
		{TaskStatusProcessing, TaskStatusBuildingReport, false},
		{TaskStatusReconciling, TaskStatusBuildingReport, true},
		{TaskStatusReconciling, TaskStatusProcessing, false},
		{TaskStatusBuildingReport, TaskStatusCompleted, true},
		{TaskStatusBuildingReport, TaskStatusFailed, true},
		{TaskStatusCompleted, TaskStatusFailed, false},
		{TaskStatusFailed, TaskStatusProcessing, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, TaskStatusCompleted.IsTerminal())
	assert.True(t, TaskStatusFailed.IsTerminal())
	assert.False(t, TaskStatusReceived.IsTerminal())
	assert.False(t, TaskStatusProcessing.IsTerminal())
	assert.False(t, TaskStatusReconciling.IsTerminal())
	assert.False(t, TaskStatusBuildingReport.IsTerminal())
}
