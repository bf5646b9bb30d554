package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectKeyFromName(t *testing.T) {
	assert.Equal(t, "FLOW", ProjectKeyFromName("FlowOps Project"))
	assert.Equal(t, "CUST", ProjectKeyFromName("customer portal"))
	assert.Equal(t, "AB", ProjectKeyFromName("ab"))
	assert.Equal(t, "A1B2", ProjectKeyFromName("a1b2c3"))
}

func TestProjectKeyFromName_SkipsNonAlnum(t *testing.T) {
	assert.Equal(t, "MYPR", ProjectKeyFromName("--my project--"))
	assert.Equal(t, "PROJ", ProjectKeyFromName("!!!"))
	assert.Equal(t, "PROJ", ProjectKeyFromName(""))
}

func TestProjectKeyFromName_CountsRunes(t *testing.T) {
	assert.Equal(t, "ÜBUN", ProjectKeyFromName("Übungsprojekt"))
	assert.Equal(t, "ÄÖÜS", ProjectKeyFromName("äöüss"))
}

func TestTaskKey(t *testing.T) {
	assert.Equal(t, "FLOW-1", TaskKey("FlowOps Project", 1))
	assert.Equal(t, "FLOW-42", TaskKey("FlowOps Project", 42))
	assert.Equal(t, "TASK-7", TaskKey("***", 7))
}
