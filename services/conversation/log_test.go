package conversation

import (
	"fmt"
	"testing"

	"trimly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndTurns(t *testing.T) {
	l := NewLog(10)
	l.Append("s1", models.RoleUser, "hi")
	l.Append("s1", models.RoleAssistant, "hello")
	l.Append("s2", models.RoleUser, "other session")

	turns := l.Turns("s1")
	require.Len(t, turns, 2)
	assert.Equal(t, models.RoleUser, turns[0].Role)
	assert.Equal(t, "hello", turns[1].Content)
	assert.Len(t, l.Turns("s2"), 1)
}

func TestCapEvictsOldestFirst(t *testing.T) {
	l := NewLog(3)
	for i := 0; i < 5; i++ {
		l.Append("s1", models.RoleUser, fmt.Sprintf("msg-%d", i))
	}

	turns := l.Turns("s1")
	require.Len(t, turns, 3)
	assert.Equal(t, "msg-2", turns[0].Content)
	assert.Equal(t, "msg-4", turns[2].Content)
}

func TestTurnsReturnsCopy(t *testing.T) {
	l := NewLog(10)
	l.Append("s1", models.RoleUser, "original")

	turns := l.Turns("s1")
	turns[0].Content = "mutated"

	assert.Equal(t, "original", l.Turns("s1")[0].Content)
}
