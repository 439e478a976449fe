package rtlog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlath/rtlog"
)

func TestNopLoggerIsALogger(t *testing.T) {
	var l rtlog.Logger = rtlog.NopLogger{}
	l.Debugf("x=%d", 1)
	l.Infof("y")
	l.Warnf("z")
	l.Errorf("boom: %v", assert.AnError)
}

func TestWriterFormatsWithLevelPrefix(t *testing.T) {
	var lines []string
	w := rtlog.Writer{Write: func(s string) { lines = append(lines, s) }}

	var l rtlog.Logger = w
	l.Infof("hello %s", "world")
	l.Errorf("bad: %d", 7)

	assert.Equal(t, []string{"INFO  hello world", "ERROR bad: 7"}, lines)
}
