package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/agequiz/internal/catalog"
)

func TestDisplayVersion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"v1.2.3", "v1.2.3"},
		{"1.2", "v1.2.0"},
		{"v0.4.0-rc.1", "v0.4.0-rc.1"},
		{"(devel)", "(devel)"},
		{"", "(devel)"},
		{"abc123", "(devel)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, displayVersion(tt.in), "input %q", tt.in)
	}
}

func TestPrintQuestions(t *testing.T) {
	var buf bytes.Buffer
	printQuestions(&buf, catalog.New(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	out := buf.String()

	assert.Contains(t, out, "Q.01")
	assert.Contains(t, out, "Q.05")
	assert.Contains(t, out, "1 ~ 10")
	assert.Contains(t, out, "1926 ~ 2026")
	assert.Contains(t, out, "당신의 나이는?")
	assert.True(t, strings.HasSuffix(out, "5 questions\n"))
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "agequiz (devel)\n", buf.String())
}
