package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotateCmd_Stdin(t *testing.T) {
	cmd := newAnnotateCmd()
	cmd.SetIn(strings.NewReader("Left samples at the desk."))
	cmd.SetArgs([]string{})

	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Documentation Violation")
	assert.Contains(t, out.String(), "Update CRM System")
}

func TestAnnotateCmd_EmptyInput(t *testing.T) {
	cmd := newAnnotateCmd()
	cmd.SetIn(strings.NewReader("   \n"))
	cmd.SetArgs([]string{})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	assert.Error(t, cmd.Execute())
}
