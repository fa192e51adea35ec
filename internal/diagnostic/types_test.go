package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnostics_AddAndError(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.Add(Diagnostic{Severity: SeverityInfo, Code: "resolved", Message: "3 fields", Container: "Server"})
	d.Add(Diagnostic{Severity: SeverityWarning, Code: "unused_default", Message: "default ignored", Container: "Server", Field: "Port"})
	d.Add(Diagnostic{Severity: SeverityError, Code: "unknown_directive", Message: `unknown directive "frobnicate"`, Container: "Server", Field: "Port"})
	d.Add(Diagnostic{Severity: SeverityError, Code: "value_shape_mismatch", Message: "expected bool", Container: "Client", Field: "Debug", Source: "client.go:4"})

	assert.True(t, d.HasErrors())
	assert.Len(t, d.Errors, 2)
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)
	assert.Len(t, d.All(), 4)

	assert.EqualError(t, d.Error(),
		`Server.Port: [unknown_directive] unknown directive "frobnicate"; `+
			`client.go:4 Client.Debug: [value_shape_mismatch] expected bool`)
}

func TestDiagnostics_SortAndMerge(t *testing.T) {
	var a, b Diagnostics

	a.Add(failure("Zeta", "A"))
	b.Add(failure("Alpha", "B"))
	b.Add(failure("Alpha", "A"))
	b.Add(Diagnostic{Severity: SeverityWarning, Container: "Alpha"})

	a.Merge(b)
	a.Sort()

	got := make([]string, len(a.Errors))
	for i, e := range a.Errors {
		got[i] = e.Container + "." + e.Field
	}

	assert.Equal(t, []string{"Alpha.A", "Alpha.B", "Zeta.A"}, got)
	assert.Len(t, a.Warnings, 1)
}

func failure(container, field string) Diagnostic {
	return Diagnostic{Severity: SeverityError, Code: "x", Message: "m", Container: container, Field: field}
}

func TestDiagnostic_String(t *testing.T) {
	assert.Equal(t, "msg", Diagnostic{Message: "msg"}.String())
	assert.Equal(t, "Server: [c] msg", Diagnostic{Code: "c", Message: "msg", Container: "Server"}.String())
	assert.Equal(t, "Port: msg", Diagnostic{Message: "msg", Field: "Port"}.String())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())

	text, err := SeverityError.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "error", string(text))
}
