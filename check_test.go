package formulaorder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangsnmp/formulaorder/internal/types"
)

func TestCheckValid(t *testing.T) {
	report := Check([]byte("a = b\nb = 1\n"))

	assert.False(t, report.HasErrors())
	assert.NoError(t, report.Err())
	assert.Empty(t, report.Diagnostics)
	require.NotNil(t, report.Result)
	assert.Equal(t, []string{"b = 1", "a = b"}, report.Result.Labels())
}

func TestCheckSyntaxError(t *testing.T) {
	report := Check([]byte("a = 1\nb = 1 % 2"), WithSourceName("in.txt"))

	require.Len(t, report.Diagnostics, 1)
	d := report.Diagnostics[0]
	assert.Equal(t, SeverityError, d.Severity)
	assert.Equal(t, types.DiagUnknownCharacter, d.Code)
	assert.Equal(t, "in.txt", d.Source)
	assert.Equal(t, 2, d.Line)
	assert.Equal(t, 7, d.Column)

	assert.Nil(t, report.Result)
	assert.True(t, report.HasErrors())
	assert.ErrorIs(t, report.Err(), ErrSyntax)
	assert.Equal(t, "syntax error", Message(report.Err()))
}

func TestCheckListsEveryCycleGroup(t *testing.T) {
	report := Check([]byte(strings.Join([]string{
		"a = b",
		"b = a",
		"c = a + d",
		"d = e",
		"e = f",
		"f = d",
	}, "\n")))

	require.Len(t, report.Diagnostics, 2)
	for _, d := range report.Diagnostics {
		assert.Equal(t, types.DiagDependencyCycle, d.Code)
	}
	assert.Equal(t, 1, report.Diagnostics[0].Line)
	assert.Equal(t, "formulas depend on each other: a = b | b = a", report.Diagnostics[0].Message)
	assert.Equal(t, 4, report.Diagnostics[1].Line)
	assert.Equal(t, "formulas depend on each other: d = e | e = f | f = d", report.Diagnostics[1].Message)

	assert.ErrorIs(t, report.Err(), ErrCycle)
	assert.Equal(t, "cycle", Message(report.Err()))
}

func TestCheckSameLineCycle(t *testing.T) {
	report := Check([]byte("x = 1\na, b = 1, a"))

	require.Len(t, report.Diagnostics, 1)
	d := report.Diagnostics[0]
	assert.Equal(t, types.DiagSameLineCycle, d.Code)
	assert.Equal(t, 2, d.Line)
	assert.Equal(t, "cycle detected: b -> a", d.Message)
	assert.ErrorIs(t, report.Err(), ErrCycle)
}

func TestCheckCrossCheckAgrees(t *testing.T) {
	inputs := []string{
		"a = b\nb = -(1 + 2) * 3",
		"a = 1 +",
		"a = 12b",
		"x, y = 1, 2\nz = x / y",
	}
	for _, in := range inputs {
		report := Check([]byte(in), WithCrossCheck(true))
		for _, d := range report.Diagnostics {
			assert.NotEqual(t, types.DiagGrammarMismatch, d.Code, "%q: %s", in, d)
		}
	}
}

func TestCrossCheckPerLine(t *testing.T) {
	assert.Empty(t, crossCheck("a = 1\nb = (\n= 2\nc, d = e"))
}

func TestReportOrderMatchesOrder(t *testing.T) {
	src := []byte("p = q + r\nq = r\nr = 1\ns = p")
	res, err := Order(src)
	require.NoError(t, err)

	report := Check(src)
	require.NotNil(t, report.Result)
	assert.Equal(t, res.Labels(), report.Result.Labels())
}

func TestDiagCodesIncludeCheckCodes(t *testing.T) {
	codes := make(map[string]bool)
	for _, info := range DiagCodes() {
		codes[info.Code] = true
	}
	for _, c := range []string{types.DiagDependencyCycle, types.DiagGrammarMismatch, types.DiagSameLineCycle} {
		assert.True(t, codes[c], c)
	}
}
