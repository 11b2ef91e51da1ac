// internal/calib/loader_test.go
package calib

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/triga-plc/internal/channel"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "calib.txt")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_EmptyPathDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoad_MissingFileDefaults(t *testing.T) {
	s, err := Load("/no/such/file")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoad_OnlyOneSection(t *testing.T) {
	s, err := Load(writeFile(t, "[CLogALog]\nA = 5\nB = 2\n"))
	require.NoError(t, err)

	m, ok := s.Logarithmic(channel.CLogALog)
	require.True(t, ok)
	assert.Equal(t, Logarithmic{A: 5, B: 2}, m)

	def := Defaults()
	for _, c := range channel.All() {
		if c == channel.CLogALog {
			continue
		}
		assert.Equal(t, def.Model(c), s.Model(c), c.String())
	}
}

func TestParse_Tolerance(t *testing.T) {
	in := `
  # comment line
[BarraReg]
   x0 = 100
x1 : 200          trailing tokens ignored
  y0 = 1

# unknown key in a known section
z9 = 12
[NotAChannel]
x0 = not-a-number
[ CPer ]
y1 = 4.5
A = also-ignored
[CParAPer]
K = 4000
L = 1e3
`
	s, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	br, _ := s.Linear(channel.BarraReg)
	assert.Equal(t, Linear{X0: 100, X1: 200, Y0: 1, Y1: 902}, br)

	cp, _ := s.Linear(channel.CPer)
	assert.Equal(t, Linear{X0: 0, X1: 1, Y0: -2, Y1: 4.5}, cp)

	rp, _ := s.Reciprocal(channel.CParAPer)
	assert.Equal(t, Reciprocal{K: 4000, L: 1000}, rp)
}

func TestParse_LeadingBOM(t *testing.T) {
	s, err := Parse(strings.NewReader("\ufeff[CLogALog]\nA = 5\nB = 2\n"))
	require.NoError(t, err)

	m, ok := s.Logarithmic(channel.CLogALog)
	require.True(t, ok)
	assert.Equal(t, Logarithmic{A: 5, B: 2}, m)
}

func TestParse_SectionHeaderComment(t *testing.T) {
	s, err := Parse(strings.NewReader("[SRadPoc]\nA = 1\n[SRadAer] # aerosol\nA = 9\n"))
	require.NoError(t, err)

	poc, _ := s.Logarithmic(channel.SRadPoc)
	aer, _ := s.Logarithmic(channel.SRadAer)
	assert.Equal(t, 1.0, poc.A)
	assert.Equal(t, 9.0, aer.A)
}

func TestParse_MalformedSectionHeader(t *testing.T) {
	for _, line := range []string{"[SRadAer] A = 9", "[SRadAer"} {
		_, err := Parse(strings.NewReader("[SRadPoc]\nA = 1\n" + line + "\nA = 9\n"))
		require.Error(t, err, line)

		var pe *ParseError
		require.True(t, errors.As(err, &pe), line)
		assert.Equal(t, 3, pe.Line)
		assert.ErrorIs(t, err, ErrMalformedLine)
	}
}

func TestParse_BadNumberFails(t *testing.T) {
	_, err := Parse(strings.NewReader("[CLin]\nx0 = 14\nx1 = abc\n"))
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)
	assert.Equal(t, "CLin", pe.Section)
	assert.Equal(t, "x1", pe.Key)
	assert.Equal(t, "abc", pe.Value)
	assert.ErrorIs(t, err, ErrBadNumber)
}

func TestParse_NonFiniteRejected(t *testing.T) {
	_, err := Parse(strings.NewReader("[SRadPoc]\nA = NaN\n"))
	assert.ErrorIs(t, err, ErrBadNumber)
}

func TestParse_MissingValueFails(t *testing.T) {
	_, err := Parse(strings.NewReader("[SRadPoc]\nA =\n"))
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestLoad_BadNumberPropagates(t *testing.T) {
	_, err := Load(writeFile(t, "[CLin]\ny1 = 2,375\n"))
	assert.ErrorIs(t, err, ErrBadNumber)
}

func TestLoad_DegenerateLinearRejected(t *testing.T) {
	_, err := Load(writeFile(t, "[SVasPri]\nx0 = 5\nx1 = 5\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDegenerateLinear)

	var ce *CalibrationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, channel.SVasPri, ce.Channel)
}

func TestEncode_RoundTrip(t *testing.T) {
	s := Defaults()
	var err error
	s, err = s.With(channel.CPer, Linear{X0: 3.25, X1: 4097, Y0: -0.1, Y1: 110.000001})
	require.NoError(t, err)
	s, err = s.With(channel.SRadRes, Logarithmic{A: 1.5e-7, B: 0.00123456789012345})
	require.NoError(t, err)
	s, err = s.With(channel.CLogAPer, Reciprocal{K: 2048, L: -33.3})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s))

	got, err := Parse(&buf)
	require.NoError(t, err)

	for _, c := range channel.All() {
		want := s.Model(c)
		if want == nil {
			assert.Nil(t, got.Model(c))
			continue
		}
		for _, k := range shapeKeys[c.Shape()] {
			assert.InDelta(t, field(want, k), field(got.Model(c), k), 1e-12, "%s.%s", c, k)
		}
	}
}

func TestEncode_MarksUncalibrated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Defaults()))

	out := buf.String()
	assert.Contains(t, out, "[SRadAer]\n# uncalibrated\nA = -2\nB = 0\n")
	assert.Contains(t, out, "[CLin]\nx0 = 14\nx1 = 8145\ny0 = 0\ny1 = 2.375\n")
	assert.NotContains(t, out, "[CLinScale]")
}

func TestSetWith_ShapeMismatch(t *testing.T) {
	_, err := Defaults().With(channel.CLin, Logarithmic{A: 1})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Defaults().With(channel.CLinScale, Linear{X0: 0, X1: 1})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Defaults().With(channel.Channel(-3), Linear{})
	assert.ErrorIs(t, err, ErrUnknownChannel)
}

func TestDefaults_Valid(t *testing.T) {
	s := Defaults()
	require.NoError(t, s.Validate())
	assert.True(t, s.Uncalibrated(channel.SVasPri))
	assert.False(t, s.Uncalibrated(channel.BarraCon))
	assert.Nil(t, s.Model(channel.CLinScale))
}
