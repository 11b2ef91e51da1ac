// internal/calib/loader.go
package calib

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tamzrod/triga-plc/internal/channel"
)

// Load builds a calibration set from the file at path.
//
// An empty path yields Defaults. A file that cannot be opened also yields
// Defaults (logged as a warning); this degrade is deliberate so a missing
// calibration never stops acquisition. Malformed numbers and degenerate
// linear models are errors.
func Load(path string) (Set, error) {
	if path == "" {
		return Defaults(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Warn("calibration file unavailable, using defaults")
		return Defaults(), nil
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return Set{}, pkgerrors.Wrapf(err, "failed to load calibration %s", path)
	}
	if err := s.Validate(); err != nil {
		return Set{}, pkgerrors.Wrapf(err, "invalid calibration %s", path)
	}

	logrus.WithField("path", path).Debug("calibration loaded")
	return s, nil
}

// Parse overlays the calibration text read from r onto Defaults.
//
// Format: lines are trimmed; blank and '#' lines are skipped; "[Name]"
// selects the channel and may be followed by a '#' comment;
// "<key> <sep> <value>" sets one coefficient. The
// separator token is not checked and tokens after the value are ignored.
// Unknown sections and keys are skipped without error.
func Parse(r io.Reader) (Set, error) {
	s := Defaults()

	sc := bufio.NewScanner(r)
	section := ""
	lineNo := 0

	for sc.Scan() {
		lineNo++
		text := sc.Text()
		if lineNo == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}
		line := strings.TrimSpace(text)

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			name, err := sectionName(line)
			if err != nil {
				return Set{}, &ParseError{Line: lineNo, Section: section, Value: line, Err: err}
			}
			section = name
			continue
		}

		c, ok := channel.Parse(section)
		if !ok {
			continue
		}

		tokens := strings.Fields(line)
		key := tokens[0]
		if !hasKey(c.Shape(), key) {
			continue
		}

		if len(tokens) < 3 {
			return Set{}, &ParseError{Line: lineNo, Section: section, Key: key, Err: ErrMalformedLine}
		}

		v, err := parseNumber(tokens[2])
		if err != nil {
			return Set{}, &ParseError{Line: lineNo, Section: section, Key: key, Value: tokens[2], Err: err}
		}

		s.models[c] = withField(s.models[c], key, v)
	}

	if err := sc.Err(); err != nil {
		return Set{}, pkgerrors.Wrap(err, "failed to read calibration")
	}

	return s, nil
}

// sectionName returns the name inside a "[Name]" header. Anything after the
// closing bracket other than a '#' comment makes the header malformed.
func sectionName(line string) (string, error) {
	end := strings.IndexByte(line, ']')
	if end < 0 {
		return "", ErrMalformedLine
	}
	rest := strings.TrimSpace(line[end+1:])
	if rest != "" && !strings.HasPrefix(rest, "#") {
		return "", ErrMalformedLine
	}
	return strings.TrimSpace(line[1:end]), nil
}

func parseNumber(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrBadNumber
	}
	return v, nil
}
