package parser

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-agents/vent-agent/internal/geometry"
	"github.com/rs/zerolog"
)

var ErrInvalidLine = errors.New("invalid vent line")

var linePattern = regexp.MustCompile(`^(\d+),(\d+)\s*->\s*(\d+),(\d+)$`)

// Record is one parsed line. Error is set when the line could not be parsed.
type Record struct {
	LineNumber int
	Segment    geometry.Segment
	Error      error
}

// ParseLine parses "x1,y1 -> x2,y2".
func ParseLine(line string) (geometry.Segment, error) {
	m := linePattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return geometry.Segment{}, fmt.Errorf("%w: %q", ErrInvalidLine, line)
	}

	var coords [4]int
	for i := range coords {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return geometry.Segment{}, fmt.Errorf("%w: %q: %w", ErrInvalidLine, line, err)
		}
		if n > geometry.MaxCoordinate {
			return geometry.Segment{}, fmt.Errorf("%w: %q: coordinate %d exceeds %d: %w",
				ErrInvalidLine, line, n, geometry.MaxCoordinate, geometry.ErrCoordinateOutOfRange)
		}
		coords[i] = n
	}

	return geometry.FromCoords(coords[0], coords[1], coords[2], coords[3]), nil
}

// Parse reads every non-blank line of r. The first malformed line fails the whole input.
func Parse(r io.Reader) ([]geometry.Segment, error) {
	scanner := bufio.NewScanner(r)
	var segments []geometry.Segment

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		segment, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		segments = append(segments, segment)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return segments, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(input string) ([]geometry.Segment, error) {
	return Parse(strings.NewReader(input))
}

// Reader streams records from a vent file, reporting bad lines individually.
type Reader struct {
	source io.Reader
	logger *zerolog.Logger
}

func NewReader(source io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		source: source,
		logger: logger,
	}
}

// ReadAll emits one Record per non-blank line. The channel is closed at EOF, on a read error, or
// when ctx is cancelled.
func (r *Reader) ReadAll(ctx context.Context) <-chan Record {
	ch := make(chan Record)

	go func() {
		defer close(ch)

		scanner := bufio.NewScanner(r.source)
		lineNumber := 0
		for scanner.Scan() {
			lineNumber++
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}

			segment, err := ParseLine(line)
			if err != nil {
				r.logger.Warn().Err(err).Int("line", lineNumber).Msg("Failed to parse vent line")
			}

			select {
			case ch <- Record{LineNumber: lineNumber, Segment: segment, Error: err}:
			case <-ctx.Done():
				r.logger.Debug().Int("line", lineNumber).Msg("Reader cancelled")
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Msg("Failed to read input")
			select {
			case ch <- Record{LineNumber: lineNumber + 1, Error: err}:
			case <-ctx.Done():
			}
		}
	}()

	return ch
}
