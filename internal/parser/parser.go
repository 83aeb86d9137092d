// Package parser turns free-text game log lines into structured results.
//
// A line has the shape
//
//	<White Name> - <Black Name> <result>[ <YYYYMMDD>]
//
// where <result> is one of 1:0, 1-0, 0:1, 0-1, 0.5:0.5, 0.5-0.5. Lines
// that do not match are not errors; they simply parse to nothing.
package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Game is one parsed log line. Scores are 1/0, 0/1 or 0.5/0.5; Date is the
// human-readable form of DateRaw and empty when the line carried no date.
type Game struct {
	White      string
	Black      string
	WhiteScore float64
	BlackScore float64
	Result     string
	DateRaw    string
	Date       string
}

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ParseLine parses one raw line. The second return value is false for
// blank or malformed lines, which callers skip silently.
func ParseLine(line string) (*Game, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, false
	}

	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil, false
	}

	// A trailing 8-digit token is a YYYYMMDD date, not part of the result.
	var dateRaw string
	if len(fields) > 3 && isDateToken(fields[len(fields)-1]) {
		dateRaw = fields[len(fields)-1]
		line = strings.Join(fields[:len(fields)-1], " ")
	}

	idx := strings.LastIndex(line, " ")
	if idx < 0 {
		return nil, false
	}
	playerPart, result := line[:idx], line[idx+1:]

	if !strings.Contains(playerPart, " - ") {
		return nil, false
	}
	names := strings.SplitN(playerPart, " - ", 2)
	white := strings.TrimSpace(names[0])
	black := strings.TrimSpace(names[1])

	whiteScore, blackScore, ok := parseResult(result)
	if !ok {
		return nil, false
	}

	return &Game{
		White:      white,
		Black:      black,
		WhiteScore: whiteScore,
		BlackScore: blackScore,
		Result:     result,
		DateRaw:    dateRaw,
		Date:       FormatDate(dateRaw),
	}, true
}

func parseResult(result string) (whiteScore, blackScore float64, ok bool) {
	switch result {
	case "1:0", "1-0":
		return 1, 0, true
	case "0:1", "0-1":
		return 0, 1, true
	case "0.5:0.5", "0.5-0.5":
		return 0.5, 0.5, true
	}
	return 0, 0, false
}

func isDateToken(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatDate renders an 8-digit YYYYMMDD string as "Jan 2, 2025". Anything
// malformed or out of range yields the empty string rather than an error.
func FormatDate(raw string) string {
	if len(raw) != 8 {
		return ""
	}

	year := raw[:4]
	month, err := strconv.Atoi(raw[4:6])
	if err != nil || month < 1 || month > 12 {
		return ""
	}
	day, err := strconv.Atoi(raw[6:8])
	if err != nil || day < 1 || day > 31 {
		return ""
	}

	return fmt.Sprintf("%s %d, %s", monthNames[month-1], day, year)
}
