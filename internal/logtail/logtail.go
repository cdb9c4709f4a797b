package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Line is one parsed entry from the console's own log file.
type Line struct {
	Level   string
	Time    time.Time
	Message string
	Raw     string
}

// Read returns at most maxLines entries from the end of the file at
// path, oldest first. A missing file yields no lines and no error.
func Read(path string, maxLines int) ([]Line, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	// Ring buffer keeps memory bounded by maxLines, not file size.
	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]Line, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = parse(ring[(idx+i)%maxLines])
		}
	} else {
		for i := 0; i < count; i++ {
			lines[i] = parse(ring[i])
		}
	}
	return lines, nil
}

// zapEntry matches the fields zap's production encoder emits.
type zapEntry struct {
	Level string  `json:"level"`
	TS    float64 `json:"ts"`
	Msg   string  `json:"msg"`
}

func parse(raw string) Line {
	line := Line{Raw: raw}
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		line.Message = raw
		return line
	}
	var entry zapEntry
	if err := json.Unmarshal([]byte(trimmed), &entry); err != nil {
		line.Message = raw
		return line
	}
	line.Level = strings.ToUpper(entry.Level)
	line.Message = entry.Msg
	if entry.TS > 0 {
		sec := int64(entry.TS)
		nsec := int64((entry.TS - float64(sec)) * 1e9)
		line.Time = time.Unix(sec, nsec)
	}
	return line
}
