/*
PURPOSE:
  Parses a single benchmark results file into a model.Record.

REQUIREMENTS:
  User-specified:
  - One "key:value" pair per line, split on the first colon.
  - avg_throughput is a float, burst_size and test_duration are ints.

  Implementation-discovered:
  - Values may contain further colons (timestamps), so only the first one splits.
  - A coercion failure poisons the whole file, same as an unreadable file.
  - Lines up to maxLineSize are accepted (long free-form notes).

ARCHITECTURE INTEGRATION:
  - Called by: internal/dataset/loader.go

ERROR HANDLING:
  - Returns an error naming the file for open/read/coercion failures.

USAGE:
  rec, err := dataset.ParseFile("results/results_burst_32.txt")
*/

package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/daryltucker/burst-analyzer/internal/model"
)

const separator = ":"

// maxLineSize bounds a single line; free-form values can run far past
// bufio's 64 KiB default.
const maxLineSize = 16 * 1024 * 1024

// ParseFile reads path and returns the record it describes.
func ParseFile(path string) (model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Record{}, fmt.Errorf("error parsing %s: %w", path, err)
	}
	defer f.Close()

	rec := model.Record{
		Source: path,
		Fields: make(map[string]string),
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		key, value, ok := strings.Cut(line, separator)
		if !ok {
			continue
		}
		if err := setField(&rec, strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return model.Record{}, fmt.Errorf("error parsing %s: %w", path, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return model.Record{}, fmt.Errorf("error parsing %s: %w", path, err)
	}

	return rec, nil
}

// setField stores value under key, coercing the typed fields.
func setField(rec *model.Record, key, value string) error {
	switch key {
	case model.FieldThroughput:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
		rec.Throughput, rec.HasThroughput = v, true
	case model.FieldBurstSize:
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
		rec.BurstSize, rec.HasBurstSize = v, true
	case model.FieldDuration:
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
		rec.Duration, rec.HasDuration = v, true
	default:
		rec.Fields[key] = value
	}
	return nil
}
