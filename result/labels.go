package result

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadLabels reads the class labels the object Model was trained on from the
// given text file.  It should contain one label per line.
func LoadLabels(file string) ([]string, error) {

	// open the file
	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	defer f.Close()

	// create a scanner to read the file.
	scanner := bufio.NewScanner(f)

	var labels []string

	// read and trim each line
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		labels = append(labels, line)
	}

	// check for errors during scanning
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return labels, nil
}

// ApplyLabels fills in the Label of every object that has none using its
// Class as an index into labels
func (r *Result) ApplyLabels(labels []string) {
	if r == nil {
		return
	}

	for i := range r.Object {
		item := &r.Object[i]

		if item.Label != "" {
			continue
		}

		if item.Class >= 0 && item.Class < len(labels) {
			item.Label = labels[item.Class]
		}
	}
}

// Decode reads one JSON encoded Result
func Decode(rd io.Reader) (*Result, error) {

	res := &Result{}

	if err := json.NewDecoder(rd).Decode(res); err != nil {
		return nil, fmt.Errorf("error decoding result: %w", err)
	}

	return res, nil
}

// Load reads a JSON encoded Result from file
func Load(file string) (*Result, error) {

	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	defer f.Close()

	return Decode(f)
}
