package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

var ErrBadInput = errors.New("bad input")

// demoValues is the classic example array used by --demo.
func demoValues() []int {
	return []int{10, 7, 8, 9, 1, 5}
}

// parseInts converts every word into an int.
func parseInts(words []string) ([]int, error) {
	values := make([]int, 0, len(words))

	for i, w := range words {
		v, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d (%q) is not an integer", ErrBadInput, i+1, w)
		}

		values = append(values, v)
	}

	return values, nil
}

// readWords parses whitespace separated integers.
func readWords(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var words []string
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return parseInts(words)
}

// document is the mapping form accepted by --input.
type document struct {
	Values []int `yaml:"values"`
}

// decodeDocument accepts either a bare list ("[3, 1, 2]" or a YAML
// sequence) or a mapping with a "values" list. JSON is valid YAML, so both
// formats go through the same decoder.
func decodeDocument(data []byte) ([]int, error) {
	var list []int
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadInput, err)
	}

	return doc.Values, nil
}

func readFile(path string) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return decodeDocument(data)
}
