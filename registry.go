package repogen

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Standard sentinel errors for registry operations.
var (
	// ErrNotRegistered is returned when a contract has no registered
	// implementation.
	ErrNotRegistered = errors.New("repogen: contract not registered")

	// ErrMalformedRegistry is returned when a registry file cannot be parsed.
	ErrMalformedRegistry = errors.New("repogen: malformed registry")
)

// Registration maps a contract to its generated implementation. Both sides
// are fully-qualified names of the form "<package path>.<type name>".
type Registration struct {
	Contract       string
	Implementation string
}

// RegistryError reports a parse failure in a registry file.
type RegistryError struct {
	Line    int
	Content string
	Message string
}

// Error implements the error interface.
func (e *RegistryError) Error() string {
	return fmt.Sprintf("repogen: registry line %d %q: %s", e.Line, e.Content, e.Message)
}

// Is reports whether the target matches the sentinel error for RegistryError.
func (e *RegistryError) Is(target error) bool {
	return target == ErrMalformedRegistry
}

// ParseRegistry reads a line-oriented registry. Each entry has the form
// "<contract>=<implementation>". Blank lines and lines starting with '#'
// are skipped.
func ParseRegistry(r io.Reader) ([]Registration, error) {
	var regs []Registration
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		contract, impl, ok := strings.Cut(line, "=")
		if !ok || contract == "" || impl == "" {
			return nil, &RegistryError{Line: n, Content: line, Message: "expected <contract>=<implementation>"}
		}
		regs = append(regs, Registration{Contract: contract, Implementation: impl})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return regs, nil
}

// FormatRegistry renders registrations in the registry file format, sorted
// by contract name for deterministic output.
func FormatRegistry(regs []Registration) []byte {
	sorted := make([]Registration, len(regs))
	copy(sorted, regs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Contract < sorted[j].Contract })
	var buf bytes.Buffer
	for _, reg := range sorted {
		fmt.Fprintf(&buf, "%s=%s\n", reg.Contract, reg.Implementation)
	}
	return buf.Bytes()
}

// Merge combines registrations, with later entries replacing earlier ones
// that register the same contract. The relative order of first appearance
// is preserved.
func Merge(regs []Registration, updates ...Registration) []Registration {
	merged := make([]Registration, len(regs))
	copy(merged, regs)
	for _, u := range updates {
		replaced := false
		for i := range merged {
			if merged[i].Contract == u.Contract {
				merged[i] = u
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, u)
		}
	}
	return merged
}

// Lookup returns the implementation registered for the given contract.
func Lookup(regs []Registration, contract string) (string, error) {
	for _, reg := range regs {
		if reg.Contract == contract {
			return reg.Implementation, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotRegistered, contract)
}
