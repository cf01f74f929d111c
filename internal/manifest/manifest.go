// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package manifest loads the YAML list of vaults constructed at server boot.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-lock-keeper/internal/vault"
	"github.com/MKhiriev/go-lock-keeper/models"
)

var (
	ErrEmptyManifest    = errors.New("manifest: payload is empty")
	ErrUnknownKind      = errors.New("manifest: unknown vault kind")
	ErrMissingCreatedAt = errors.New("manifest: created_at is required")
)

// Kind selects the construction shape of an entry.
type Kind string

const (
	KindFixed   Kind = "fixed"
	KindVesting Kind = "vesting"
)

// Manifest is the top-level document.
type Manifest struct {
	Vaults []Entry `yaml:"vaults"`
}

// Entry is one vault. Exactly one of Fixed and Vesting is set, matching Kind.
type Entry struct {
	Kind    Kind
	Fixed   *models.FixedLockRequest
	Vesting *models.VestingRequest
}

// UnmarshalYAML reads the kind first and decodes the remaining fields into
// the request shape it names.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	var head struct {
		Kind string `yaml:"kind"`
	}
	if err := node.Decode(&head); err != nil {
		return err
	}

	e.Kind = Kind(strings.ToLower(strings.TrimSpace(head.Kind)))
	switch e.Kind {
	case KindFixed:
		e.Fixed = new(models.FixedLockRequest)
		return node.Decode(e.Fixed)
	case KindVesting:
		e.Vesting = new(models.VestingRequest)
		return node.Decode(e.Vesting)
	default:
		return fmt.Errorf("%w %q at line %d", ErrUnknownKind, head.Kind, node.Line)
	}
}

// Name returns the human label of the entry.
func (e Entry) Name() string {
	switch {
	case e.Fixed != nil:
		return e.Fixed.Name
	case e.Vesting != nil:
		return e.Vesting.Name
	}
	return ""
}

// Params converts the entry. Manifest vaults must pin created_at, otherwise
// every boot would derive a different vault ID.
func (e Entry) Params() (vault.Params, error) {
	switch {
	case e.Fixed != nil:
		if e.Fixed.CreatedAt == 0 {
			return vault.Params{}, fmt.Errorf("%w: vault %q", ErrMissingCreatedAt, e.Fixed.Name)
		}
		return e.Fixed.Params(e.Fixed.CreatedAt)
	case e.Vesting != nil:
		if e.Vesting.CreatedAt == 0 {
			return vault.Params{}, fmt.Errorf("%w: vault %q", ErrMissingCreatedAt, e.Vesting.Name)
		}
		return e.Vesting.Params(e.Vesting.CreatedAt)
	}
	return vault.Params{}, fmt.Errorf("%w %q", ErrUnknownKind, e.Kind)
}

// Parse decodes a manifest from YAML bytes.
func Parse(data []byte) (Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Manifest{}, ErrEmptyManifest
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("manifest: decode: %w", err)
	}
	return m, nil
}

// Load reads a manifest from r.
func Load(r io.Reader) (Manifest, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest: read: %w", err)
	}
	return Parse(content)
}

// LoadFile reads a manifest from path.
func LoadFile(path string) (Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	m, err := Parse(content)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
