// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"cogentcore.org/arpes/tensor"
	"gopkg.in/yaml.v3"
)

// MetaFormats are the formats for writing metadata attributes.
type MetaFormats int32

const (
	// YAML writes a YAML mapping.
	YAML MetaFormats = iota

	// JSON writes a JSON object.
	JSON
)

// ParseMetaFormat returns the format with the given name.
func ParseMetaFormat(s string) (MetaFormats, error) {
	switch s {
	case "yaml", "yml", "":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return YAML, fmt.Errorf("loader: metadata format %q is not yaml or json", s)
}

// WriteMetadata writes the given attributes in order to w.
func WriteMetadata(w io.Writer, attrs *tensor.Attrs, format MetaFormats) error {
	if format == JSON {
		return writeJSON(w, attrs)
	}
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, k := range attrs.Keys {
		vn := &yaml.Node{}
		if err := vn.Encode(attrs.Values[i]); err != nil {
			return fmt.Errorf("loader: attribute %q: %w", k, err)
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: k}, vn)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return err
	}
	return enc.Close()
}

func writeJSON(w io.Writer, attrs *tensor.Attrs) error {
	var b bytes.Buffer
	b.WriteString("{")
	for i, k := range attrs.Keys {
		kb, err := json.Marshal(k)
		if err != nil {
			return err
		}
		vb, err := json.Marshal(attrs.Values[i])
		if err != nil {
			return fmt.Errorf("loader: attribute %q: %w", k, err)
		}
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("\n  ")
		b.Write(kb)
		b.WriteString(": ")
		b.Write(vb)
	}
	b.WriteString("\n}\n")
	_, err := w.Write(b.Bytes())
	return err
}
