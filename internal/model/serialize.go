package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DocumentVersion is the current party file format version.
const DocumentVersion = 1

// LoadDocument loads a party file from the given path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read party file %s: %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse party file %s: %w", path, err)
	}
	if doc.Version == 0 {
		doc.Version = DocumentVersion
	}

	return &doc, nil
}

// SaveDocument writes a party file to the given path.
// The file is written to a temporary sibling and renamed into place so a
// failed write never leaves a truncated file behind.
// Empty optional fields are omitted and multi-line notes use block style.
func SaveDocument(path string, doc *Document) error {
	data, err := MarshalDocument(doc)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".party-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to write party file %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write party file %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write party file %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write party file %s: %w", path, err)
	}

	return nil
}

// MarshalDocument encodes a document with stable field order.
func MarshalDocument(doc *Document) ([]byte, error) {
	node := buildDocumentNode(doc)
	data, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("failed to encode party file: %w", err)
	}
	return data, nil
}

func buildDocumentNode(doc *Document) *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode}

	version := doc.Version
	if version == 0 {
		version = DocumentVersion
	}
	addIntField(root, "version", version)

	if len(doc.Parties) > 0 {
		parties := &yaml.Node{Kind: yaml.SequenceNode}
		for _, p := range doc.Parties {
			parties.Content = append(parties.Content, buildPartyNode(p))
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "parties"},
			parties,
		)
	}

	return root
}

// buildPartyNode creates a yaml.Node for a Party and its children.
func buildPartyNode(p *Party) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}

	addStringField(node, "id", p.ID.String())
	addStringField(node, "name", p.Name)
	addTimeField(node, "date", p.Date)
	addStringField(node, "location", p.Location)
	if p.Theme != "" {
		addStringField(node, "theme", p.Theme)
	}
	if p.Notes != "" {
		addMultilineStringField(node, "notes", p.Notes)
	}

	if len(p.Guests) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for i := range p.Guests {
			seq.Content = append(seq.Content, buildGuestNode(&p.Guests[i]))
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "guests"},
			seq,
		)
	}

	if len(p.GoodyBagItems) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for i := range p.GoodyBagItems {
			seq.Content = append(seq.Content, buildItemNode(&p.GoodyBagItems[i]))
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "goody_bag_items"},
			seq,
		)
	}

	return node
}

func buildGuestNode(g *Guest) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}

	addStringField(node, "id", g.ID.String())
	addStringField(node, "name", g.Name)
	if g.Contact != "" {
		addStringField(node, "contact", g.Contact)
	}
	addBoolField(node, "confirmed", g.Confirmed)
	if g.Notes != "" {
		addMultilineStringField(node, "notes", g.Notes)
	}

	return node
}

func buildItemNode(it *GoodyBagItem) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}

	addStringField(node, "id", it.ID.String())
	addStringField(node, "name", it.Name)
	addIntField(node, "quantity", it.Quantity)
	addBoolField(node, "purchased", it.Purchased)
	if it.Price.IsSet() {
		// Quoted so the decimal survives untouched by float parsing.
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "price"},
			&yaml.Node{Kind: yaml.ScalarNode, Value: it.Price.Exact(), Style: yaml.DoubleQuotedStyle},
		)
	}

	return node
}

// Helper functions for building yaml.Node

func addStringField(node *yaml.Node, key, value string) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: "!!str"},
	)
}

func addIntField(node *yaml.Node, key string, value int) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%d", value), Tag: "!!int"},
	)
}

func addBoolField(node *yaml.Node, key string, value bool) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%t", value), Tag: "!!bool"},
	)
}

func addTimeField(node *yaml.Node, key string, t time.Time) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: t.Format(time.RFC3339)},
	)
}

func addMultilineStringField(node *yaml.Node, key, value string) {
	style := yaml.LiteralStyle
	if !strings.Contains(value, "\n") {
		style = 0
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Style: style, Tag: "!!str"},
	)
}
