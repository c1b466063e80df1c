// Package config provides configuration types, defaults, and persistence for sqlpen.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveConnections updates the connections section of the config file.
// This preserves comments and formatting in other sections by using yaml.Node.
func SaveConnections(configPath string, conns []ConnectionConfig) error {
	if err := ValidateConnections(conns); err != nil {
		return err
	}

	// Read existing file content
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	// Parse into yaml.Node to preserve comments
	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	connsNode := buildConnectionsNode(conns)

	// Update or create the connections section
	if doc.Kind == 0 {
		// Empty or new file - create document structure
		doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{
					Kind: yaml.MappingNode,
					Content: []*yaml.Node{
						{Kind: yaml.ScalarNode, Value: "connections"},
						connsNode,
					},
				},
			},
		}
	} else if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind == yaml.MappingNode {
			// Find and replace connections key, or append it
			found := false
			for i := 0; i < len(root.Content)-1; i += 2 {
				if root.Content[i].Value == "connections" {
					root.Content[i+1] = connsNode
					found = true
					break
				}
			}
			if !found {
				root.Content = append(root.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: "connections"},
					connsNode,
				)
			}
		}
	}

	// Marshal back to YAML
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	// Write atomically (write to temp, then rename)
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".sqlpen.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(buf.Bytes()); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// buildConnectionsNode creates a yaml.Node representing the connections array.
func buildConnectionsNode(conns []ConnectionConfig) *yaml.Node {
	node := &yaml.Node{
		Kind:    yaml.SequenceNode,
		Content: make([]*yaml.Node, 0, len(conns)),
	}

	for _, conn := range conns {
		connNode := &yaml.Node{
			Kind:    yaml.MappingNode,
			Content: make([]*yaml.Node, 0),
		}

		connNode.Content = append(connNode.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "name"},
			&yaml.Node{Kind: yaml.ScalarNode, Value: conn.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: "path"},
			&yaml.Node{Kind: yaml.ScalarNode, Value: conn.Path},
		)
		if conn.ReadOnly {
			connNode.Content = append(connNode.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: "read_only"},
				&yaml.Node{Kind: yaml.ScalarNode, Value: "true"},
			)
		}

		node.Content = append(node.Content, connNode)
	}

	return node
}

// AddConnection appends a new saved connection and saves the config.
// Returns an error when the name is already taken.
func AddConnection(configPath string, newConn ConnectionConfig, existing []ConnectionConfig) error {
	for _, conn := range existing {
		if conn.Name == newConn.Name {
			return fmt.Errorf("connection %q already exists", newConn.Name)
		}
	}
	return SaveConnections(configPath, append(existing, newConn))
}

// DeleteConnection removes a saved connection by name and saves.
func DeleteConnection(configPath string, name string, existing []ConnectionConfig) error {
	updated := make([]ConnectionConfig, 0, len(existing))
	for _, conn := range existing {
		if conn.Name != name {
			updated = append(updated, conn)
		}
	}
	if len(updated) == len(existing) {
		return fmt.Errorf("connection %q not found", name)
	}
	return SaveConnections(configPath, updated)
}

// RenameConnection renames a saved connection and saves.
func RenameConnection(configPath string, oldName, newName string, existing []ConnectionConfig) error {
	updated := make([]ConnectionConfig, len(existing))
	copy(updated, existing)

	found := false
	for i := range updated {
		if updated[i].Name == oldName {
			updated[i].Name = newName
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("connection %q not found", oldName)
	}
	return SaveConnections(configPath, updated)
}
