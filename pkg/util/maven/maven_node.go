/*
Licensed to the Apache Software Foundation (ASF) under one or more
contributor license agreements.  See the NOTICE file distributed with
this work for additional information regarding copyright ownership.
The ASF licenses this file to You under the Apache License, Version 2.0
(the "License"); you may not use this file except in compliance with
the License.  You may obtain a copy of the License at

   http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package maven

import (
	"encoding/json"
	"encoding/xml"
	"sort"
	"strings"
)

// Node is a verbatim XML element, used for free-form blocks such as a server configuration.
type Node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Content string     `xml:",chardata"`
	Nodes   []Node     `xml:",any"`
}

// Name --.
func (n Node) Name() string {
	return n.XMLName.Local
}

// Child returns the first direct child with the given name.
func (n Node) Child(name string) *Node {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == name {
			return &n.Nodes[i]
		}
	}
	return nil
}

// DeepCopy --.
func (n *Node) DeepCopy() *Node {
	if n == nil {
		return nil
	}
	c := Node{
		XMLName: n.XMLName,
		Content: n.Content,
	}
	if n.Attrs != nil {
		c.Attrs = append([]xml.Attr(nil), n.Attrs...)
	}
	for i := range n.Nodes {
		c.Nodes = append(c.Nodes, *n.Nodes[i].DeepCopy())
	}
	return &c
}

// Without returns a copy of the node without the direct children named as given.
func (n *Node) Without(name string) *Node {
	if n == nil {
		return nil
	}
	c := n.DeepCopy()
	nodes := c.Nodes[:0]
	for _, child := range c.Nodes {
		if child.XMLName.Local != name {
			nodes = append(nodes, child)
		}
	}
	c.Nodes = nodes
	return c
}

// normalize drops the inherited namespace and the indentation captured as character data.
func (n *Node) normalize() {
	n.XMLName.Space = ""
	if len(n.Nodes) > 0 {
		if strings.TrimSpace(n.Content) == "" {
			n.Content = ""
		}
		for i := range n.Nodes {
			n.Nodes[i].normalize()
		}
	} else {
		n.Content = strings.TrimSpace(n.Content)
	}
}

// MarshalJSON renders leaves as strings and elements as objects keyed by child name.
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.value())
}

func (n Node) value() interface{} {
	if len(n.Nodes) == 0 {
		return n.Content
	}
	m := make(map[string]interface{}, len(n.Nodes))
	for _, c := range n.Nodes {
		m[c.XMLName.Local] = c.value()
	}
	return m
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
