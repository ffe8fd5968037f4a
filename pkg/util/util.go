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

package util

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	yaml2 "gopkg.in/yaml.v2"
)

// BytesMarshaller --.
type BytesMarshaller interface {
	MarshalBytes() ([]byte, error)
}

// StringSliceExists --.
func StringSliceExists(slice []string, item string) bool {
	for i := 0; i < len(slice); i++ {
		if slice[i] == item {
			return true
		}
	}

	return false
}

// StringSliceUniqueAdd appends the given item if not already present in the slice.
func StringSliceUniqueAdd(slice *[]string, item string) bool {
	for _, i := range *slice {
		if i == item {
			return false
		}
	}

	*slice = append(*slice, item)

	return true
}

// StringSliceUniqueConcat appends all the items of the "items" slice if they are not already present in the slice.
func StringSliceUniqueConcat(slice *[]string, items []string) bool {
	changed := false
	for _, item := range items {
		if StringSliceUniqueAdd(slice, item) {
			changed = true
		}
	}

	return changed
}

// SplitAndTrim splits s on sep, dropping blank entries.
func SplitAndTrim(s string, sep string) []string {
	parts := strings.Split(s, sep)
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}

// EncodeXML --.
func EncodeXML(content interface{}) ([]byte, error) {
	w := &bytes.Buffer{}
	w.WriteString(xml.Header)

	e := xml.NewEncoder(w)
	e.Indent("", "  ")

	if err := e.Encode(content); err != nil {
		return []byte{}, err
	}

	return w.Bytes(), nil
}

// FileExists --.
func FileExists(name string) (bool, error) {
	info, err := os.Stat(name)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return !info.IsDir(), nil
}

// PathExists reports whether anything (file or directory) exists at the given path.
func PathExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// DirectoryExists --.
func DirectoryExists(directory string) (bool, error) {
	info, err := os.Stat(directory)
	if os.IsNotExist(err) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return info.IsDir(), nil
}

// ResolvePath joins name to base unless name is already absolute.
func ResolvePath(base string, name string) string {
	if filepath.IsAbs(name) || base == "" {
		return name
	}
	return filepath.Join(base, name)
}

// SortedMapKeys --.
func SortedMapKeys(m map[string]interface{}) []string {
	res := make([]string, len(m))
	i := 0
	for k := range m {
		res[i] = k
		i++
	}
	sort.Strings(res)
	return res
}

// SortedStringMapKeys --.
func SortedStringMapKeys(m map[string]string) []string {
	res := make([]string, len(m))
	i := 0
	for k := range m {
		res[i] = k
		i++
	}
	sort.Strings(res)
	return res
}

// CopyMap clones a map of strings.
func CopyMap(source map[string]string) map[string]string {
	if source == nil {
		return nil
	}
	dest := make(map[string]string, len(source))
	for k, v := range source {
		dest[k] = v
	}
	return dest
}

// ToJSON --.
func ToJSON(content interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "error marshalling to json")
	}
	return data, nil
}

// ToYAML goes through JSON first so that json tags drive the field names.
func ToYAML(content interface{}) ([]byte, error) {
	data, err := json.Marshal(content)
	if err != nil {
		return nil, errors.Wrap(err, "error marshalling to json")
	}
	return JSONToYAML(data)
}

// JSONToYAML --.
func JSONToYAML(src []byte) ([]byte, error) {
	mapdata := yaml2.MapSlice{}
	if err := yaml2.Unmarshal(src, &mapdata); err != nil {
		return nil, errors.Wrap(err, "error unmarshalling json")
	}

	yamldata, err := yaml2.Marshal(mapdata)
	if err != nil {
		return nil, errors.Wrap(err, "error marshalling to yaml")
	}

	return yamldata, nil
}
