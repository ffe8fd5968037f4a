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

package property

import (
	"bytes"
	"strings"

	"github.com/magiconair/properties"
	"github.com/pkg/errors"
)

// EncodePropertyFile encodes a property map into a .properties file.
func EncodePropertyFile(sourceProperties map[string]string) (string, error) {
	props := properties.LoadMap(sourceProperties)
	props.DisableExpansion = true
	props.Sort()
	buf := new(bytes.Buffer)
	_, err := props.Write(buf, properties.UTF8)
	if err != nil {
		return "", errors.Wrapf(err, "could not encode properties")
	}
	return buf.String(), nil
}

// ReadPropertyFile loads the .properties file at the given location, values are not expanded.
func ReadPropertyFile(path string) (map[string]string, error) {
	l := properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}
	props, err := l.LoadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read properties from %s", path)
	}
	return props.Map(), nil
}

// ParsePropertyFile decodes the given .properties content, values are not expanded.
func ParsePropertyFile(content string) (map[string]string, error) {
	l := properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}
	props, err := l.LoadBytes([]byte(content))
	if err != nil {
		return nil, errors.Wrap(err, "could not parse properties")
	}
	return props.Map(), nil
}

// Unquote strips the double quotes surrounding shell style values such as
// the ones found in a JDK release file.
func Unquote(value string) string {
	value = strings.TrimSpace(value)
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	return value
}
