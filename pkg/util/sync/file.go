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

// Package sync provides useful tools to get notified when a file system resource changes
package sync

import (
	"context"
	"time"

	"github.com/radovskyb/watcher"

	"github.com/apache/camel-k-resolver/pkg/util/log"
)

// Files returns a channel that receives the path of a file each time its content changes.
// Files are polled at the given interval until the context is done.
func Files(ctx context.Context, interval time.Duration, paths ...string) (<-chan string, error) {
	w := watcher.New()
	for _, path := range paths {
		if err := w.Add(path); err != nil {
			return nil, err
		}
	}
	w.FilterOps(watcher.Write, watcher.Create)

	out := make(chan string)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.Closed:
				return
			case err := <-w.Error:
				log.Error(err, "Error while watching files")
			case e := <-w.Event:
				select {
				case out <- e.Path:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	go func() {
		if err := w.Start(interval); err != nil {
			log.Error(err, "Error while starting watcher")
		}
	}()

	return out, nil
}
