/*
Copyright 2024 Simon Murray

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package portfolio

import (
	"sync"

	"github.com/JulianKnodt/small-sat/pkg/cdcl"
)

// ResultCell is a single-writer-wins slot: the first worker to decide the
// formula claims it, every later attempt is silently dropped.
type ResultCell struct {
	mu       sync.Mutex
	set      bool
	result   cdcl.Result
	workerID int
}

// TrySet claims the cell for workerID's result. It reports whether this
// call was the one that claimed it.
func (c *ResultCell) TrySet(workerID int, res cdcl.Result) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set {
		return false
	}
	c.set = true
	c.result = res
	c.workerID = workerID
	return true
}

// Get reads the current contents, reporting whether the cell has been set.
func (c *ResultCell) Get() (cdcl.Result, int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result, c.workerID, c.set
}
