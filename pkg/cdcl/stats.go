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

package cdcl

// Stats counts the events of one worker's run, for the CLI's optional
// diagnostic side channel. Plain counters bumped inline, rather than the
// reference solver's Stats/Record enum dispatch, since Go has no cheap
// equivalent to a match-dispatched event log.
type Stats struct {
	Decisions    uint64
	Propagations uint64
	Conflicts    uint64
	Restarts     uint64
	Reductions   uint64
	Imported     uint64
	Exported     uint64
}
