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

// Package satlog is a thin logrus wrapper used by the CLI for the
// non-contractual diagnostic side channel: nothing it
// prints is part of the SAT/UNSAT stdout contract.
package satlog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logger writing to stderr, at Info level when stats is true
// and Warn otherwise (so a plain run stays silent barring real problems).
func New(stats bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if stats {
		l.SetLevel(logrus.InfoLevel)
	} else {
		l.SetLevel(logrus.WarnLevel)
	}
	return l
}

// Worker returns an entry tagged with a worker id, for distinguishing
// portfolio replicas in the log stream.
func Worker(l *logrus.Logger, id int) *logrus.Entry {
	return l.WithField("worker", id)
}
