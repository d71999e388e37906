/*
Copyright 2023 Alexander Bartolomey (github@alexanderbartolomey.de)

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

package ipfix

import (
	"sync"

	"github.com/go-logr/logr"
)

// log is the package-level logger returned by Log. It defaults to a no-op
// sink so importing this package never requires a logging backend; call
// SetLogger once, early in program startup, to install a real one. No
// function in this package (Parse, BindInformationElements or the Options
// classifiers) writes to it.
var (
	logMu sync.RWMutex
	log   = logr.Discard()
)

// SetLogger installs l as the package-level logger. It is safe to call
// concurrently with logging calls, but is meant to be called once, before
// the engine is used in earnest — swapping loggers mid-flight will not
// retroactively relabel messages already emitted.
func SetLogger(l logr.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	log = l
}

// Log returns the currently installed logger.
func Log() logr.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return log
}
