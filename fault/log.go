// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel for the last message before a panic
var (
	logLock sync.Mutex
	log     *logger.L
)

// Initialise - open the PANIC channel
//
// must be called after logger.Initialise
func Initialise() error {
	logLock.Lock()
	defer logLock.Unlock()

	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	logLock.Lock()
	defer logLock.Unlock()

	if nil != log {
		log.Flush()
		log = nil
	}
}

// Panicf - log the caller and a formatted message then panic
//
// only for programming errors detected at startup, e.g. a type id
// registered twice
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(1); ok {
		internalCriticalf("(%q:%d) %s", file, line, message)
	} else {
		internalCriticalf("%s", message)
	}
	panic(message)
}

// route to stdout if the logger channel was never opened
func internalCriticalf(format string, arguments ...interface{}) {
	logLock.Lock()
	defer logLock.Unlock()

	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush()
	}
}
