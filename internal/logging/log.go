//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package logging is a helper for the "github.com/op/go-logging" package
// to reduce the lines of code within each go file to one line. The
// functions return Logger instances which are configured with the
// necessary backends and formatters. Log levels are taken from
// internal/config.
package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	golog "github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mjansen/corvid/internal/config"
)

// Out is a locale aware number formatter used for human readable
// log lines (NPS, node counts) - UCI stdout itself stays plain ASCII.
var Out = message.NewPrinter(language.English)

var (
	standardLog *golog.Logger
	searchLog   *golog.Logger
	testLog     *golog.Logger
	uciLog      *golog.Logger
	uciLogFile  *os.File

	standardFormat = golog.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)

	uciLogFilePath string
)

func init() {
	programName, _ := os.Executable()
	exePath := filepath.Dir(programName)
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")
	uciLogFilePath = exePath + "/../logs/" + exeName + "_ucilog.log"

	standardLog = golog.MustGetLogger("standard")
	searchLog = golog.MustGetLogger("search")
	testLog = golog.MustGetLogger("test")
	uciLog = golog.MustGetLogger("UCI ")
}

// GetLog returns an instance of a standard Logger preconfigured with a
// os.Stdout backend and a "normal" logging format (time - file - level).
func GetLog() *golog.Logger {
	backend1 := golog.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := golog.NewBackendFormatter(backend1, standardFormat)
	standardBackEnd := golog.AddModuleLevel(backend1Formatter)
	standardBackEnd.SetLevel(golog.Level(config.LogLevel), "")
	standardLog.SetBackend(standardBackEnd)
	return standardLog
}

// GetSearchLog returns an instance of a standard Logger preconfigured
// for use inside the search package.
func GetSearchLog() *golog.Logger {
	backend1 := golog.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := golog.NewBackendFormatter(backend1, standardFormat)
	searchBackEnd := golog.AddModuleLevel(backend1Formatter)
	searchBackEnd.SetLevel(golog.Level(config.SearchLogLevel), "")
	searchLog.SetBackend(searchBackEnd)
	return searchLog
}

// GetTestLog returns an instance of a standard Logger preconfigured for
// use in _test.go files.
func GetTestLog() *golog.Logger {
	backend1 := golog.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := golog.NewBackendFormatter(backend1, standardFormat)
	standardBackEnd := golog.AddModuleLevel(backend1Formatter)
	standardBackEnd.SetLevel(golog.Level(config.TestLogLevel), "")
	testLog.SetBackend(standardBackEnd)
	return testLog
}

// GetUciLog returns an instance of a special Logger preconfigured for
// logging all UCI protocol traffic to os.Stdout and to a log file.
// Format is deliberately simple: "time UCI <uci command>".
func GetUciLog() *golog.Logger {
	uciFormat := golog.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
	backend1 := golog.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := golog.NewBackendFormatter(backend1, uciFormat)
	uciBackEnd1 := golog.AddModuleLevel(backend1Formatter)
	uciBackEnd1.SetLevel(golog.DEBUG, "")

	var err error
	uciLogFile, err = os.OpenFile(uciLogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println("uci log file could not be created", err)
		uciLog.SetBackend(uciBackEnd1)
	} else {
		backend2 := golog.NewLogBackend(uciLogFile, "", log.Lmsgprefix)
		backend2Formatter := golog.NewBackendFormatter(backend2, uciFormat)
		uciBackEnd2 := golog.AddModuleLevel(backend2Formatter)
		uciBackEnd2.SetLevel(golog.DEBUG, "")
		multi := golog.SetBackend(uciBackEnd1, uciBackEnd2)
		uciLog.SetBackend(multi)
	}

	return uciLog
}
