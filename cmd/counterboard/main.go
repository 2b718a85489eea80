package main

import (
	"context"
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/pkg/profile"

	"github.com/ChizhovVadim/CounterBoard/pkg/engine"
	"github.com/ChizhovVadim/CounterBoard/pkg/uci"
)

/*
Counter Copyright (C) 2017-2023 Vadim Chizhov
This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

const (
	name   = "CounterBoard"
	author = "Vadim Chizhov"
)

var (
	versionName  = "dev"
	buildDate    = "(null)"
	gitRevision  = "(null)"
	flgShowBoard bool
	flgProfile   string
)

func main() {
	flag.BoolVar(&flgShowBoard, "showboard", true, "print the board after each position command")
	flag.StringVar(&flgProfile, "profile", "", "write a cpu or mem profile to the working directory")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	logger.Println(name,
		"VersionName", versionName,
		"BuildDate", buildDate,
		"GitRevision", gitRevision,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
	)

	switch flgProfile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		logger.Fatalf("unknown profile mode %q", flgProfile)
	}

	var eng = engine.NewEngine()
	var protocol = uci.New(name, author, versionName, eng, os.Stdout, flgShowBoard)
	var err = uci.RunCli(context.Background(), logger, os.Stdin, protocol)
	if err != nil {
		logger.Println(err)
	}
}
