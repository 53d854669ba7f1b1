/*
NAME
  main.go -

DESCRIPTION
  edidgen builds a binary EDID/CTA-861 image from a YAML display
  description and writes it to a file or stdout. It can also watch a
  directory of descriptions and re-encode on change, upload a built
  image to a NetSender-compatible endpoint, or render a timing-plot PNG
  for debugging a detailed timing's blanking intervals.

AUTHOR
  Saxon A. Nelson-Milton <saxon.milton@gmail.com>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package edidgen is a command-line tool that builds binary EDID images
// from YAML display descriptions.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/utils/logging"
)

// Current software version.
const version = "v0.1.0"

// Logging configuration.
const (
	logPath      = "/var/log/edidgen/edidgen.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

const pkg = "edidgen: "

func main() {
	var (
		file      = flag.String("file", "", "path to a YAML display description")
		out       = flag.String("out", "", "output path for the binary EDID image (default: stdout)")
		example   = flag.Bool("example", false, "ignore -file and build a built-in example EDID instead")
		watch     = flag.String("watch", "", "watch this directory for YAML description changes and re-encode on each one")
		upload    = flag.String("upload", "", "NetSender configuration endpoint address to upload the built image to")
		plotPath  = flag.String("timing-plot", "", "render the preferred timing's blanking-interval layout to this PNG path instead of encoding")
		showVer   = flag.Bool("version", false, "show version")
		logToFile = flag.Bool("log-file", false, "also log to "+logPath)
	)
	flag.Parse()

	if *showVer {
		fmt.Println(version)
		os.Exit(0)
	}

	log := newLogger(*logToFile)

	if *watch != "" {
		if err := runWatch(*watch, *upload, log); err != nil {
			log.Fatal(pkg+"watch failed", "error", err.Error())
		}
		return
	}

	var doc Document
	var err error
	switch {
	case *example:
		doc = exampleDocument()
	case *file != "":
		doc, err = loadDocument(*file)
	default:
		err = errors.New("one of -file, -example or -watch is required")
	}
	if err != nil {
		log.Fatal(pkg+"could not load display description", "error", err.Error())
	}

	enc, err := doc.EDID.Build()
	if err != nil {
		log.Fatal(pkg+"could not build EDID model", "error", err.Error())
	}

	if *plotPath != "" {
		if err := plotTiming(doc.EDID.PreferredTiming, *plotPath); err != nil {
			log.Fatal(pkg+"could not render timing plot", "error", err.Error())
		}
		log.Info("wrote timing plot", "path", *plotPath)
		return
	}

	bytes, err := enc.Encode()
	if err != nil {
		log.Fatal(pkg+"could not encode EDID", "error", err.Error())
	}
	log.Info("encoded EDID", "bytes", len(bytes))

	if err := writeOutput(bytes, *out); err != nil {
		log.Fatal(pkg+"could not write output", "error", err.Error())
	}

	if *upload != "" {
		if err := uploadImage(bytes, *upload, log); err != nil {
			log.Fatal(pkg+"could not upload EDID image", "error", err.Error())
		}
		log.Info("uploaded EDID image", "address", *upload)
	}
}

func newLogger(toFile bool) logging.Logger {
	if !toFile {
		return logging.New(logVerbosity, os.Stderr, logSuppress)
	}
	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	return logging.New(logVerbosity, io.MultiWriter(os.Stderr, fileLog), logSuppress)
}

func writeOutput(data []byte, out string) error {
	if out == "" {
		_, err := os.Stdout.Write(data)
		return errors.Wrap(err, "could not write to stdout")
	}
	return errors.Wrap(os.WriteFile(out, data, 0o644), "could not write output file")
}
