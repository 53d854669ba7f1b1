/*
NAME
  watch.go -

DESCRIPTION
  Watch mode: re-encode each YAML display description in a directory
  when it is written or created, without restarting the process. Mirrors the
  config-reload pattern the teacher's device packages use fsnotify for,
  applied here to a directory of descriptions instead of a single
  running pipeline's configuration.

AUTHOR
  Saxon A. Nelson-Milton <saxon.milton@gmail.com>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package main

import (
	"path/filepath"
	"strings"

	"github.com/coreos/go-systemd/daemon"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/ausocean/utils/logging"
)

// runWatch watches dir for YAML description changes, encoding each
// changed file to a sibling .edid file on write or create. If upload is non-empty, each
// successfully encoded image is also uploaded. Pings systemd readiness
// and watchdog notifications if run under a unit with those checks
// enabled; both calls are no-ops outside systemd.
func runWatch(dir, upload string, log logging.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "could not create watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return errors.Wrapf(err, "could not watch %s", dir)
	}

	if ok, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		log.Warning(pkg+"sd_notify ready failed", "error", err.Error())
	} else if ok {
		log.Debug("sent sd_notify ready")
	}

	log.Info("watching for display description changes", "dir", dir)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isYAML(event.Name) || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := encodeOne(event.Name, upload, log); err != nil {
				log.Error(pkg+"could not encode changed description", "path", event.Name, "error", err.Error())
			}
			if ok, err := daemon.SdNotify(false, daemon.SdNotifyWatchdog); err == nil && ok {
				log.Debug("sent sd_notify watchdog")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error(pkg+"watcher error", "error", err.Error())
		}
	}
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func encodeOne(path, upload string, log logging.Logger) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	enc, err := doc.EDID.Build()
	if err != nil {
		return err
	}
	data, err := enc.Encode()
	if err != nil {
		return err
	}
	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".edid"
	if err := writeOutput(data, out); err != nil {
		return err
	}
	log.Info("re-encoded display description", "path", path, "out", out, "bytes", len(data))
	if upload != "" {
		if err := uploadImage(data, upload, log); err != nil {
			return errors.Wrap(err, "upload failed")
		}
	}
	return nil
}
