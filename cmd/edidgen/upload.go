/*
NAME
  upload.go -

DESCRIPTION
  Uploads a built EDID image to a NetSender-compatible configuration
  endpoint, carrying the binary image as a pin value the way
  revid/senders.go's httpSend carries an MTS stream chunk.

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
	"github.com/pkg/errors"

	"github.com/ausocean/client/pi/netsender"
	"github.com/ausocean/utils/logging"
)

// uploadImage sends data, a complete EDID/CTA-861 byte image, to a
// NetSender-compatible configuration endpoint at addr, carried on the
// X0 software-defined pin.
func uploadImage(data []byte, addr string, log logging.Logger) error {
	ns, err := netsender.New(log, nil, nil, nil)
	if err != nil {
		return errors.Wrap(err, "could not initialise netsender client")
	}

	ip := ns.Param("ip")
	pins := netsender.MakePins(ip, "X")
	for i, pin := range pins {
		if pin.Name != "X0" {
			continue
		}
		pins[i].MimeType = "application/octet-stream"
		pins[i].Value = len(data)
		pins[i].Data = data
	}

	reply, _, err := ns.Send(netsender.RequestMts, pins, netsender.WithMtsAddress(addr))
	if err != nil {
		return errors.Wrap(err, "could not send EDID image")
	}
	log.Debug(pkg+"upload accepted", "reply", reply)
	return nil
}
