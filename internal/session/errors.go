package session

import "errors"

var (
	ErrAuthentication = errors.New("authentication failed")
	ErrDiscovery      = errors.New("conversation discovery failed")
	ErrSync           = errors.New("message sync failed")

	ErrNoSigner    = errors.New("no wallet signer")
	ErrNoClient    = errors.New("no messaging client")
	ErrStoreClosed = errors.New("session store closed")
)
