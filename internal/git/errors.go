package git

import "errors"

var ErrInvalidRemoteURL = errors.New("remote URL matches neither the SSH nor the HTTPS form")
