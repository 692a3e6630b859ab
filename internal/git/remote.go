// Package git reads repository metadata from the local git CLI and
// normalizes hosted remote URLs into the account/repository pair used
// to build registry paths.
package git

import (
	"fmt"
	"regexp"
	"strings"
)

// RemoteScheme identifies which URL shape a remote was parsed from.
type RemoteScheme string

const (
	SchemeSSH   RemoteScheme = "ssh"
	SchemeHTTPS RemoteScheme = "https"
)

// RemoteDescriptor is the normalized form of a hosted remote URL.
// Account is always lowercase. Repository never contains a path
// separator or a trailing .git suffix.
type RemoteDescriptor struct {
	Scheme     RemoteScheme
	Account    string
	Repository string
}

// The two recognized remote shapes. Matchers run in declaration order,
// SSH before HTTPS, so a URL that could satisfy both resolves
// deterministically.
var remoteMatchers = []struct {
	scheme RemoteScheme
	re     *regexp.Regexp
}{
	{SchemeSSH, regexp.MustCompile(`^git@[^:/]+:([^/]+)/([^/]+?)(?:\.git)?$`)},
	{SchemeHTTPS, regexp.MustCompile(`^https://[^/]+/([^/]+)/([^/]+?)(?:\.git)?$`)},
}

// ParseRemote normalizes a hosted remote URL into a RemoteDescriptor.
// Only the SSH form git@<host>:<account>/<repo>(.git) and the HTTPS
// form https://<host>/<account>/<repo>(.git) are recognized; anything
// else returns ErrInvalidRemoteURL wrapped with the offending URL.
// The input is not trimmed, and no descriptor is ever fabricated for
// unparseable input.
func ParseRemote(url string) (RemoteDescriptor, error) {
	for _, m := range remoteMatchers {
		groups := m.re.FindStringSubmatch(url)
		if groups == nil {
			continue
		}

		return RemoteDescriptor{
			Scheme:     m.scheme,
			Account:    strings.ToLower(groups[1]),
			Repository: groups[2],
		}, nil
	}

	return RemoteDescriptor{}, fmt.Errorf("%w: %s", ErrInvalidRemoteURL, url)
}
