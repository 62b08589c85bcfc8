package sync

import (
	"crypto/sha256"
	"encoding/base64"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// GenerateUserID derives a pseudo-stable user identifier from device
// characteristics. It is deterministic for a given machine and timezone;
// callers cache it in storage so it is only computed once.
func GenerateUserID() string {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	_, offset := time.Now().Zone()

	fingerprint := strings.Join([]string{
		host,
		runtime.GOOS,
		runtime.GOARCH,
		strconv.Itoa(offset),
	}, "|")

	sum := sha256.Sum256([]byte(fingerprint))
	id := base64.RawURLEncoding.EncodeToString(sum[:])
	id = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, id)

	if len(id) > 12 {
		id = id[:12]
	}
	return id
}
