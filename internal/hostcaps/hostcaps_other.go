//go:build !amd64 && !arm64

package hostcaps

const archFamily = "generic"

func init() {
	initCapabilities(TierTable)
}
