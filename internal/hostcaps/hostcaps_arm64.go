//go:build arm64

package hostcaps

import "golang.org/x/sys/cpu"

const archFamily = "aarch64"

func init() {
	hasASIMD = cpu.ARM64.HasASIMD
	def := TierFold4
	if hasASIMD {
		def = TierFold8
	}
	initCapabilities(def)
}
