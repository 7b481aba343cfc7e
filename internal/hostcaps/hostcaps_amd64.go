//go:build amd64

package hostcaps

import "golang.org/x/sys/cpu"

const archFamily = "x86_64"

func init() {
	hasAVX2 = cpu.X86.HasAVX2
	def := TierFold4
	if hasAVX2 {
		def = TierFold8
	}
	initCapabilities(def)
}
