// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package bench

import "github.com/klauspost/cpuid/v2"

// HostInfo identifies the CPU a report was produced on, since the relative
// timings of the strategies are meaningless without it.
type HostInfo struct {
	CPU           string
	PhysicalCores int
	LogicalCores  int
}

func hostInfo() HostInfo {
	return HostInfo{
		CPU:           cpuid.CPU.BrandName,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
	}
}
