// pkg/greedy/duration.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package greedy

import "time"

func minutesDuration(m int) time.Duration {
	return time.Duration(m) * time.Minute
}
