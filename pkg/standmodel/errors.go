// pkg/standmodel/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package standmodel

import "errors"

// Fatal (kind-4) errors: invariant violations the engine refuses to run
// with, distinct from the per-flight allocation failures and solver
// fallbacks that are reported as data rather than raised. Validate and
// ParseTime wrap these so a caller can test for a specific failure with
// errors.Is instead of matching message text.
var (
	ErrDuplicateFlightID         = errors.New("duplicate flight_id")
	ErrUnparseableTime           = errors.New("unparseable time value")
	ErrInconsistentLinkGroup     = errors.New("link_id group has more than one arrival or departure")
	ErrUnknownStandReference     = errors.New("maintenance entry references unknown stand")
	ErrMaintenanceWindowInverted = errors.New("maintenance entry has non-positive duration")
)
