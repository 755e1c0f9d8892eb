package app

import "github.com/bft-labs/xargo/internal/ports"

// classifyExit folds one child status into the cumulative exit code and
// reports whether the run must stop.
//
// Exit values follow the POSIX xargs conventions: 126/127 (cannot invoke /
// not found) abort with that code, 255 aborts with 124, any other failure
// pins the aggregate at 123 but lets further batches run, and a clean exit
// leaves the aggregate untouched. Termination by signal sets 127 without
// aborting; that asymmetry with the normal-exit 127 case is long-standing
// observable behavior and is kept as-is.
func classifyExit(res ports.Result, current int) (next int, abort bool) {
	if !res.Exited {
		return 127, false
	}
	switch {
	case res.Code == 126 || res.Code == 127:
		return res.Code, true
	case res.Code == 255:
		return 124, true
	case res.Code >= 1 && res.Code <= 125:
		return 123, false
	default:
		return current, false
	}
}
