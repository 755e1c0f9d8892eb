// Package arglimit resolves the effective per-invocation byte budget.
package arglimit

import (
	"os"
	"strconv"

	"github.com/tklauser/go-sysconf"
)

const (
	// headroom is reserved out of ARG_MAX for the invoked utility to modify
	// its own environment and argument list. POSIX asks for 2048; we round
	// up for mutation headroom, as the classic implementations do.
	headroom = 4096

	// fallbackArgMax is used when sysconf(_SC_ARG_MAX) cannot be queried.
	// It matches the kernel's historical ARG_MAX define.
	fallbackArgMax = 128 * 1024

	slotBytes = strconv.IntSize / 8
)

// Budget returns the effective byte budget per invocation. An override > 0 is
// taken unchanged; otherwise the budget is the system argument-size ceiling
// minus the footprint of the inherited environment minus the headroom.
func Budget(override int) int {
	if override > 0 {
		return override
	}
	argMax, err := sysconf.Sysconf(sysconf.SC_ARG_MAX)
	if err != nil || argMax <= 0 {
		argMax = fallbackArgMax
	}
	return int(argMax) - environBytes(os.Environ()) - headroom
}

// environBytes measures the inherited environment the way the kernel charges
// it against ARG_MAX: one pointer slot plus the string and its terminator per
// variable, plus the trailing NULL slot.
func environBytes(environ []string) int {
	n := slotBytes
	for _, kv := range environ {
		n += slotBytes + len(kv) + 1
	}
	return n
}
