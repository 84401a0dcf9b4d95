package workload

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Kind identifies the kind of simulated work.
type Kind int

const (
	// KindDownload simulates fetching a remote document.
	KindDownload Kind = iota
	// KindWrite simulates writing a file to disk.
	KindWrite
)

const (
	DownloadDuration = 2000 * time.Millisecond
	WriteDuration    = 1500 * time.Millisecond
)

func (k Kind) String() string {
	switch k {
	case KindDownload:
		return "download"
	case KindWrite:
		return "write"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) labelPrefix() string {
	if k == KindWrite {
		return "File_"
	}
	return "Doc_"
}

// Unit is one immutable piece of simulated blocking work.
type Unit struct {
	Kind     Kind
	Duration time.Duration
	Label    string // e.g. "Doc_417"; narration only
}

// NewUnit builds a unit of the given kind with an explicit duration.
func NewUnit(kind Kind, d time.Duration) Unit {
	return Unit{
		Kind:     kind,
		Duration: d,
		Label:    fmt.Sprintf("%s%d", kind.labelPrefix(), rand.IntN(999)+1), // #nosec G404 -- label only
	}
}

// Download returns a unit with the standard download duration.
func Download() Unit {
	return NewUnit(KindDownload, DownloadDuration)
}

// Write returns a unit with the standard write duration.
func Write() Unit {
	return NewUnit(KindWrite, WriteDuration)
}

// Scaled returns a copy of u with its duration multiplied by factor.
// Non-positive factors leave the duration unchanged.
func (u Unit) Scaled(factor float64) Unit {
	if factor <= 0 {
		return u
	}
	u.Duration = time.Duration(float64(u.Duration) * factor)
	return u
}

// Repeat returns n independent units built by fn.
func Repeat(n int, fn func() Unit) []Unit {
	units := make([]Unit, n)
	for i := range units {
		units[i] = fn()
	}
	return units
}

// TotalDuration is the sum of the unit durations, the sequential bound.
func TotalDuration(units []Unit) time.Duration {
	var total time.Duration
	for _, u := range units {
		total += u.Duration
	}
	return total
}

// MaxDuration is the longest unit duration, the fully-overlapped bound.
func MaxDuration(units []Unit) time.Duration {
	var longest time.Duration
	for _, u := range units {
		longest = max(longest, u.Duration)
	}
	return longest
}
