package sequencer

import (
	"errors"
	"fmt"
	"strings"
)

// Options selects editing features of the sequencer.
//
// The flags are accepted by Draw but none of them changes the layout yet:
// editing item bounds, changing the current frame, adding, deleting and
// copy/paste are not implemented and the flags pass through untouched.
type Options uint32

const (
	EditNone     Options = 1 << 0
	EditStartEnd Options = 1 << 1
	ChangeFrame  Options = 1 << 3
	Add          Options = 1 << 4
	Delete       Options = 1 << 5
	CopyPaste    Options = 1 << 6
)

// ErrUnknownOption is returned by ParseOptions for a name it does not know.
var ErrUnknownOption = errors.New("unknown sequencer option")

var optionNames = []struct {
	flag Options
	name string
}{
	{EditNone, "edit-none"},
	{EditStartEnd, "edit-start-end"},
	{ChangeFrame, "change-frame"},
	{Add, "add"},
	{Delete, "delete"},
	{CopyPaste, "copy-paste"},
}

// Has reports whether every bit of flag is set in o.
func (o Options) Has(flag Options) bool {
	return o&flag == flag
}

// String lists the set flags separated by commas.
func (o Options) String() string {
	var names []string
	for _, n := range optionNames {
		if o.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// ParseOptions parses a comma separated list such as "add,copy-paste".
// An empty string yields no flags.
func ParseOptions(s string) (Options, error) {
	var o Options
	for _, field := range strings.Split(s, ",") {
		field = strings.ToLower(strings.TrimSpace(field))
		if field == "" {
			continue
		}
		found := false
		for _, n := range optionNames {
			if n.name == field {
				o |= n.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %q", ErrUnknownOption, field)
		}
	}
	return o, nil
}
