package caps

// acscTable is the standard vt100/xterm acs_chars mapping (terminfo's
// acsc): pairs of ordinary-character/line-drawing-character codes sent
// after SMACS puts the terminal into alternate charset mode.
const acscTable = "``aaffggiijjkkllmmnnooppqqrrssttuuvvwwxxyyzz{{||}}~~"

// entry is one terminal type's static description: a set of boolean
// flags, numeric values, and string-capability templates.
type entry struct {
	name    string
	flags   map[Cap]bool
	numbers map[Cap]int
	strings map[Cap]string
}

// table implements Capabilities against a fixed entry.
type table struct {
	e *entry
}

// Lookup returns the built-in Capabilities for termType, falling back to
// the vt100 entry (the terminfo-safe minimum every terminal emulator
// understands) when termType is unrecognized. The bool result reports
// whether termType was found verbatim.
func Lookup(termType string) (Capabilities, bool) {
	if e, ok := builtins[termType]; ok {
		return &table{e: e}, true
	}
	return &table{e: builtins["vt100"]}, false
}

func (t *table) Name() string { return t.e.name }

func (t *table) Has(c Cap) bool { return t.e.flags[c] }

func (t *table) Number(c Cap) int { return t.e.numbers[c] }

func (t *table) String(c Cap) (string, bool) {
	s, ok := t.e.strings[c]
	return s, ok
}

func (t *table) Expand(c Cap, params ...int) (string, bool) {
	tmpl, ok := t.e.strings[c]
	if !ok {
		return "", false
	}
	p := append([]int(nil), params...)
	return expandParams(tmpl, p), true
}

// vt100 is the conservative baseline every other entry copies flags and
// strings from unless it needs to override them, mirroring how terminfo
// entries "use=" a parent description.
var vt100 = &entry{
	name: "vt100",
	flags: map[Cap]bool{
		CapAM: true,
	},
	numbers: map[Cap]int{
		CapColors: 8,
		CapCols:   80,
		CapLines:  24,
	},
	strings: map[Cap]string{
		CapClear: "\x1b[H\x1b[2J",
		CapSgr0:  "\x1b[m",
		CapRev:   "\x1b[7m",
		CapBold:  "\x1b[1m",
		CapDim:   "\x1b[2m",
		CapSmul:  "\x1b[4m",
		CapRmul:  "\x1b[24m",
		CapBlink: "\x1b[5m",
		CapInvis: "\x1b[8m",
		CapHome:  "\x1b[H",
		CapCup:   "\x1b[%i%p1%d;%p2%dH",
		CapCub1:  "\x08",
		CapCuf1:  "\x1b[C",
		CapCuu1:  "\x1b[A",
		CapCud1:  "\n",
		CapCub:   "\x1b[%p1%dD",
		CapCuf:   "\x1b[%p1%dC",
		CapCuu:   "\x1b[%p1%dA",
		CapCud:   "\x1b[%p1%dB",
		CapHpa:   "\x1b[%i%p1%dG",
		CapVpa:   "\x1b[%i%p1%dd",
		CapCsr:   "\x1b[%i%p1%d;%p2%dr",
		CapEl:    "\x1b[K",
		CapEl1:   "\x1b[1K",
		CapEd:    "\x1b[J",
		CapIch1:  "\x1b[@",
		CapDch1:  "\x1b[P",
		CapIl1:   "\x1b[L",
		CapDl1:   "\x1b[M",
		CapRi:    "\x1bM",
		CapInd:   "\n",
		CapCivis: "\x1b[?25l",
		CapCnorm: "\x1b[?25h",
		CapSmkx:  "\x1b[?1h\x1b=",
		CapRmkx:  "\x1b[?1l\x1b>",
		CapTsl:   "\x1b]2;",
		CapFsl:   "\x07",
	},
}

func clone(base *entry, name string) *entry {
	e := &entry{
		name:    name,
		flags:   map[Cap]bool{},
		numbers: map[Cap]int{},
		strings: map[Cap]string{},
	}
	for k, v := range base.flags {
		e.flags[k] = v
	}
	for k, v := range base.numbers {
		e.numbers[k] = v
	}
	for k, v := range base.strings {
		e.strings[k] = v
	}
	return e
}

var screenEntry = func() *entry {
	e := clone(vt100, "screen")
	e.flags[CapXENL] = true
	e.flags[CapBCE] = true
	e.flags[CapMIR] = true
	e.strings[CapSmcup] = "\x1b[?1049h"
	e.strings[CapRmcup] = "\x1b[?1049l"
	e.strings[CapEch] = "\x1b[%p1%dX"
	e.strings[CapIch] = "\x1b[%p1%d@"
	e.strings[CapDch] = "\x1b[%p1%dP"
	e.strings[CapIl] = "\x1b[%p1%dL"
	e.strings[CapDl] = "\x1b[%p1%dM"
	e.strings[CapEnacs] = "\x1b(B\x1b)0"
	e.strings[CapSmacs] = "\x0e"
	e.strings[CapRmacs] = "\x0f"
	e.strings[CapAcsc] = acscTable
	e.strings[CapRepeat] = "%p1%c\x1b[%p2%{1}%-%db"
	return e
}()

var screen256Entry = func() *entry {
	e := clone(screenEntry, "screen-256color")
	e.numbers[CapColors] = 256
	e.flags[CapAX] = true
	e.strings[CapSetaf] = "\x1b[%?%p1%{8}%<%t3%p1%d%e%p1%{16}%<%t9%p1%{8}%-%d%e38;5;%p1%d%;m"
	e.strings[CapSetab] = "\x1b[%?%p1%{8}%<%t4%p1%d%e%p1%{16}%<%t10%p1%{8}%-%d%e48;5;%p1%d%;m"
	e.strings[CapOp] = "\x1b[39;49m"
	return e
}()

var tmux256Entry = func() *entry {
	e := clone(screen256Entry, "tmux-256color")
	e.flags[CapCcc] = true
	e.flags[CapMS] = true
	e.flags[CapAX] = true
	e.strings[CapSitm] = "\x1b[3m"
	e.strings[CapRitm] = "\x1b[23m"
	e.strings[CapSs] = "\x1b[%p1%d q"
	e.strings[CapSe] = "\x1b[2 q"
	return e
}()

var xterm256Entry = func() *entry {
	e := clone(vt100, "xterm-256color")
	e.flags[CapXENL] = true
	e.flags[CapBCE] = true
	e.flags[CapMIR] = true
	e.numbers[CapColors] = 256
	e.flags[CapAX] = true
	e.strings[CapSmcup] = "\x1b[?1049h"
	e.strings[CapRmcup] = "\x1b[?1049l"
	e.strings[CapSetaf] = "\x1b[%?%p1%{8}%<%t3%p1%d%e%p1%{16}%<%t9%p1%{8}%-%d%e38;5;%p1%d%;m"
	e.strings[CapSetab] = "\x1b[%?%p1%{8}%<%t4%p1%d%e%p1%{16}%<%t10%p1%{8}%-%d%e48;5;%p1%d%;m"
	e.strings[CapOp] = "\x1b[39;49m"
	e.strings[CapEch] = "\x1b[%p1%dX"
	e.strings[CapIch] = "\x1b[%p1%d@"
	e.strings[CapDch] = "\x1b[%p1%dP"
	e.strings[CapIl] = "\x1b[%p1%dL"
	e.strings[CapDl] = "\x1b[%p1%dM"
	e.strings[CapEnacs] = "\x1b(B\x1b)0"
	e.strings[CapSmacs] = "\x0e"
	e.strings[CapRmacs] = "\x0f"
	e.strings[CapAcsc] = acscTable
	e.strings[CapSitm] = "\x1b[3m"
	e.strings[CapRitm] = "\x1b[23m"
	e.strings[CapSs] = "\x1b[%p1%d q"
	e.strings[CapSe] = "\x1b[2 q"
	e.strings[CapRepeat] = "%p1%c\x1b[%p2%{1}%-%db"
	e.flags[CapMS] = true
	return e
}()

var builtins = map[string]*entry{
	"vt100":            vt100,
	"screen":           screenEntry,
	"screen-256color":  screen256Entry,
	"tmux-256color":    tmux256Entry,
	"xterm-256color":   xterm256Entry,
}
