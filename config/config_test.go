package config

import "testing"

func resetQuirks() {
	quirks = map[string]quirkFunc{}
}

func TestParseLineLogfile(t *testing.T) {
	resetQuirks()
	opts := &Options{Quirks: map[string][]string{}}
	if err := parseLine("logfile run.log\n", opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.LogFile != "run.log" {
		t.Errorf("LogFile = %q, want run.log", opts.LogFile)
	}
}

func TestParseLineLogfileWrongArity(t *testing.T) {
	resetQuirks()
	opts := &Options{Quirks: map[string][]string{}}
	if err := parseLine("logfile a b\n", opts); err == nil {
		t.Error("expected error for LOGFILE with more than one value")
	}
}

func TestParseLineWarnRouteThruSwitch(t *testing.T) {
	resetQuirks()
	opts := &Options{Quirks: map[string][]string{}}
	if err := parseLine("WarnRouteThru\n", opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !opts.WarnRouteThru {
		t.Error("WarnRouteThru should be true")
	}
}

func TestParseLineComment(t *testing.T) {
	resetQuirks()
	opts := &Options{Quirks: map[string][]string{}}
	if err := parseLine("# nothing here\n", opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.LogFile != "" {
		t.Errorf("comment line should not set anything, got LogFile=%q", opts.LogFile)
	}
}

func TestParseLineUnknownDirective(t *testing.T) {
	resetQuirks()
	opts := &Options{Quirks: map[string][]string{}}
	if err := parseLine("BOGUS foo\n", opts); err == nil {
		t.Error("expected error for an unregistered directive")
	}
}

func TestParseLineRegisteredQuirk(t *testing.T) {
	resetQuirks()
	var got []string
	RegisterQuirk("ARTIX_A50T", func(values []string) error {
		got = values
		return nil
	})
	opts := &Options{Quirks: map[string][]string{}}
	if err := parseLine("artix_a50t bank0, bank1 , bank2\n", opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"bank0", "bank1", "bank2"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
