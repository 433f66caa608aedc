package ppip

import "testing"

func TestBuildHasEmptyButKnownEntries(t *testing.T) {
	tbl := Build()
	suffixes, ok := tbl.Lookup(Key{"IOB33", "IOB_PADOUT", "IOB_O"})
	if !ok {
		t.Fatal("expected IOB33 bidirectional pad pseudo-path to be known")
	}
	if len(suffixes) != 0 {
		t.Errorf("expected empty suffix list, got %v", suffixes)
	}
}

func TestBuildOLOGICSubstitution(t *testing.T) {
	tbl := Build()
	suffixes, ok := tbl.Lookup(Key{"LIOI3", "LIOI_OLOGIC0_OQ", "IOI_OLOGIC0_D1"})
	if !ok {
		t.Fatal("expected OLOGIC0 data-path pseudo-pip to be known")
	}
	want := []string{"OLOGIC0_Y0.OMUX.D1", "OLOGIC0_Y0.OQUSED", "OLOGIC0_Y0.OSERDES.DATA_RATE_TQ.BUF"}
	if len(suffixes) != len(want) {
		t.Fatalf("got %v, want %v", suffixes, want)
	}
	for i := range want {
		if suffixes[i] != want[i] {
			t.Errorf("suffix[%d] = %q, want %q", i, suffixes[i], want[i])
		}
	}
}

func TestMissingKeyNotOK(t *testing.T) {
	tbl := Build()
	_, ok := tbl.Lookup(Key{"NOPE", "A", "B"})
	if ok {
		t.Error("expected unknown key to report ok=false")
	}
}

func TestBufgctrlOppositeInputZinv(t *testing.T) {
	tbl := Build()
	s0, _ := tbl.Lookup(Key{"CLK_BUFG", "CLK_BUFG_BUFGCTRL3_I0", "CLK_BUFG_CK_MUXED_HROW5"})
	found := false
	for _, s := range s0 {
		if s == "BUFGCTRL.BUFGCTRL_X0Y3.ZINV_S1" {
			found = true
		}
	}
	if !found {
		t.Errorf("I0 activation should assert ZINV_S1 (opposite input), got %v", s0)
	}
}
