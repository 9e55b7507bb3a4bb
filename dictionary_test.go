package lzw

import (
	"bytes"
	"testing"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := validated(&Config{InitialWidth: 9, MaxWidth: 12, FirstCode: 0x101, EOFCode: 0x100, Flags: BigEndian | EOFParamValid})
	if err != nil {
		t.Fatal(err)
	}
	return &cfg
}

func TestDictionaryRootsPreseeded(t *testing.T) {
	d := newDictionary(testConfig(t), false)
	for i := 0; i < 256; i++ {
		if !d.defined(uint32(i)) {
			t.Fatalf("root %d not defined", i)
		}
		if got := d.firstByte(uint32(i)); got != byte(i) {
			t.Fatalf("root %d firstByte = %d", i, got)
		}
		if got := d.length(uint32(i)); got != 1 {
			t.Fatalf("root %d length = %d", i, got)
		}
	}
	if d.nextCode != 0x101 {
		t.Fatalf("nextCode = %#x, want 0x101", d.nextCode)
	}
}

func TestDictionaryAppendAndExpand(t *testing.T) {
	d := newDictionary(testConfig(t), false)

	c1, err := d.append(rootCode('a'), 'b') // "ab"
	if err != nil {
		t.Fatal(err)
	}
	c2, err := d.append(c1, 'c') // "abc"
	if err != nil {
		t.Fatal(err)
	}

	if got := d.length(c2); got != 3 {
		t.Fatalf("length = %d, want 3", got)
	}
	buf := make([]byte, d.length(c2))
	d.expand(c2, buf)
	if !bytes.Equal(buf, []byte("abc")) {
		t.Fatalf("expand = %q", buf)
	}
}

func TestDictionaryResetRestoresRootsOnly(t *testing.T) {
	d := newDictionary(testConfig(t), false)
	if _, err := d.append(rootCode('x'), 'y'); err != nil {
		t.Fatal(err)
	}
	d.reset()

	if d.nextCode != 0x101 {
		t.Fatalf("nextCode = %#x after reset, want 0x101", d.nextCode)
	}
	if d.defined(0x101) {
		t.Fatal("entry 0x101 still defined after reset")
	}
	if !d.defined(uint32('x')) {
		t.Fatal("root byte undefined after reset")
	}
}

func TestDictionaryFullAtCapacity(t *testing.T) {
	cfg, err := validated(&Config{InitialWidth: 9, MaxWidth: 9, FirstCode: 0x101})
	if err != nil {
		t.Fatal(err)
	}
	d := newDictionary(&cfg, false)

	for !d.full() {
		if _, err := d.append(rootCode('a'), 'b'); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := d.append(rootCode('a'), 'b'); err != ErrDictionaryFull {
		t.Fatalf("want ErrDictionaryFull, got %v", err)
	}
}

func TestDictionaryLookupCodeRequiresIndex(t *testing.T) {
	d := newDictionary(testConfig(t), true)
	code, err := d.append(rootCode('a'), 'b')
	if err != nil {
		t.Fatal(err)
	}

	got, ok := d.lookupCode(rootCode('a'), 'b')
	if !ok || got != code {
		t.Fatalf("lookupCode = (%d, %v), want (%d, true)", got, ok, code)
	}

	if _, ok := d.lookupCode(rootCode('a'), 'z'); ok {
		t.Fatal("unexpected hit for unassigned (prefix, last)")
	}
}

func TestDictionaryIndexClearedOnReset(t *testing.T) {
	d := newDictionary(testConfig(t), true)
	if _, err := d.append(rootCode('a'), 'b'); err != nil {
		t.Fatal(err)
	}
	d.reset()

	if _, ok := d.lookupCode(rootCode('a'), 'b'); ok {
		t.Fatal("stale index entry survived reset")
	}
}
