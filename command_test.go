package st7701s

import (
	"bytes"
	"testing"
)

func TestCommandWords(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want []Word
	}{
		{"no parameters", DisplayOn(), []Word{{0x29, 0x00}}},
		{"MADCTL ML", NewCommand(0x36).WithParameter(0x10), []Word{{0x36, 0x00}, {0x10, 0x01}}},
		{
			"bank select",
			SetCommand2(Bank0),
			[]Word{{0xFF, 0x00}, {0x77, 0x01}, {0x01, 0x01}, {0x00, 0x01}, {0x00, 0x01}, {0x10, 0x01}},
		},
		{"zero value is NOP", Command{}, []Word{{0x00, 0x00}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cmd.Words()
			if len(got) != len(tt.want) {
				t.Fatalf("Words() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Words()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
			if len(got) != 1+tt.cmd.Len() {
				t.Errorf("len(Words()) = %d, want 1+Len() = %d", len(got), 1+tt.cmd.Len())
			}
		})
	}
}

func TestCommandImmutable(t *testing.T) {
	base := NewCommand(0xB0)
	a := base.WithParameter(0x01)
	b := base.WithParameters(0x02, 0x03)

	if base.Len() != 0 {
		t.Errorf("base.Len() = %d, want 0", base.Len())
	}
	if !bytes.Equal(a.Parameters(), []byte{0x01}) {
		t.Errorf("a.Parameters() = % X, want 01", a.Parameters())
	}
	if !bytes.Equal(b.Parameters(), []byte{0x02, 0x03}) {
		t.Errorf("b.Parameters() = % X, want 02 03", b.Parameters())
	}

	// Two extensions of the same command must not share storage.
	c := a.WithParameter(0x05)
	d := a.WithParameter(0x06)
	if !bytes.Equal(c.Parameters(), []byte{0x01, 0x05}) {
		t.Errorf("c.Parameters() = % X, want 01 05", c.Parameters())
	}
	if !bytes.Equal(d.Parameters(), []byte{0x01, 0x06}) {
		t.Errorf("d.Parameters() = % X, want 01 06", d.Parameters())
	}

	p := c.Parameters()
	p[0] = 0xEE
	if c.Parameters()[0] != 0x01 {
		t.Error("mutating Parameters() result changed the command")
	}
}

func TestCommandEqual(t *testing.T) {
	a := Raw(0xCC, 0x10)
	if !a.Equal(NewCommand(0xCC).WithParameter(0x10)) {
		t.Error("Raw(0xCC, 0x10) should equal NewCommand(0xCC).WithParameter(0x10)")
	}
	if a.Equal(Raw(0xCC, 0x11)) {
		t.Error("different parameters should not be equal")
	}
	if a.Equal(Raw(0xCD, 0x10)) {
		t.Error("different opcodes should not be equal")
	}
	if !(Command{}).Equal(NoOperation()) {
		t.Error("zero Command should equal NoOperation()")
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{DisplayOn(), "0x29[]"},
		{NewCommand(0x36).WithParameter(0x10), "0x36[10]"},
		{SetCommand2(Bank1), "0xFF[77 01 00 00 11]"},
	}

	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestWord(t *testing.T) {
	tests := []struct {
		name    string
		w       Word
		data    bool
		value   uint16
		payload byte
		str     string
	}{
		{"address", AddressWord(0x36), false, 0x036, 0x36, "C:36"},
		{"data", DataWord(0x10), true, 0x110, 0x10, "D:10"},
		{"data 0xFF", DataWord(0xFF), true, 0x1FF, 0xFF, "D:FF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.w.IsData(); got != tt.data {
				t.Errorf("IsData() = %v, want %v", got, tt.data)
			}
			if got := tt.w.Value(); got != tt.value {
				t.Errorf("Value() = 0x%03X, want 0x%03X", got, tt.value)
			}
			if got := tt.w.Payload(); got != tt.payload {
				t.Errorf("Payload() = 0x%02X, want 0x%02X", got, tt.payload)
			}
			if got := tt.w.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestPack9(t *testing.T) {
	tests := []struct {
		name  string
		words []Word
		want  []byte
	}{
		{"address", []Word{AddressWord(0x36)}, []byte{0x1B, 0x00}},
		{"data", []Word{DataWord(0x10)}, []byte{0x88, 0x00}},
		{"data 0xFF", []Word{DataWord(0xFF)}, []byte{0xFF, 0x80}},
		{"address and data", []Word{AddressWord(0x36), DataWord(0x10)}, []byte{0x1B, 0x44, 0x00}},
		{"none", nil, []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pack9(tt.words...); !bytes.Equal(got, tt.want) {
				t.Errorf("Pack9() = % X, want % X", got, tt.want)
			}
		})
	}
}

func TestUnpack(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		off  int
		n    int
		want []byte
	}{
		{"aligned", []byte{0xAB}, 0, 1, []byte{0xAB}},
		{"nibble offset", []byte{0x00, 0xFF}, 4, 1, []byte{0x0F}},
		{"past end reads zero", []byte{0xFF}, 4, 1, []byte{0xF0}},
		{"after address word", []byte{0x00, 0x55, 0x80}, 9, 1, []byte{0xAB}},
		{"two bytes", []byte{0x00, 0x7F, 0xBF, 0x80}, 9, 2, []byte{0xFF, 0x7F}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unpack(tt.buf, tt.off, tt.n); !bytes.Equal(got, tt.want) {
				t.Errorf("Unpack() = % X, want % X", got, tt.want)
			}
		})
	}
}

func TestPackedRead(t *testing.T) {
	w, r := PackedRead(AddressWord(0x04), 3)
	if len(w) != 5 || len(r) != 5 {
		t.Fatalf("PackedRead() sizes = %d, %d, want 5, 5", len(w), len(r))
	}
	if want := []byte{0x02, 0x00, 0x00, 0x00, 0x00}; !bytes.Equal(w, want) {
		t.Errorf("PackedRead() w = % X, want % X", w, want)
	}
}
