package st7701s

import (
	"errors"
	"testing"

	"periph.io/x/devices/v3/st7701s/panel"
)

func TestBankSelector(t *testing.T) {
	tests := []struct {
		bank Bank
		want byte
		str  string
	}{
		{BankDisabled, 0x00, "disabled"},
		{Bank0, 0x10, "BK0"},
		{Bank1, 0x11, "BK1"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if !tt.bank.Valid() {
				t.Errorf("Valid() = false, want true")
			}
			if got := tt.bank.Selector(); got != tt.want {
				t.Errorf("Selector() = 0x%02X, want 0x%02X", got, tt.want)
			}
			if got := tt.bank.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}

	if Bank(7).Valid() {
		t.Error("Bank(7).Valid() = true, want false")
	}
}

func TestParseBank(t *testing.T) {
	tests := []struct {
		in      string
		want    Bank
		wantErr bool
	}{
		{"off", BankDisabled, false},
		{"Disabled", BankDisabled, false},
		{"none", BankDisabled, false},
		{"0", Bank0, false},
		{"BK0", Bank0, false},
		{" bk1 ", Bank1, false},
		{"1", Bank1, false},
		{"2", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBank(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBank(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBank(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	banks := []Bank{BankDisabled, Bank0, Bank1}
	tests := []struct {
		name     string
		required Requirement
		allowed  map[Bank]bool
	}{
		{"any", AnyBank, map[Bank]bool{BankDisabled: true, Bank0: true, Bank1: true}},
		{"BK0", InBank(Bank0), map[Bank]bool{Bank0: true}},
		{"BK1", InBank(Bank1), map[Bank]bool{Bank1: true}},
	}

	for _, tt := range tests {
		for _, current := range banks {
			t.Run(tt.name+"/"+current.String(), func(t *testing.T) {
				calls := 0
				build := func() Command {
					calls++
					return Raw(0xB0, 0x01)
				}
				c, err := Validate(current, tt.required, build)
				if !tt.allowed[current] {
					if !errors.Is(err, ErrWrongBank) {
						t.Fatalf("Validate() error = %v, want ErrWrongBank", err)
					}
					var be *BankError
					if !errors.As(err, &be) {
						t.Fatalf("Validate() error = %T, want *BankError", err)
					}
					if be.Want != tt.required.Bank() || be.Have != current {
						t.Errorf("BankError = %+v, want Want=%v Have=%v", be, tt.required.Bank(), current)
					}
					if calls != 0 {
						t.Errorf("build called %d times on mismatch, want 0", calls)
					}
					return
				}
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				if calls != 1 {
					t.Errorf("build called %d times, want 1", calls)
				}
				if !c.Equal(Raw(0xB0, 0x01)) {
					t.Errorf("Validate() = %v, want 0xB0[01]", c)
				}

				// Same inputs, same result.
				c2, err := Validate(current, tt.required, build)
				if err != nil || !c2.Equal(c) {
					t.Errorf("second Validate() = %v, %v, want %v, nil", c2, err, c)
				}
			})
		}
	}
}

func TestBankErrorMessage(t *testing.T) {
	_, err := PorchControl(Bank1, panel.TDOMode)
	want := "st7701s: PORCTRL requires BK0, BK1 selected"
	if err == nil || err.Error() != want {
		t.Errorf("PorchControl(Bank1) error = %v, want %q", err, want)
	}

	err = &BankError{Want: Bank1, Have: BankDisabled}
	want = "st7701s: command requires BK1, disabled selected"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestRequirement(t *testing.T) {
	if !AnyBank.Any() {
		t.Error("AnyBank.Any() = false, want true")
	}
	if got := AnyBank.String(); got != "any" {
		t.Errorf("AnyBank.String() = %q, want %q", got, "any")
	}
	r := InBank(Bank1)
	if r.Any() || r.Bank() != Bank1 {
		t.Errorf("InBank(Bank1) = %+v", r)
	}
	if r.Allows(Bank0) || !r.Allows(Bank1) {
		t.Error("InBank(Bank1) should only allow Bank1")
	}
}

func TestBankOf(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		want    Bank
		wantErr bool
	}{
		{"BK0", SetCommand2(Bank0), Bank0, false},
		{"BK1", Raw(0xFF, 0x77, 0x01, 0x00, 0x00, 0x11), Bank1, false},
		{"disabled", Raw(0xFF, 0x77, 0x01, 0x00, 0x00, 0x00), BankDisabled, false},
		{"unknown selector", Raw(0xFF, 0x77, 0x01, 0x00, 0x00, 0x12), 0, true},
		{"short payload", Raw(0xFF, 0x77, 0x01), 0, true},
		{"wrong prefix", Raw(0xFF, 0x77, 0x02, 0x00, 0x00, 0x10), 0, true},
		{"not a switch", DisplayOn(), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BankOf(tt.cmd)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BankOf(%v) error = %v, wantErr %v", tt.cmd, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("BankOf(%v) = %v, want %v", tt.cmd, got, tt.want)
			}
		})
	}
}
